package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inventhub-api/config"
	"inventhub-api/models"
	"inventhub-api/realtime"
	"inventhub-api/utils"
)

// ChatHub is the process-wide fan-out registry for group chat.
var ChatHub = realtime.NewHub()

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The realtime channel carries no credentials; any origin may connect.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// SendChatMessage handles POST /api/chat/messages. The persisted message is
// broadcast as JSON to every live connection in the group; broadcast
// problems never fail the request.
func SendChatMessage(c *gin.Context) {
	var req models.ChatMessageCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Message = utils.SanitizeInput(req.Message)

	message := models.NewChatMessage(req)
	ctx := c.Request.Context()
	if _, err := config.Coll(config.ChatMessagesCollection).InsertOne(ctx, message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if payload, err := json.Marshal(message); err != nil {
		log.Printf("Warning: failed to encode chat message %s for broadcast: %v", message.ID, err)
	} else {
		ChatHub.Broadcast(message.GroupID, payload)
	}

	c.JSON(http.StatusOK, message)
}

// GetChatMessages handles GET /api/chat/messages/:group_id, oldest first.
func GetChatMessages(c *gin.Context) {
	ctx := c.Request.Context()
	cur, err := config.Coll(config.ChatMessagesCollection).Find(
		ctx,
		bson.M{"group_id": c.Param("group_id")},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}}).SetLimit(maxListSize),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	messages := []models.ChatMessage{}
	if err := cur.All(ctx, &messages); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// ChatWebSocket handles GET /api/ws/:group_id. Every inbound text frame is
// relayed verbatim to all connections in the same group, the sender
// included. Disconnecting removes the connection from the registry.
func ChatWebSocket(c *gin.Context) {
	groupID := c.Param("group_id")

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("realtime: websocket upgrade failed for group %s: %v", groupID, err)
		return
	}

	conn := realtime.NewConn(ws)
	ChatHub.Join(groupID, conn)
	defer func() {
		ChatHub.Leave(groupID, conn)
		ws.Close()
	}()

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			return
		}
		ChatHub.Broadcast(groupID, data)
	}
}
