package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inventhub-api/config"
	"inventhub-api/models"
	"inventhub-api/utils"
)

// CreateComment handles POST /api/inventions/:id/comments. The invention's
// creator is notified unless they wrote the comment themselves.
func CreateComment(c *gin.Context) {
	var req models.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Content = utils.SanitizeInput(req.Content)

	ctx := c.Request.Context()
	inventionID := c.Param("id")

	var invention models.Invention
	err := config.Coll(config.InventionsCollection).FindOne(ctx, bson.M{"id": inventionID}).Decode(&invention)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invention not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	comment := models.NewComment(inventionID, req)
	if _, err := config.Coll(config.CommentsCollection).InsertOne(ctx, comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if comment.UserID != invention.CreatorID {
		createNotification(ctx, models.NewNotification(
			invention.CreatorID,
			models.NotificationNewComment,
			"New Comment",
			fmt.Sprintf("%s commented on your invention '%s'", comment.UserName, invention.Title),
			map[string]interface{}{"comment_id": comment.ID, "invention_id": invention.ID},
		))
	}

	c.JSON(http.StatusOK, comment)
}

// GetComments handles GET /api/inventions/:id/comments, oldest first so
// threads read top-down.
func GetComments(c *gin.Context) {
	ctx := c.Request.Context()
	cur, err := config.Coll(config.CommentsCollection).Find(
		ctx,
		bson.M{"invention_id": c.Param("id")},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}).SetLimit(maxListSize),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	comments := []models.Comment{}
	if err := cur.All(ctx, &comments); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, comments)
}
