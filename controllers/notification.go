package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inventhub-api/config"
	"inventhub-api/models"
)

// GetNotifications handles GET /api/notifications/:user_id, newest first.
func GetNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	cur, err := config.Coll(config.NotificationsCollection).Find(
		ctx,
		bson.M{"user_id": c.Param("user_id")},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(maxListSize),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	notifications := []models.Notification{}
	if err := cur.All(ctx, &notifications); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationRead handles PUT /api/notifications/:id/read
func MarkNotificationRead(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	res, err := config.Coll(config.NotificationsCollection).UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}
