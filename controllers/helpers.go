package controllers

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"inventhub-api/config"
	"inventhub-api/models"
)

// maxListSize caps every listing query; maxSearchResults caps free-text
// search.
const (
	maxListSize      = 1000
	maxSearchResults = 50
)

// Keys whose default sort direction is descending (recency-oriented).
var descendingSortKeys = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"timestamp":  true,
}

// sortSpec maps a caller-chosen sort key to a mongo sort document. The
// default key is created_at; recency keys sort descending, everything else
// ascending.
func sortSpec(key string) bson.D {
	if key == "" {
		key = "created_at"
	}
	direction := 1
	if descendingSortKeys[key] {
		direction = -1
	}
	return bson.D{{Key: key, Value: direction}}
}

// bindPatch decodes a partial-update body. Only fields present in the body
// are applied; identifier and creation-time fields can never be patched.
func bindPatch(c *gin.Context) (map[string]interface{}, bool) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	delete(body, "id")
	delete(body, "_id")
	delete(body, "created_at")
	return body, true
}

// boolQuery parses an optional boolean query parameter into the filter.
// An absent or unparsable value is a no-op, not an error.
func boolQuery(c *gin.Context, name string, filter bson.M) {
	raw := c.Query(name)
	if raw == "" {
		return
	}
	if v, err := strconv.ParseBool(raw); err == nil {
		filter[name] = v
	}
}

// createNotification writes a notification as a side effect of another
// handler. Failure is logged, never surfaced: the triggering write already
// succeeded and there is no compensation.
func createNotification(ctx context.Context, n models.Notification) {
	if _, err := config.Coll(config.NotificationsCollection).InsertOne(ctx, n); err != nil {
		log.Printf("Warning: failed to create notification for user %s: %v", n.UserID, err)
	}
}

// uploadPath returns the directory for uploaded model files.
func uploadPath() string {
	if p := os.Getenv("UPLOAD_PATH"); p != "" {
		return p
	}
	return "./uploads"
}
