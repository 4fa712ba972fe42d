package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inventhub-api/config"
	"inventhub-api/models"
)

// CreateSuggestion handles POST /api/suggestions
func CreateSuggestion(c *gin.Context) {
	var req models.PublicSuggestionCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	suggestion := models.NewPublicSuggestion(req)
	ctx := c.Request.Context()
	if _, err := config.Coll(config.SuggestionsCollection).InsertOne(ctx, suggestion); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, suggestion)
}

// GetSuggestions handles GET /api/suggestions, newest first.
func GetSuggestions(c *gin.Context) {
	ctx := c.Request.Context()
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(maxListSize)
	cur, err := config.Coll(config.SuggestionsCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	suggestions := []models.PublicSuggestion{}
	if err := cur.All(ctx, &suggestions); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, suggestions)
}

// VoteSuggestion handles POST /api/suggestions/:id/vote. Suggestion votes
// are a monotonic counter bumped in place, not per-voter records.
func VoteSuggestion(c *gin.Context) {
	ctx := c.Request.Context()

	var suggestion models.PublicSuggestion
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := config.Coll(config.SuggestionsCollection).FindOneAndUpdate(
		ctx,
		bson.M{"id": c.Param("id")},
		bson.M{"$inc": bson.M{"votes": 1}},
		opts,
	).Decode(&suggestion)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Suggestion not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, suggestion)
}
