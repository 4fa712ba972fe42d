package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"inventhub-api/config"
)

type tagCount struct {
	Tag   string `bson:"_id" json:"tag"`
	Count int    `bson:"count" json:"count"`
}

// GetAnalyticsSummary handles GET /api/analytics/summary: collection totals
// plus the ten most frequent invention tags.
func GetAnalyticsSummary(c *gin.Context) {
	ctx := c.Request.Context()

	totals := map[string]int64{}
	for _, name := range []string{
		config.UsersCollection,
		config.InventionsCollection,
		config.GroupsCollection,
		config.SuggestionsCollection,
	} {
		count, err := config.Coll(name).CountDocuments(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		totals[name] = count
	}

	topTags, err := topInventionTags(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_users":       totals[config.UsersCollection],
		"total_inventions":  totals[config.InventionsCollection],
		"total_groups":      totals[config.GroupsCollection],
		"total_suggestions": totals[config.SuggestionsCollection],
		"top_tags":          topTags,
	})
}

// topInventionTags unwinds invention tags, counts per tag, sorts by count
// descending and keeps the top ten.
func topInventionTags(ctx context.Context) ([]tagCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$tags"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$tags"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
		{{Key: "$limit", Value: 10}},
	}

	cur, err := config.Coll(config.InventionsCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	tags := []tagCount{}
	if err := cur.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}
