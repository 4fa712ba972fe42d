package controllers

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inventhub-api/config"
	"inventhub-api/models"
)

// CreateInvention handles POST /api/inventions
func CreateInvention(c *gin.Context) {
	var req models.InventionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invention := models.NewInvention(req)
	ctx := c.Request.Context()
	if _, err := config.Coll(config.InventionsCollection).InsertOne(ctx, invention); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, invention)
}

// GetInventions handles GET /api/inventions. Optional filters (category,
// tags, seeking_mentorship, collaboration_open) combine with AND; absent or
// unrecognized filters are no-ops.
func GetInventions(c *gin.Context) {
	filter := bson.M{}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}
	boolQuery(c, "seeking_mentorship", filter)
	boolQuery(c, "collaboration_open", filter)

	// tags is comma-separated; each entry matches any tag on the
	// invention by case-insensitive substring.
	if tags := c.Query("tags"); tags != "" {
		conditions := []bson.M{}
		for _, tag := range strings.Split(tags, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			conditions = append(conditions, bson.M{
				"tags": bson.M{"$regex": regexp.QuoteMeta(tag), "$options": "i"},
			})
		}
		if len(conditions) > 0 {
			filter["$and"] = conditions
		}
	}

	ctx := c.Request.Context()
	opts := options.Find().SetSort(sortSpec(c.Query("sort_by"))).SetLimit(maxListSize)
	cur, err := config.Coll(config.InventionsCollection).Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	inventions := []models.Invention{}
	if err := cur.All(ctx, &inventions); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, inventions)
}

// GetPublicInventions handles GET /api/inventions/public
func GetPublicInventions(c *gin.Context) {
	ctx := c.Request.Context()
	opts := options.Find().SetSort(sortSpec("")).SetLimit(maxListSize)
	cur, err := config.Coll(config.InventionsCollection).Find(ctx, bson.M{"is_public": true}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	inventions := []models.Invention{}
	if err := cur.All(ctx, &inventions); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, inventions)
}

// SearchInventions handles GET /api/inventions/search?q= with
// case-insensitive substring matching over title, description, tags and
// creator name. The query must be at least 2 characters; results are
// capped.
func SearchInventions(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if utf8.RuneCountInString(q) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query must be at least 2 characters"})
		return
	}

	pattern := regexp.QuoteMeta(q)
	filter := bson.M{"$or": []bson.M{
		{"title": bson.M{"$regex": pattern, "$options": "i"}},
		{"description": bson.M{"$regex": pattern, "$options": "i"}},
		{"tags": bson.M{"$regex": pattern, "$options": "i"}},
		{"creator_name": bson.M{"$regex": pattern, "$options": "i"}},
	}}

	ctx := c.Request.Context()
	opts := options.Find().SetSort(sortSpec("")).SetLimit(maxSearchResults)
	cur, err := config.Coll(config.InventionsCollection).Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	inventions := []models.Invention{}
	if err := cur.All(ctx, &inventions); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, inventions)
}

// GetInvention handles GET /api/inventions/:id. Every fetch increments the
// view counter, repeated fetches included.
func GetInvention(c *gin.Context) {
	ctx := c.Request.Context()

	var invention models.Invention
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := config.Coll(config.InventionsCollection).FindOneAndUpdate(
		ctx,
		bson.M{"id": c.Param("id")},
		bson.M{"$inc": bson.M{"view_count": 1}},
		opts,
	).Decode(&invention)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invention not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, invention)
}

// UpdateInvention handles PUT /api/inventions/:id as a partial update and
// refreshes updated_at.
func UpdateInvention(c *gin.Context) {
	patch, ok := bindPatch(c)
	if !ok {
		return
	}
	patch["updated_at"] = time.Now().UTC()

	ctx := c.Request.Context()
	id := c.Param("id")
	res, err := config.Coll(config.InventionsCollection).UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": patch})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invention not found"})
		return
	}

	var invention models.Invention
	if err := config.Coll(config.InventionsCollection).FindOne(ctx, bson.M{"id": id}).Decode(&invention); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, invention)
}
