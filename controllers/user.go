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
	"inventhub-api/utils"
)

// CreateUser handles POST /api/users
func CreateUser(c *gin.Context) {
	var req models.UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !utils.ValidateEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	user := models.NewUser(req)
	ctx := c.Request.Context()
	if _, err := config.Coll(config.UsersCollection).InsertOne(ctx, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUsers handles GET /api/users with optional role and is_mentor filters
// combined with AND.
func GetUsers(c *gin.Context) {
	filter := bson.M{}
	if role := c.Query("role"); role != "" {
		filter["role"] = role
	}
	boolQuery(c, "is_mentor", filter)

	ctx := c.Request.Context()
	opts := options.Find().SetSort(sortSpec(c.Query("sort_by"))).SetLimit(maxListSize)
	cur, err := config.Coll(config.UsersCollection).Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /api/users/:id
func GetUser(c *gin.Context) {
	ctx := c.Request.Context()

	var user models.User
	err := config.Coll(config.UsersCollection).FindOne(ctx, bson.M{"id": c.Param("id")}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser handles PUT /api/users/:id as a partial update: only fields
// present in the body are written.
func UpdateUser(c *gin.Context) {
	patch, ok := bindPatch(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")
	if len(patch) > 0 {
		res, err := config.Coll(config.UsersCollection).UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": patch})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
	}

	var user models.User
	err := config.Coll(config.UsersCollection).FindOne(ctx, bson.M{"id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}
