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

// CreateGroup handles POST /api/groups. The creator becomes the group's
// first member and its only initial moderator.
func CreateGroup(c *gin.Context) {
	var req models.GroupCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group := models.NewGroup(req)
	ctx := c.Request.Context()
	if _, err := config.Coll(config.GroupsCollection).InsertOne(ctx, group); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, group)
}

// GetGroups handles GET /api/groups with an optional invention_id filter.
func GetGroups(c *gin.Context) {
	filter := bson.M{}
	if inventionID := c.Query("invention_id"); inventionID != "" {
		filter["invention_id"] = inventionID
	}

	ctx := c.Request.Context()
	opts := options.Find().SetSort(sortSpec(c.Query("sort_by"))).SetLimit(maxListSize)
	cur, err := config.Coll(config.GroupsCollection).Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	groups := []models.Group{}
	if err := cur.All(ctx, &groups); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, groups)
}

// GetGroup handles GET /api/groups/:id
func GetGroup(c *gin.Context) {
	ctx := c.Request.Context()

	var group models.Group
	err := config.Coll(config.GroupsCollection).FindOne(ctx, bson.M{"id": c.Param("id")}).Decode(&group)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, group)
}

type groupMemberRequest struct {
	UserName string `json:"user_name" binding:"required"`
}

// JoinGroup handles POST /api/groups/:id/join. Joining twice is a no-op;
// the member set never holds duplicates.
func JoinGroup(c *gin.Context) {
	var req groupMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")
	res, err := config.Coll(config.GroupsCollection).UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$addToSet": bson.M{"members": req.UserName},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	var group models.Group
	if err := config.Coll(config.GroupsCollection).FindOne(ctx, bson.M{"id": id}).Decode(&group); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, group)
}

// LeaveGroup handles POST /api/groups/:id/leave. Leaving a group the user
// never joined is a silent no-op.
func LeaveGroup(c *gin.Context) {
	var req groupMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")
	res, err := config.Coll(config.GroupsCollection).UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$pull": bson.M{"members": req.UserName},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	var group models.Group
	if err := config.Coll(config.GroupsCollection).FindOne(ctx, bson.M{"id": id}).Decode(&group); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, group)
}
