package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inventhub-api/config"
	"inventhub-api/models"
)

// CreateMentorshipRequest handles POST /api/mentorship-requests and
// notifies the requested mentor.
func CreateMentorshipRequest(c *gin.Context) {
	var req models.MentorshipRequestCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request := models.NewMentorshipRequest(req)
	ctx := c.Request.Context()
	if _, err := config.Coll(config.MentorshipRequestsCollection).InsertOne(ctx, request); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	createNotification(ctx, models.NewNotification(
		request.MentorID,
		models.NotificationMentorshipRequest,
		"New Mentorship Request",
		fmt.Sprintf("%s requested mentorship: %s", request.StudentName, request.Subject),
		map[string]interface{}{"request_id": request.ID},
	))

	c.JSON(http.StatusOK, request)
}

// GetMentorshipRequests handles GET /api/mentorship-requests with optional
// student_id, mentor_id and status filters.
func GetMentorshipRequests(c *gin.Context) {
	filter := bson.M{}
	if studentID := c.Query("student_id"); studentID != "" {
		filter["student_id"] = studentID
	}
	if mentorID := c.Query("mentor_id"); mentorID != "" {
		filter["mentor_id"] = mentorID
	}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	ctx := c.Request.Context()
	opts := options.Find().SetSort(sortSpec(c.Query("sort_by"))).SetLimit(maxListSize)
	cur, err := config.Coll(config.MentorshipRequestsCollection).Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	requests := []models.MentorshipRequest{}
	if err := cur.All(ctx, &requests); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// UpdateMentorshipRequest handles PUT /api/mentorship-requests/:id. Status
// is an open string; whatever value the caller writes is persisted.
func UpdateMentorshipRequest(c *gin.Context) {
	patch, ok := bindPatch(c)
	if !ok {
		return
	}
	patch["updated_at"] = time.Now().UTC()

	ctx := c.Request.Context()
	id := c.Param("id")
	res, err := config.Coll(config.MentorshipRequestsCollection).UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": patch})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Mentorship request not found"})
		return
	}

	var request models.MentorshipRequest
	if err := config.Coll(config.MentorshipRequestsCollection).FindOne(ctx, bson.M{"id": id}).Decode(&request); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, request)
}
