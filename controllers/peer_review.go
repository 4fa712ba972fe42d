package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inventhub-api/config"
	"inventhub-api/models"
	"inventhub-api/services"
)

// CreatePeerReview handles POST /api/peer-reviews. The invention's creator
// gets a notification; a failed notification write does not fail the
// request.
func CreatePeerReview(c *gin.Context) {
	var req models.PeerReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	var invention models.Invention
	err := config.Coll(config.InventionsCollection).FindOne(ctx, bson.M{"id": req.InventionID}).Decode(&invention)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invention not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	review := models.NewPeerReview(req, invention.CreatorID)
	if _, err := config.Coll(config.PeerReviewsCollection).InsertOne(ctx, review); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	createNotification(ctx, models.NewNotification(
		invention.CreatorID,
		models.NotificationPeerReviewRequest,
		"New Peer Review Request",
		fmt.Sprintf("%s requested to review your invention '%s'", review.ReviewerName, invention.Title),
		map[string]interface{}{"review_id": review.ID, "invention_id": invention.ID},
	))

	c.JSON(http.StatusOK, review)
}

// GetPeerReviews handles GET /api/peer-reviews with optional reviewer_id,
// invention_id and status filters.
func GetPeerReviews(c *gin.Context) {
	filter := bson.M{}
	if reviewerID := c.Query("reviewer_id"); reviewerID != "" {
		filter["reviewer_id"] = reviewerID
	}
	if inventionID := c.Query("invention_id"); inventionID != "" {
		filter["invention_id"] = inventionID
	}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	ctx := c.Request.Context()
	opts := options.Find().SetSort(sortSpec(c.Query("sort_by"))).SetLimit(maxListSize)
	cur, err := config.Coll(config.PeerReviewsCollection).Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	reviews := []models.PeerReview{}
	if err := cur.All(ctx, &reviews); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// UpdatePeerReview handles PUT /api/peer-reviews/:id. Supplying all three
// sub-scores in one body derives the overall score and completes the
// review in the same write; a subset of scores persists without a
// transition. Any other field, status included, is a plain unvalidated
// update.
func UpdatePeerReview(c *gin.Context) {
	patch, ok := bindPatch(c)
	if !ok {
		return
	}

	if overall, complete := services.ReviewCompletion(patch); complete {
		patch["overall_score"] = overall
		patch["status"] = models.ReviewStatusCompleted
		patch["completed_at"] = time.Now().UTC()
	}

	ctx := c.Request.Context()
	id := c.Param("id")
	// An all-fields-absent body touches nothing; the store rejects an
	// empty $set, so skip the write and let the fetch below resolve 404.
	if len(patch) > 0 {
		res, err := config.Coll(config.PeerReviewsCollection).UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": patch})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Peer review not found"})
			return
		}
	}

	var review models.PeerReview
	err := config.Coll(config.PeerReviewsCollection).FindOne(ctx, bson.M{"id": id}).Decode(&review)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Peer review not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, review)
}
