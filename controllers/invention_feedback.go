package controllers

import (
	"context"
	"errors"
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

// VoteInvention handles POST /api/inventions/:id/vote. Votes upsert by the
// natural key (invention_id, user_name): a repeat vote by the same name
// overwrites the previous vote_type instead of inserting a second record.
func VoteInvention(c *gin.Context) {
	var req models.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.VoteType != models.VoteTypeUp && req.VoteType != models.VoteTypeDown {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vote_type must be 'up' or 'down'"})
		return
	}

	ctx := c.Request.Context()
	inventionID := c.Param("id")
	if !inventionExists(c, ctx, inventionID) {
		return
	}

	votes := config.Coll(config.InventionVotesCollection)
	naturalKey := bson.M{"invention_id": inventionID, "user_name": req.UserName}

	var vote models.InventionVote
	err := votes.FindOne(ctx, naturalKey).Decode(&vote)
	switch {
	case err == nil:
		vote.VoteType = req.VoteType
		_, err = votes.UpdateOne(ctx, bson.M{"id": vote.ID}, bson.M{"$set": bson.M{"vote_type": req.VoteType}})
	case errors.Is(err, mongo.ErrNoDocuments):
		vote = models.NewInventionVote(inventionID, req)
		_, err = votes.InsertOne(ctx, vote)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := recomputeVoteAggregates(ctx, inventionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, vote)
}

// GetInventionVotes handles GET /api/inventions/:id/votes
func GetInventionVotes(c *gin.Context) {
	ctx := c.Request.Context()
	cur, err := config.Coll(config.InventionVotesCollection).Find(
		ctx,
		bson.M{"invention_id": c.Param("id")},
		options.Find().SetSort(sortSpec("")).SetLimit(maxListSize),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	votes := []models.InventionVote{}
	if err := cur.All(ctx, &votes); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, votes)
}

// RateInvention handles POST /api/inventions/:id/rate with the same
// natural-key upsert discipline as votes.
func RateInvention(c *gin.Context) {
	var req models.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		return
	}

	ctx := c.Request.Context()
	inventionID := c.Param("id")
	if !inventionExists(c, ctx, inventionID) {
		return
	}

	ratings := config.Coll(config.InventionRatingsCollection)
	naturalKey := bson.M{"invention_id": inventionID, "user_name": req.UserName}

	var rating models.InventionRating
	err := ratings.FindOne(ctx, naturalKey).Decode(&rating)
	switch {
	case err == nil:
		rating.Rating = req.Rating
		rating.ReviewText = req.ReviewText
		_, err = ratings.UpdateOne(ctx, bson.M{"id": rating.ID}, bson.M{"$set": bson.M{
			"rating":      req.Rating,
			"review_text": req.ReviewText,
		}})
	case errors.Is(err, mongo.ErrNoDocuments):
		rating = models.NewInventionRating(inventionID, req)
		_, err = ratings.InsertOne(ctx, rating)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := recomputeRatingAggregate(ctx, inventionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rating)
}

// GetInventionRatings handles GET /api/inventions/:id/ratings
func GetInventionRatings(c *gin.Context) {
	ctx := c.Request.Context()
	cur, err := config.Coll(config.InventionRatingsCollection).Find(
		ctx,
		bson.M{"invention_id": c.Param("id")},
		options.Find().SetSort(sortSpec("")).SetLimit(maxListSize),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ratings := []models.InventionRating{}
	if err := cur.All(ctx, &ratings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ratings)
}

// recomputeVoteAggregates re-reads the full vote set for one invention and
// writes the derived counters back. Concurrent voters on the same invention
// can interleave here; the last writer's snapshot wins.
func recomputeVoteAggregates(ctx context.Context, inventionID string) error {
	cur, err := config.Coll(config.InventionVotesCollection).Find(ctx, bson.M{"invention_id": inventionID})
	if err != nil {
		return err
	}
	var votes []models.InventionVote
	if err := cur.All(ctx, &votes); err != nil {
		return err
	}

	up, down, total := services.VoteTotals(votes)
	_, err = config.Coll(config.InventionsCollection).UpdateOne(ctx, bson.M{"id": inventionID}, bson.M{"$set": bson.M{
		"votes_up":    up,
		"votes_down":  down,
		"total_votes": total,
		"updated_at":  time.Now().UTC(),
	}})
	return err
}

// recomputeRatingAggregate re-reads the full rating set and writes the
// rounded mean back. Same last-writer-wins caveat as the vote counters.
func recomputeRatingAggregate(ctx context.Context, inventionID string) error {
	cur, err := config.Coll(config.InventionRatingsCollection).Find(ctx, bson.M{"invention_id": inventionID})
	if err != nil {
		return err
	}
	var ratings []models.InventionRating
	if err := cur.All(ctx, &ratings); err != nil {
		return err
	}

	_, err = config.Coll(config.InventionsCollection).UpdateOne(ctx, bson.M{"id": inventionID}, bson.M{"$set": bson.M{
		"average_rating": services.AverageRating(ratings),
		"updated_at":     time.Now().UTC(),
	}})
	return err
}

// inventionExists resolves the parent invention or writes the 404/500
// response itself.
func inventionExists(c *gin.Context, ctx context.Context, inventionID string) bool {
	err := config.Coll(config.InventionsCollection).FindOne(ctx, bson.M{"id": inventionID}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invention not found"})
		return false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return false
	}
	return true
}
