package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	VoteTypeUp   = "up"
	VoteTypeDown = "down"
)

// InventionVote records one user's vote on an invention. The natural key is
// (invention_id, user_name): a second vote by the same name overwrites the
// first via upsert-by-lookup, not a store-level uniqueness constraint.
type InventionVote struct {
	ID          string    `bson:"id" json:"id"`
	InventionID string    `bson:"invention_id" json:"invention_id"`
	UserName    string    `bson:"user_name" json:"user_name"`
	VoteType    string    `bson:"vote_type" json:"vote_type"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

type VoteRequest struct {
	UserName string `json:"user_name" binding:"required"`
	VoteType string `json:"vote_type" binding:"required"`
}

func NewInventionVote(inventionID string, req VoteRequest) InventionVote {
	return InventionVote{
		ID:          uuid.NewString(),
		InventionID: inventionID,
		UserName:    req.UserName,
		VoteType:    req.VoteType,
		CreatedAt:   time.Now().UTC(),
	}
}

// InventionRating records one user's 1-5 rating, same natural key discipline
// as votes.
type InventionRating struct {
	ID          string    `bson:"id" json:"id"`
	InventionID string    `bson:"invention_id" json:"invention_id"`
	UserName    string    `bson:"user_name" json:"user_name"`
	Rating      int       `bson:"rating" json:"rating"`
	ReviewText  string    `bson:"review_text" json:"review_text"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

type RatingRequest struct {
	UserName   string `json:"user_name" binding:"required"`
	Rating     int    `json:"rating" binding:"required"`
	ReviewText string `json:"review_text"`
}

func NewInventionRating(inventionID string, req RatingRequest) InventionRating {
	return InventionRating{
		ID:          uuid.NewString(),
		InventionID: inventionID,
		UserName:    req.UserName,
		Rating:      req.Rating,
		ReviewText:  req.ReviewText,
		CreatedAt:   time.Now().UTC(),
	}
}
