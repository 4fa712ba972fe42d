package models

import (
	"time"

	"github.com/google/uuid"
)

// PeerReview statuses. Only the pending -> completed transition (all three
// sub-scores arriving in a single update) is machine-driven; the rest are
// plain field writes.
const (
	ReviewStatusPending    = "pending"
	ReviewStatusInProgress = "in_progress"
	ReviewStatusCompleted  = "completed"
	ReviewStatusRejected   = "rejected"
)

type PeerReview struct {
	ID               string     `bson:"id" json:"id"`
	InventionID      string     `bson:"invention_id" json:"invention_id"`
	ReviewerID       string     `bson:"reviewer_id" json:"reviewer_id"`
	ReviewerName     string     `bson:"reviewer_name" json:"reviewer_name"`
	CreatorID        string     `bson:"creator_id" json:"creator_id"`
	Status           string     `bson:"status" json:"status"`
	TechnicalScore   *float64   `bson:"technical_score,omitempty" json:"technical_score,omitempty"`
	InnovationScore  *float64   `bson:"innovation_score,omitempty" json:"innovation_score,omitempty"`
	FeasibilityScore *float64   `bson:"feasibility_score,omitempty" json:"feasibility_score,omitempty"`
	OverallScore     *float64   `bson:"overall_score,omitempty" json:"overall_score,omitempty"`
	Feedback         string     `bson:"feedback" json:"feedback"`
	CreatedAt        time.Time  `bson:"created_at" json:"created_at"`
	CompletedAt      *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}

type PeerReviewCreateRequest struct {
	InventionID  string `json:"invention_id" binding:"required"`
	ReviewerID   string `json:"reviewer_id"`
	ReviewerName string `json:"reviewer_name" binding:"required"`
}

func NewPeerReview(req PeerReviewCreateRequest, creatorID string) PeerReview {
	reviewerID := req.ReviewerID
	if reviewerID == "" {
		reviewerID = PlaceholderUserID()
	}
	return PeerReview{
		ID:           uuid.NewString(),
		InventionID:  req.InventionID,
		ReviewerID:   reviewerID,
		ReviewerName: req.ReviewerName,
		CreatorID:    creatorID,
		Status:       ReviewStatusPending,
		CreatedAt:    time.Now().UTC(),
	}
}
