package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Invention struct {
	ID                string    `bson:"id" json:"id"`
	Title             string    `bson:"title" json:"title"`
	Description       string    `bson:"description" json:"description"`
	CreatorID         string    `bson:"creator_id" json:"creator_id"`
	CreatorName       string    `bson:"creator_name" json:"creator_name"`
	Tags              []string  `bson:"tags" json:"tags"`
	Category          string    `bson:"category" json:"category"`
	ModelFilePath     string    `bson:"model_file_path,omitempty" json:"model_file_path,omitempty"`
	ModelFileName     string    `bson:"model_file_name,omitempty" json:"model_file_name,omitempty"`
	IsPublic          bool      `bson:"is_public" json:"is_public"`
	SeekingMentorship bool      `bson:"seeking_mentorship" json:"seeking_mentorship"`
	CollaborationOpen bool      `bson:"collaboration_open" json:"collaboration_open"`
	VotesUp           int       `bson:"votes_up" json:"votes_up"`
	VotesDown         int       `bson:"votes_down" json:"votes_down"`
	TotalVotes        int       `bson:"total_votes" json:"total_votes"`
	AverageRating     float64   `bson:"average_rating" json:"average_rating"`
	ViewCount         int       `bson:"view_count" json:"view_count"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at"`
}

type InventionCreateRequest struct {
	Title             string   `json:"title" binding:"required"`
	Description       string   `json:"description" binding:"required"`
	CreatorID         string   `json:"creator_id"`
	CreatorName       string   `json:"creator_name" binding:"required"`
	Tags              []string `json:"tags"`
	Category          string   `json:"category"`
	IsPublic          bool     `json:"is_public"`
	SeekingMentorship bool     `json:"seeking_mentorship"`
	CollaborationOpen bool     `json:"collaboration_open"`
}

// NewInvention builds a persistable invention. A missing creator_id gets a
// generated placeholder (no auth layer exists to supply a real one).
func NewInvention(req InventionCreateRequest) Invention {
	creatorID := req.CreatorID
	if creatorID == "" {
		creatorID = PlaceholderUserID()
	}
	now := time.Now().UTC()
	return Invention{
		ID:                uuid.NewString(),
		Title:             req.Title,
		Description:       req.Description,
		CreatorID:         creatorID,
		CreatorName:       req.CreatorName,
		Tags:              emptyIfNil(req.Tags),
		Category:          req.Category,
		IsPublic:          req.IsPublic,
		SeekingMentorship: req.SeekingMentorship,
		CollaborationOpen: req.CollaborationOpen,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// PlaceholderUserID mints a short anonymous user id, "user_" plus the first
// eight characters of a fresh uuid.
func PlaceholderUserID() string {
	return fmt.Sprintf("user_%s", uuid.NewString()[:8])
}
