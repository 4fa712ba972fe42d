package models

import (
	"time"

	"github.com/google/uuid"
)

type Group struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	InventionID string    `bson:"invention_id,omitempty" json:"invention_id,omitempty"`
	Members     []string  `bson:"members" json:"members"`
	Moderators  []string  `bson:"moderators" json:"moderators"`
	CreatorID   string    `bson:"creator_id" json:"creator_id"`
	IsPrivate   bool      `bson:"is_private" json:"is_private"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

type GroupCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	InventionID string `json:"invention_id"`
	CreatorID   string `json:"creator_id"`
	IsPrivate   bool   `json:"is_private"`
}

// NewGroup builds a group with its creator as first member and sole
// initial moderator.
func NewGroup(req GroupCreateRequest) Group {
	creatorID := req.CreatorID
	if creatorID == "" {
		creatorID = PlaceholderUserID()
	}
	return Group{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		InventionID: req.InventionID,
		Members:     []string{creatorID},
		Moderators:  []string{creatorID},
		CreatorID:   creatorID,
		IsPrivate:   req.IsPrivate,
		CreatedAt:   time.Now().UTC(),
	}
}
