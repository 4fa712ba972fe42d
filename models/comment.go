package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment threads are advisory: parent_comment_id links a reply to its
// parent but nothing enforces the link or cascades deletes.
type Comment struct {
	ID              string    `bson:"id" json:"id"`
	InventionID     string    `bson:"invention_id" json:"invention_id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	UserName        string    `bson:"user_name" json:"user_name"`
	Content         string    `bson:"content" json:"content"`
	ParentCommentID string    `bson:"parent_comment_id,omitempty" json:"parent_comment_id,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

type CommentCreateRequest struct {
	UserID          string `json:"user_id"`
	UserName        string `json:"user_name" binding:"required"`
	Content         string `json:"content" binding:"required"`
	ParentCommentID string `json:"parent_comment_id"`
}

func NewComment(inventionID string, req CommentCreateRequest) Comment {
	userID := req.UserID
	if userID == "" {
		userID = PlaceholderUserID()
	}
	return Comment{
		ID:              uuid.NewString(),
		InventionID:     inventionID,
		UserID:          userID,
		UserName:        req.UserName,
		Content:         req.Content,
		ParentCommentID: req.ParentCommentID,
		CreatedAt:       time.Now().UTC(),
	}
}
