package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification types created by other handlers. Clients never create
// notifications directly.
const (
	NotificationPeerReviewRequest = "peer_review_request"
	NotificationMentorshipRequest = "mentorship_request"
	NotificationNewComment        = "new_comment"
)

type Notification struct {
	ID        string                 `bson:"id" json:"id"`
	UserID    string                 `bson:"user_id" json:"user_id"`
	Type      string                 `bson:"type" json:"type"`
	Title     string                 `bson:"title" json:"title"`
	Message   string                 `bson:"message" json:"message"`
	Data      map[string]interface{} `bson:"data" json:"data"`
	Read      bool                   `bson:"read" json:"read"`
	CreatedAt time.Time              `bson:"created_at" json:"created_at"`
}

func NewNotification(userID, ntype, title, message string, data map[string]interface{}) Notification {
	if data == nil {
		data = map[string]interface{}{}
	}
	return Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      ntype,
		Title:     title,
		Message:   message,
		Data:      data,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}
}
