package models

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	ID         string    `bson:"id" json:"id"`
	GroupID    string    `bson:"group_id" json:"group_id"`
	SenderName string    `bson:"sender_name" json:"sender_name"`
	Message    string    `bson:"message" json:"message"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}

type ChatMessageCreateRequest struct {
	GroupID    string `json:"group_id" binding:"required"`
	SenderName string `json:"sender_name" binding:"required"`
	Message    string `json:"message" binding:"required"`
}

func NewChatMessage(req ChatMessageCreateRequest) ChatMessage {
	return ChatMessage{
		ID:         uuid.NewString(),
		GroupID:    req.GroupID,
		SenderName: req.SenderName,
		Message:    req.Message,
		Timestamp:  time.Now().UTC(),
	}
}
