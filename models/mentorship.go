package models

import (
	"time"

	"github.com/google/uuid"
)

// MentorshipRequest status is an open string. Known values are pending,
// accepted, rejected and completed but nothing validates writes against
// that list.
type MentorshipRequest struct {
	ID          string    `bson:"id" json:"id"`
	StudentID   string    `bson:"student_id" json:"student_id"`
	StudentName string    `bson:"student_name" json:"student_name"`
	MentorID    string    `bson:"mentor_id" json:"mentor_id"`
	MentorName  string    `bson:"mentor_name" json:"mentor_name"`
	InventionID string    `bson:"invention_id,omitempty" json:"invention_id,omitempty"`
	Subject     string    `bson:"subject" json:"subject"`
	Message     string    `bson:"message" json:"message"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

type MentorshipRequestCreate struct {
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name" binding:"required"`
	MentorID    string `json:"mentor_id" binding:"required"`
	MentorName  string `json:"mentor_name"`
	InventionID string `json:"invention_id"`
	Subject     string `json:"subject" binding:"required"`
	Message     string `json:"message"`
}

func NewMentorshipRequest(req MentorshipRequestCreate) MentorshipRequest {
	studentID := req.StudentID
	if studentID == "" {
		studentID = PlaceholderUserID()
	}
	now := time.Now().UTC()
	return MentorshipRequest{
		ID:          uuid.NewString(),
		StudentID:   studentID,
		StudentName: req.StudentName,
		MentorID:    req.MentorID,
		MentorName:  req.MentorName,
		InventionID: req.InventionID,
		Subject:     req.Subject,
		Message:     req.Message,
		Status:      "pending",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
