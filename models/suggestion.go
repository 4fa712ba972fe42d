package models

import (
	"time"

	"github.com/google/uuid"
)

// PublicSuggestion votes are a monotonic counter, incremented in place
// rather than recomputed from child records.
type PublicSuggestion struct {
	ID                string    `bson:"id" json:"id"`
	Title             string    `bson:"title" json:"title"`
	Description       string    `bson:"description" json:"description"`
	TechnologyArea    string    `bson:"technology_area" json:"technology_area"`
	SuggestedBy       string    `bson:"suggested_by" json:"suggested_by"`
	InspirationSource string    `bson:"inspiration_source,omitempty" json:"inspiration_source,omitempty"`
	Votes             int       `bson:"votes" json:"votes"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
}

type PublicSuggestionCreate struct {
	Title             string `json:"title" binding:"required"`
	Description       string `json:"description" binding:"required"`
	TechnologyArea    string `json:"technology_area" binding:"required"`
	SuggestedBy       string `json:"suggested_by" binding:"required"`
	InspirationSource string `json:"inspiration_source"`
}

func NewPublicSuggestion(req PublicSuggestionCreate) PublicSuggestion {
	return PublicSuggestion{
		ID:                uuid.NewString(),
		Title:             req.Title,
		Description:       req.Description,
		TechnologyArea:    req.TechnologyArea,
		SuggestedBy:       req.SuggestedBy,
		InspirationSource: req.InspirationSource,
		Votes:             0,
		CreatedAt:         time.Now().UTC(),
	}
}
