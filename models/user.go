package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles. role and is_mentor are independent flags: a user may carry
// role "mentor" without is_mentor set, and vice versa.
const (
	RoleStudent    = "student"
	RoleResearcher = "researcher"
	RoleMentor     = "mentor"
	RoleIndustry   = "industry"
)

type User struct {
	ID               string    `bson:"id" json:"id"`
	Username         string    `bson:"username" json:"username"`
	Email            string    `bson:"email" json:"email"`
	FullName         string    `bson:"full_name" json:"full_name"`
	Role             string    `bson:"role" json:"role"`
	IsMentor         bool      `bson:"is_mentor" json:"is_mentor"`
	MentorCategories []string  `bson:"mentor_categories" json:"mentor_categories"`
	Specialization   string    `bson:"specialization" json:"specialization"`
	Skills           []string  `bson:"skills" json:"skills"`
	Bio              string    `bson:"bio" json:"bio"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
}

type UserCreateRequest struct {
	Username         string   `json:"username" binding:"required"`
	Email            string   `json:"email" binding:"required"`
	FullName         string   `json:"full_name"`
	Role             string   `json:"role"`
	IsMentor         bool     `json:"is_mentor"`
	MentorCategories []string `json:"mentor_categories"`
	Specialization   string   `json:"specialization"`
	Skills           []string `json:"skills"`
	Bio              string   `json:"bio"`
}

// NewUser builds a persistable user with a generated id and creation time.
func NewUser(req UserCreateRequest) User {
	role := req.Role
	if role == "" {
		role = RoleStudent
	}
	return User{
		ID:               uuid.NewString(),
		Username:         req.Username,
		Email:            req.Email,
		FullName:         req.FullName,
		Role:             role,
		IsMentor:         req.IsMentor,
		MentorCategories: emptyIfNil(req.MentorCategories),
		Specialization:   req.Specialization,
		Skills:           emptyIfNil(req.Skills),
		Bio:              req.Bio,
		CreatedAt:        time.Now().UTC(),
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
