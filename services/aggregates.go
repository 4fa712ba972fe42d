// Package services holds the aggregate computations the controllers run
// after vote/rating/review writes. They are kept pure so the surrounding
// read-recompute-write step can grow per-invention serialization later
// without touching call sites.
package services

import (
	"math"

	"inventhub-api/models"
)

// VoteTotals re-derives the denormalized vote counters from the full vote
// set of one invention.
func VoteTotals(votes []models.InventionVote) (up, down, total int) {
	for _, v := range votes {
		switch v.VoteType {
		case models.VoteTypeUp:
			up++
		case models.VoteTypeDown:
			down++
		}
	}
	return up, down, up + down
}

// AverageRating returns the mean of all ratings rounded to 2 decimals,
// or 0 when no ratings exist.
func AverageRating(ratings []models.InventionRating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}
	return Round2(float64(sum) / float64(len(ratings)))
}

// OverallScore is the mean of the three peer-review sub-scores rounded to
// 2 decimals.
func OverallScore(technical, innovation, feasibility float64) float64 {
	return Round2((technical + innovation + feasibility) / 3)
}

// Round2 rounds to 2 decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
