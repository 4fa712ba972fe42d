package services

// Peer-review sub-score field names as they appear in update request bodies.
const (
	FieldTechnicalScore   = "technical_score"
	FieldInnovationScore  = "innovation_score"
	FieldFeasibilityScore = "feasibility_score"
)

// ReviewCompletion inspects a partial-update body and reports whether it
// carries all three sub-scores at once, which is the only automated status
// transition: the review completes and the overall score is derived in the
// same write. A body with only some scores persists them without
// transitioning.
func ReviewCompletion(body map[string]interface{}) (overall float64, complete bool) {
	technical, okT := scoreValue(body, FieldTechnicalScore)
	innovation, okI := scoreValue(body, FieldInnovationScore)
	feasibility, okF := scoreValue(body, FieldFeasibilityScore)
	if !okT || !okI || !okF {
		return 0, false
	}
	return OverallScore(technical, innovation, feasibility), true
}

func scoreValue(body map[string]interface{}, field string) (float64, bool) {
	raw, ok := body[field]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}
