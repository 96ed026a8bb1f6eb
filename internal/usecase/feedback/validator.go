package feedback

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/prepwise-app/prepwise-api/internal/domain/entities"
)

// scoreObject is the validated shape of a model response
type scoreObject struct {
	TotalScore          int
	CategoryScores      []entities.CategoryScore
	Strengths           []string
	AreasForImprovement []string
	FinalAssessment     string
}

// Pointer fields distinguish absent keys from zero values during decoding.
type scoreDraft struct {
	TotalScore          *float64        `json:"totalScore"`
	CategoryScores      []categoryDraft `json:"categoryScores"`
	Strengths           []string        `json:"strengths"`
	AreasForImprovement []string        `json:"areasForImprovement"`
	FinalAssessment     *string         `json:"finalAssessment"`
}

type categoryDraft struct {
	Name    *string  `json:"name"`
	Score   *float64 `json:"score"`
	Comment *string  `json:"comment"`
}

// validateScoreObject parses raw model output and enforces the score schema:
// totalScore in [0, 100], exactly the five known categories in order with
// scores in [0, 100], and all required fields present. A non-conforming
// object is rejected as a whole.
func validateScoreObject(raw string) (*scoreObject, error) {
	var draft scoreDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("malformed JSON: %v", err)}
	}

	if draft.TotalScore == nil {
		return nil, &ValidationError{Reason: "missing totalScore"}
	}
	if *draft.TotalScore < 0 || *draft.TotalScore > 100 {
		return nil, &ValidationError{Reason: fmt.Sprintf("totalScore %v out of range", *draft.TotalScore)}
	}

	if draft.CategoryScores == nil {
		return nil, &ValidationError{Reason: "missing categoryScores"}
	}
	if len(draft.CategoryScores) != len(entities.CategoryNames) {
		return nil, &ValidationError{Reason: fmt.Sprintf("expected %d categories, got %d", len(entities.CategoryNames), len(draft.CategoryScores))}
	}

	categories := make([]entities.CategoryScore, 0, len(draft.CategoryScores))
	for i, cat := range draft.CategoryScores {
		if cat.Name == nil {
			return nil, &ValidationError{Reason: fmt.Sprintf("category %d missing name", i)}
		}
		if *cat.Name != entities.CategoryNames[i] {
			return nil, &ValidationError{Reason: fmt.Sprintf("category %d: expected %q, got %q", i, entities.CategoryNames[i], *cat.Name)}
		}
		if cat.Score == nil {
			return nil, &ValidationError{Reason: fmt.Sprintf("category %q missing score", *cat.Name)}
		}
		if *cat.Score < 0 || *cat.Score > 100 {
			return nil, &ValidationError{Reason: fmt.Sprintf("category %q score %v out of range", *cat.Name, *cat.Score)}
		}
		if cat.Comment == nil {
			return nil, &ValidationError{Reason: fmt.Sprintf("category %q missing comment", *cat.Name)}
		}
		categories = append(categories, entities.CategoryScore{
			Name:    *cat.Name,
			Score:   int(math.Round(*cat.Score)),
			Comment: *cat.Comment,
		})
	}

	if draft.Strengths == nil {
		return nil, &ValidationError{Reason: "missing strengths"}
	}
	if draft.AreasForImprovement == nil {
		return nil, &ValidationError{Reason: "missing areasForImprovement"}
	}
	if draft.FinalAssessment == nil {
		return nil, &ValidationError{Reason: "missing finalAssessment"}
	}

	return &scoreObject{
		TotalScore:          int(math.Round(*draft.TotalScore)),
		CategoryScores:      categories,
		Strengths:           draft.Strengths,
		AreasForImprovement: draft.AreasForImprovement,
		FinalAssessment:     *draft.FinalAssessment,
	}, nil
}
