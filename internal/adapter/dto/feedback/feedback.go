package feedback

import (
	"encoding/json"
	"time"

	"github.com/prepwise-app/prepwise-api/internal/domain/entities"
)

// TranscriptMessage is one utterance of the interview transcript
type TranscriptMessage struct {
	Role    string `json:"role" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// CreateFeedbackRequest is the payload for feedback generation
type CreateFeedbackRequest struct {
	InterviewID string              `json:"interview_id" validate:"required,uuid"`
	Transcript  []TranscriptMessage `json:"transcript" validate:"required,dive"`
	FeedbackID  string              `json:"feedback_id,omitempty" validate:"omitempty,max=64"`
}

// FeedbackResponse is the API shape of a feedback record
type FeedbackResponse struct {
	ID                  string                   `json:"id"`
	InterviewID         string                   `json:"interview_id"`
	UserID              string                   `json:"user_id"`
	TotalScore          int                      `json:"total_score"`
	CategoryScores      []entities.CategoryScore `json:"category_scores"`
	Strengths           []string                 `json:"strengths"`
	AreasForImprovement []string                 `json:"areas_for_improvement"`
	FinalAssessment     string                   `json:"final_assessment"`
	CreatedAt           time.Time                `json:"created_at"`
}

// FromEntity builds a FeedbackResponse from a feedback entity
func FromEntity(fb *entities.Feedback) (*FeedbackResponse, error) {
	scores, err := fb.GetCategoryScores()
	if err != nil {
		return nil, err
	}

	var strengths []string
	if len(fb.Strengths) > 0 {
		if err := unmarshalStrings(fb.Strengths, &strengths); err != nil {
			return nil, err
		}
	}

	var areas []string
	if len(fb.AreasForImprovement) > 0 {
		if err := unmarshalStrings(fb.AreasForImprovement, &areas); err != nil {
			return nil, err
		}
	}

	return &FeedbackResponse{
		ID:                  fb.ID,
		InterviewID:         fb.InterviewID.String(),
		UserID:              fb.UserID.String(),
		TotalScore:          fb.TotalScore,
		CategoryScores:      scores,
		Strengths:           strengths,
		AreasForImprovement: areas,
		FinalAssessment:     fb.FinalAssessment,
		CreatedAt:           fb.CreatedAt,
	}, nil
}

func unmarshalStrings(raw []byte, dst *[]string) error {
	return json.Unmarshal(raw, dst)
}
