package interview

import (
	"encoding/json"
	"time"

	"github.com/prepwise-app/prepwise-api/internal/domain/entities"
)

// CreateInterviewRequest is the payload for interview creation
type CreateInterviewRequest struct {
	Role      string   `json:"role" validate:"required,min=1,max=255"`
	Type      string   `json:"type" validate:"required,oneof=technical behavioral mixed"`
	Level     string   `json:"level" validate:"omitempty,max=50"`
	Techstack []string `json:"techstack" validate:"omitempty,dive,min=1"`
	Questions []string `json:"questions" validate:"omitempty,dive,min=1"`
	Finalized bool     `json:"finalized"`
}

// InterviewResponse is the API shape of an interview
type InterviewResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	Type      string    `json:"type"`
	Level     string    `json:"level,omitempty"`
	Techstack []string  `json:"techstack"`
	Questions []string  `json:"questions"`
	Finalized bool      `json:"finalized"`
	CoverURL  string    `json:"cover_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FromEntity builds an InterviewResponse from an interview entity
func FromEntity(iv *entities.Interview) (*InterviewResponse, error) {
	var techstack []string
	if len(iv.Techstack) > 0 {
		if err := json.Unmarshal(iv.Techstack, &techstack); err != nil {
			return nil, err
		}
	}

	var questions []string
	if len(iv.Questions) > 0 {
		if err := json.Unmarshal(iv.Questions, &questions); err != nil {
			return nil, err
		}
	}

	return &InterviewResponse{
		ID:        iv.ID.String(),
		UserID:    iv.UserID.String(),
		Role:      iv.Role,
		Type:      string(iv.Type),
		Level:     iv.Level,
		Techstack: techstack,
		Questions: questions,
		Finalized: iv.Finalized,
		CoverURL:  iv.CoverURL,
		CreatedAt: iv.CreatedAt,
	}, nil
}

// FromEntities builds a list of InterviewResponse
func FromEntities(items []*entities.Interview) ([]*InterviewResponse, error) {
	out := make([]*InterviewResponse, 0, len(items))
	for _, iv := range items {
		resp, err := FromEntity(iv)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}
