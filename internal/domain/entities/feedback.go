package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CategoryNames are the five mandated evaluation categories, in the
// order the model must return them and the order they are stored.
var CategoryNames = [5]string{
	"Communication Skills",
	"Technical Knowledge",
	"Problem Solving",
	"Cultural Fit",
	"Confidence and Clarity",
}

// CategoryScore is one of the five fixed sub-scores of a feedback record
type CategoryScore struct {
	Name    string `json:"name"`
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// Feedback is the structured evaluation produced for one interview
// attempt. The primary key is an opaque string so callers may supply
// their own identifier for overwrite-by-key semantics; records are
// immutable except for full replacement at the same key.
type Feedback struct {
	ID          string    `json:"id" gorm:"type:varchar(64);primary_key"`
	InterviewID uuid.UUID `json:"interview_id" gorm:"type:uuid;not null;index:idx_feedback_interview_user"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index:idx_feedback_interview_user"`

	TotalScore          int            `json:"total_score" gorm:"not null"`
	CategoryScores      datatypes.JSON `json:"category_scores" gorm:"type:jsonb;not null"`
	Strengths           datatypes.JSON `json:"strengths" gorm:"type:jsonb;default:'[]'"`
	AreasForImprovement datatypes.JSON `json:"areas_for_improvement" gorm:"type:jsonb;default:'[]'"`
	FinalAssessment     string         `json:"final_assessment" gorm:"type:text"`

	// CreatedAt is assigned at write time, never caller-supplied
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for Feedback
func (Feedback) TableName() string {
	return "feedback"
}

// NewFeedback builds a feedback record from validated evaluation fields.
// The key is the caller-supplied identifier or a freshly allocated UUID
// when the identifier is empty.
func NewFeedback(id string, interviewID, userID uuid.UUID) *Feedback {
	if id == "" {
		id = uuid.NewString()
	}
	return &Feedback{
		ID:          id,
		InterviewID: interviewID,
		UserID:      userID,
		CreatedAt:   time.Now().UTC(),
	}
}

// SetCategoryScores marshals category scores into the JSONB column
func (f *Feedback) SetCategoryScores(scores []CategoryScore) error {
	b, err := json.Marshal(scores)
	if err != nil {
		return err
	}
	f.CategoryScores = b
	return nil
}

// GetCategoryScores unmarshals category scores from the JSONB column
func (f *Feedback) GetCategoryScores() ([]CategoryScore, error) {
	var scores []CategoryScore
	if len(f.CategoryScores) == 0 {
		return scores, nil
	}
	if err := json.Unmarshal(f.CategoryScores, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

// SetStrengths marshals strengths into the JSONB column
func (f *Feedback) SetStrengths(strengths []string) error {
	b, err := json.Marshal(strengths)
	if err != nil {
		return err
	}
	f.Strengths = b
	return nil
}

// SetAreasForImprovement marshals improvement areas into the JSONB column
func (f *Feedback) SetAreasForImprovement(areas []string) error {
	b, err := json.Marshal(areas)
	if err != nil {
		return err
	}
	f.AreasForImprovement = b
	return nil
}
