package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// InterviewType distinguishes the focus of a mock interview
type InterviewType string

const (
	InterviewTypeTechnical  InterviewType = "technical"
	InterviewTypeBehavioral InterviewType = "behavioral"
	InterviewTypeMixed      InterviewType = "mixed"
)

// IsValid checks if the interview type is valid
func (t InterviewType) IsValid() bool {
	switch t {
	case InterviewTypeTechnical, InterviewTypeBehavioral, InterviewTypeMixed:
		return true
	}
	return false
}

// Interview represents one mock interview session. The feedback pipeline
// treats interviews as read-only.
type Interview struct {
	ID       uuid.UUID     `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID   uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index:idx_interviews_user_created"`
	Role     string        `json:"role" gorm:"type:varchar(255);not null"`
	Type     InterviewType `json:"type" gorm:"type:varchar(50);default:'mixed';not null"`
	Level    string        `json:"level" gorm:"type:varchar(50)"`

	// Techstack and Questions are stored as JSONB arrays of strings
	Techstack datatypes.JSON `json:"techstack" gorm:"type:jsonb;default:'[]'"`
	Questions datatypes.JSON `json:"questions" gorm:"type:jsonb;default:'[]'"`

	Finalized bool   `json:"finalized" gorm:"default:false;not null;index:idx_interviews_finalized_created"`
	CoverURL  string `json:"cover_url,omitempty" gorm:"type:varchar(500)"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index:idx_interviews_user_created;index:idx_interviews_finalized_created"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Interview
func (Interview) TableName() string {
	return "interviews"
}

// NewInterview creates a new interview owned by the given user
func NewInterview(userID uuid.UUID, role string, interviewType InterviewType) *Interview {
	return &Interview{
		ID:        uuid.New(),
		UserID:    userID,
		Role:      role,
		Type:      interviewType,
		Techstack: datatypes.JSON([]byte("[]")),
		Questions: datatypes.JSON([]byte("[]")),
	}
}

// Validate validates interview data
func (i *Interview) Validate() error {
	if i.UserID == uuid.Nil {
		return ErrInvalidInterviewOwner
	}
	if i.Role == "" {
		return ErrInvalidInterviewRole
	}
	if !i.Type.IsValid() {
		return ErrInvalidInterviewType
	}
	return nil
}
