package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/prepwise-app/prepwise-api/internal/domain/entities"
)

// FeedbackRepository defines the interface for feedback persistence.
// Writes are full-record upserts keyed by the feedback ID: the entire
// prior record at that key, if any, is replaced (last-writer-wins).
type FeedbackRepository interface {
	// Upsert writes the full feedback record at its key, creating it if
	// absent or replacing it wholesale if present
	Upsert(ctx context.Context, feedback *entities.Feedback) error

	// FindByInterviewAndUser returns the single feedback record for an
	// (interview, user) pair
	FindByInterviewAndUser(ctx context.Context, interviewID, userID uuid.UUID) (*entities.Feedback, error)
}
