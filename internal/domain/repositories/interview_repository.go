package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/prepwise-app/prepwise-api/internal/domain/entities"
)

// InterviewRepository defines the interface for interview data access.
// Interviews are read-only for the feedback pipeline; Create and
// SetCoverURL exist for the interview management surface.
type InterviewRepository interface {
	// Create creates a new interview
	Create(ctx context.Context, interview *entities.Interview) error

	// FindByID finds an interview by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Interview, error)

	// FindByUserID returns all interviews owned by a user, newest first
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Interview, error)

	// FindLatest returns the most recent finalized interviews not owned
	// by the given user, newest first, capped at limit
	FindLatest(ctx context.Context, excludeUserID uuid.UUID, limit int) ([]*entities.Interview, error)

	// SetCoverURL updates the cover image URL of an interview
	SetCoverURL(ctx context.Context, id uuid.UUID, coverURL string) error
}
