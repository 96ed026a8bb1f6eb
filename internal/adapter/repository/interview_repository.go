package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/prepwise-app/prepwise-api/internal/domain/entities"
)

// InterviewRepository implements the interview repository interface using GORM
type InterviewRepository struct {
	db *gorm.DB
}

// NewInterviewRepository creates a new interview repository
func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{
		db: db,
	}
}

// Create creates a new interview
func (r *InterviewRepository) Create(ctx context.Context, interview *entities.Interview) error {
	if err := r.db.WithContext(ctx).Create(interview).Error; err != nil {
		return fmt.Errorf("failed to create interview: %w", err)
	}
	return nil
}

// FindByID finds an interview by ID
func (r *InterviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Interview, error) {
	var interview entities.Interview
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&interview).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrInterviewNotFound
		}
		return nil, fmt.Errorf("failed to find interview by ID: %w", err)
	}
	return &interview, nil
}

// FindByUserID returns all interviews owned by a user, newest first
func (r *InterviewRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Interview, error) {
	var interviews []*entities.Interview
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&interviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list interviews by user: %w", err)
	}
	return interviews, nil
}

// FindLatest returns the most recent finalized interviews not owned by
// the given user, newest first. The query combines an inequality filter
// on user_id with ordering on created_at; the composite index
// (finalized, created_at) in the schema keeps it cheap.
func (r *InterviewRepository) FindLatest(ctx context.Context, excludeUserID uuid.UUID, limit int) ([]*entities.Interview, error) {
	var interviews []*entities.Interview
	if err := r.db.WithContext(ctx).
		Where("finalized = ? AND user_id <> ?", true, excludeUserID).
		Order("created_at DESC").
		Limit(limit).
		Find(&interviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list latest interviews: %w", err)
	}
	return interviews, nil
}

// SetCoverURL updates the cover image URL of an interview
func (r *InterviewRepository) SetCoverURL(ctx context.Context, id uuid.UUID, coverURL string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Interview{}).
		Where("id = ?", id).
		Update("cover_url", coverURL)
	if result.Error != nil {
		return fmt.Errorf("failed to update cover URL: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrInterviewNotFound
	}
	return nil
}
