package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/prepwise-app/prepwise-api/internal/domain/entities"
)

// FeedbackRepository implements the feedback repository interface using GORM
type FeedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
	}
}

// Upsert writes the full record at its key. Existing rows are replaced
// wholesale (last-writer-wins), never merged.
func (r *FeedbackRepository) Upsert(ctx context.Context, feedback *entities.Feedback) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(feedback).Error; err != nil {
		return fmt.Errorf("failed to upsert feedback: %w", err)
	}
	return nil
}

// FindByInterviewAndUser returns the single feedback record for an
// (interview, user) pair
func (r *FeedbackRepository) FindByInterviewAndUser(ctx context.Context, interviewID, userID uuid.UUID) (*entities.Feedback, error) {
	var feedback entities.Feedback
	if err := r.db.WithContext(ctx).
		Where("interview_id = ? AND user_id = ?", interviewID, userID).
		Limit(1).
		First(&feedback).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("failed to find feedback: %w", err)
	}
	return &feedback, nil
}
