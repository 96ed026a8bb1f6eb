package interview

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/prepwise-app/prepwise-api/internal/domain/entities"
	"github.com/prepwise-app/prepwise-api/internal/domain/repositories"
)

// CreateInterviewParams are the inputs for creating an interview
type CreateInterviewParams struct {
	UserID    uuid.UUID
	Role      string
	Type      entities.InterviewType
	Level     string
	Techstack []string
	Questions []string
	Finalized bool
}

// Service handles interview management
type Service interface {
	Create(ctx context.Context, params CreateInterviewParams) (*entities.Interview, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Interview, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Interview, error)
	ListLatest(ctx context.Context, excludeUserID uuid.UUID, limit int) ([]*entities.Interview, error)
	SetCoverURL(ctx context.Context, id uuid.UUID, coverURL string) error
}

type interviewService struct {
	interviewRepo repositories.InterviewRepository
	logger        *zap.Logger
}

// NewService creates a new interview service
func NewService(interviewRepo repositories.InterviewRepository, logger *zap.Logger) Service {
	return &interviewService{
		interviewRepo: interviewRepo,
		logger:        logger,
	}
}

// Create validates and persists a new interview
func (s *interviewService) Create(ctx context.Context, params CreateInterviewParams) (*entities.Interview, error) {
	interview := entities.NewInterview(params.UserID, params.Role, params.Type)
	interview.Level = params.Level
	interview.Finalized = params.Finalized

	if params.Techstack != nil {
		b, err := json.Marshal(params.Techstack)
		if err != nil {
			return nil, fmt.Errorf("failed to encode techstack: %w", err)
		}
		interview.Techstack = b
	}
	if params.Questions != nil {
		b, err := json.Marshal(params.Questions)
		if err != nil {
			return nil, fmt.Errorf("failed to encode questions: %w", err)
		}
		interview.Questions = b
	}

	if err := interview.Validate(); err != nil {
		return nil, err
	}

	if err := s.interviewRepo.Create(ctx, interview); err != nil {
		s.logger.Error("failed to create interview",
			zap.String("user_id", params.UserID.String()),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("interview created",
		zap.String("interview_id", interview.ID.String()),
		zap.String("user_id", params.UserID.String()),
		zap.String("role", interview.Role))

	return interview, nil
}

// GetByID returns a single interview
func (s *interviewService) GetByID(ctx context.Context, id uuid.UUID) (*entities.Interview, error) {
	return s.interviewRepo.FindByID(ctx, id)
}

// ListByUser returns all interviews owned by a user, newest first
func (s *interviewService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Interview, error) {
	return s.interviewRepo.FindByUserID(ctx, userID)
}

// ListLatest returns recent finalized interviews from other users
func (s *interviewService) ListLatest(ctx context.Context, excludeUserID uuid.UUID, limit int) ([]*entities.Interview, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.interviewRepo.FindLatest(ctx, excludeUserID, limit)
}

// SetCoverURL updates the cover image URL of an interview
func (s *interviewService) SetCoverURL(ctx context.Context, id uuid.UUID, coverURL string) error {
	return s.interviewRepo.SetCoverURL(ctx, id, coverURL)
}
