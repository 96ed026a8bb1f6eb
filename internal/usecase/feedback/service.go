package feedback

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/prepwise-app/prepwise-api/internal/domain/entities"
	"github.com/prepwise-app/prepwise-api/internal/domain/repositories"
	"github.com/prepwise-app/prepwise-api/pkg/ai"
)

// Generator produces a structured JSON object from a prompt pair.
type Generator interface {
	GenerateObject(ctx context.Context, systemInstruction, prompt string) (string, error)
}

// CreateFeedbackParams are the inputs to feedback generation
type CreateFeedbackParams struct {
	InterviewID uuid.UUID
	UserID      uuid.UUID
	Transcript  []entities.TranscriptMessage
	FeedbackID  string
}

// CreateFeedbackResult reports the outcome of feedback generation. Failures
// are carried in Error rather than returned as a Go error so that callers
// always receive a well formed result.
type CreateFeedbackResult struct {
	Success    bool   `json:"success"`
	FeedbackID string `json:"feedbackId,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Service handles feedback generation and retrieval
type Service interface {
	CreateFeedback(ctx context.Context, params CreateFeedbackParams) CreateFeedbackResult
	GetFeedbackByInterview(ctx context.Context, interviewID, userID uuid.UUID) (*entities.Feedback, error)
}

type feedbackService struct {
	generator    Generator
	feedbackRepo repositories.FeedbackRepository
	timeout      time.Duration
	logger       *zap.Logger
}

// NewService creates a new feedback service
func NewService(generator Generator, feedbackRepo repositories.FeedbackRepository, timeout time.Duration, logger *zap.Logger) Service {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &feedbackService{
		generator:    generator,
		feedbackRepo: feedbackRepo,
		timeout:      timeout,
		logger:       logger,
	}
}

// CreateFeedback formats the transcript, asks the model for a score object,
// validates it against the fixed schema, and upserts the resulting record.
// When params.FeedbackID is set the existing record at that key is replaced,
// otherwise a new key is allocated.
func (s *feedbackService) CreateFeedback(ctx context.Context, params CreateFeedbackParams) CreateFeedbackResult {
	formatted := FormatTranscript(params.Transcript)

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.generator.GenerateObject(genCtx, systemInstruction, buildPrompt(formatted))
	if err != nil {
		s.logger.Error("feedback generation failed",
			zap.String("interview_id", params.InterviewID.String()),
			zap.String("user_id", params.UserID.String()),
			zap.Error(err))
		if errors.Is(err, ai.ErrNoObject) {
			return failure(fmt.Errorf("%w: no object returned", ErrGenerationFailed))
		}
		return failure(fmt.Errorf("%w: %v", ErrGenerationFailed, err))
	}

	scores, err := validateScoreObject(raw)
	if err != nil {
		s.logger.Warn("model returned non-conforming score object",
			zap.String("interview_id", params.InterviewID.String()),
			zap.Error(err))
		return failure(err)
	}

	fb := entities.NewFeedback(params.FeedbackID, params.InterviewID, params.UserID)
	fb.TotalScore = scores.TotalScore
	fb.FinalAssessment = scores.FinalAssessment
	if err := fb.SetCategoryScores(scores.CategoryScores); err != nil {
		return failure(fmt.Errorf("failed to encode category scores: %w", err))
	}
	if err := fb.SetStrengths(scores.Strengths); err != nil {
		return failure(fmt.Errorf("failed to encode strengths: %w", err))
	}
	if err := fb.SetAreasForImprovement(scores.AreasForImprovement); err != nil {
		return failure(fmt.Errorf("failed to encode areas for improvement: %w", err))
	}

	if err := s.feedbackRepo.Upsert(ctx, fb); err != nil {
		s.logger.Error("failed to save feedback",
			zap.String("feedback_id", fb.ID),
			zap.Error(err))
		return failure(err)
	}

	s.logger.Info("feedback saved",
		zap.String("feedback_id", fb.ID),
		zap.String("interview_id", params.InterviewID.String()),
		zap.Int("total_score", fb.TotalScore))

	return CreateFeedbackResult{
		Success:    true,
		FeedbackID: fb.ID,
	}
}

// GetFeedbackByInterview returns the feedback for an (interview, user) pair,
// or nil when none exists.
func (s *feedbackService) GetFeedbackByInterview(ctx context.Context, interviewID, userID uuid.UUID) (*entities.Feedback, error) {
	fb, err := s.feedbackRepo.FindByInterviewAndUser(ctx, interviewID, userID)
	if err != nil {
		if errors.Is(err, entities.ErrFeedbackNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return fb, nil
}

func failure(err error) CreateFeedbackResult {
	return CreateFeedbackResult{
		Success: false,
		Error:   err.Error(),
	}
}
