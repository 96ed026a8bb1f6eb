package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/prepwise-app/prepwise-api/errors"
	feedbackdto "github.com/prepwise-app/prepwise-api/internal/adapter/dto/feedback"
	"github.com/prepwise-app/prepwise-api/internal/domain/entities"
	"github.com/prepwise-app/prepwise-api/internal/infrastructure/http/middleware"
	"github.com/prepwise-app/prepwise-api/internal/usecase/feedback"
	"github.com/prepwise-app/prepwise-api/internal/usecase/interview"
)

// Feedback handles feedback generation and retrieval endpoints
type Feedback struct {
	feedbackService  feedback.Service
	interviewService interview.Service
	logger           *zap.Logger
}

// NewFeedback creates a new feedback handler
func NewFeedback(feedbackService feedback.Service, interviewService interview.Service, logger *zap.Logger) *Feedback {
	return &Feedback{
		feedbackService:  feedbackService,
		interviewService: interviewService,
		logger:           logger,
	}
}

// Create generates feedback for an interview transcript. The outcome is
// always a 200 with a result object; generation and validation failures
// surface as success=false rather than HTTP errors.
// POST /v1/feedback
func (h *Feedback) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.Unauthorized(nil, "User not authenticated"))
	}

	var req feedbackdto.CreateFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.BadRequest(err, "Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.BadRequest(err, "Invalid request body"))
	}

	interviewID, err := uuid.Parse(req.InterviewID)
	if err != nil {
		return HandleError(h.logger, c, errors.BadRequest(err, "Invalid interview ID"))
	}

	// The interview must exist and be visible before spending a model call
	if _, err := h.interviewService.GetByID(c.Request().Context(), interviewID); err != nil {
		if stdErrors.Is(err, entities.ErrInterviewNotFound) {
			return HandleError(h.logger, c, errors.NotFound(err, "Interview not found"))
		}
		return HandleError(h.logger, c, err)
	}

	transcript := make([]entities.TranscriptMessage, 0, len(req.Transcript))
	for _, msg := range req.Transcript {
		transcript = append(transcript, entities.TranscriptMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	result := h.feedbackService.CreateFeedback(c.Request().Context(), feedback.CreateFeedbackParams{
		InterviewID: interviewID,
		UserID:      userID,
		Transcript:  transcript,
		FeedbackID:  req.FeedbackID,
	})

	return HandleSuccess(h.logger, c, http.StatusOK, result)
}

// GetByInterview returns the feedback for an interview and the current
// user, or data=null when none exists.
// GET /v1/interviews/:id/feedback
func (h *Feedback) GetByInterview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.Unauthorized(nil, "User not authenticated"))
	}

	interviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.BadRequest(err, "Invalid interview ID"))
	}

	fb, err := h.feedbackService.GetFeedbackByInterview(c.Request().Context(), interviewID, userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	if fb == nil {
		return HandleSuccess(h.logger, c, http.StatusOK, nil)
	}

	resp, err := feedbackdto.FromEntity(fb)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, resp)
}
