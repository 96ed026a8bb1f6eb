package handler

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/prepwise-app/prepwise-api/errors"
	"github.com/prepwise-app/prepwise-api/internal/adapter/dto/common"
	interviewdto "github.com/prepwise-app/prepwise-api/internal/adapter/dto/interview"
	"github.com/prepwise-app/prepwise-api/internal/domain/entities"
	"github.com/prepwise-app/prepwise-api/internal/infrastructure/http/middleware"
	"github.com/prepwise-app/prepwise-api/internal/infrastructure/storage"
	"github.com/prepwise-app/prepwise-api/internal/usecase/interview"
)

// maxCoverSize limits cover image uploads to 5 MiB
const maxCoverSize = 5 << 20

// Interview handles interview management endpoints
type Interview struct {
	interviewService interview.Service
	storageClient    *storage.MinioClient
	logger           *zap.Logger
}

// NewInterview creates a new interview handler
func NewInterview(interviewService interview.Service, storageClient *storage.MinioClient, logger *zap.Logger) *Interview {
	return &Interview{
		interviewService: interviewService,
		storageClient:    storageClient,
		logger:           logger,
	}
}

// Create creates a new interview owned by the current user
// POST /v1/interviews
func (h *Interview) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.Unauthorized(nil, "User not authenticated"))
	}

	var req interviewdto.CreateInterviewRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.BadRequest(err, "Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.BadRequest(err, "Invalid request body"))
	}

	iv, err := h.interviewService.Create(c.Request().Context(), interview.CreateInterviewParams{
		UserID:    userID,
		Role:      req.Role,
		Type:      entities.InterviewType(req.Type),
		Level:     req.Level,
		Techstack: req.Techstack,
		Questions: req.Questions,
		Finalized: req.Finalized,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	resp, err := interviewdto.FromEntity(iv)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, resp)
}

// GetByID returns a single interview
// GET /v1/interviews/:id
func (h *Interview) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.BadRequest(err, "Invalid interview ID"))
	}

	iv, err := h.interviewService.GetByID(c.Request().Context(), id)
	if err != nil {
		if stdErrors.Is(err, entities.ErrInterviewNotFound) {
			return HandleError(h.logger, c, errors.NotFound(err, "Interview not found"))
		}
		return HandleError(h.logger, c, err)
	}

	resp, err := interviewdto.FromEntity(iv)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, resp)
}

// ListMine returns the current user's interviews, newest first
// GET /v1/interviews
func (h *Interview) ListMine(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.Unauthorized(nil, "User not authenticated"))
	}

	items, err := h.interviewService.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	resp, err := interviewdto.FromEntities(items)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, common.ListResponse{Data: resp, Count: len(resp)})
}

// ListLatest returns recent finalized interviews from other users
// GET /v1/interviews/latest
func (h *Interview) ListLatest(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.Unauthorized(nil, "User not authenticated"))
	}

	limit := 20
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	items, err := h.interviewService.ListLatest(c.Request().Context(), userID, limit)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	resp, err := interviewdto.FromEntities(items)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, common.ListResponse{Data: resp, Count: len(resp)})
}

// UploadCover stores a cover image for an interview and records its URL
// POST /v1/interviews/:id/cover
func (h *Interview) UploadCover(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.Unauthorized(nil, "User not authenticated"))
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.BadRequest(err, "Invalid interview ID"))
	}

	iv, err := h.interviewService.GetByID(c.Request().Context(), id)
	if err != nil {
		if stdErrors.Is(err, entities.ErrInterviewNotFound) {
			return HandleError(h.logger, c, errors.NotFound(err, "Interview not found"))
		}
		return HandleError(h.logger, c, err)
	}
	if iv.UserID != userID {
		return HandleError(h.logger, c, errors.Forbidden(nil, "Not the interview owner"))
	}

	fileHeader, err := c.FormFile("cover")
	if err != nil {
		return HandleError(h.logger, c, errors.BadRequest(err, "Missing cover file"))
	}
	if fileHeader.Size > maxCoverSize {
		return HandleError(h.logger, c, errors.BadRequest(nil, "Cover file too large"))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return HandleError(h.logger, c, errors.BadRequest(nil, "Cover must be an image"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.BadRequest(err, "Failed to read cover file"))
	}
	defer file.Close()

	objectName := fmt.Sprintf("covers/%s%s", id.String(), filepath.Ext(fileHeader.Filename))
	if _, err := h.storageClient.UploadCover(c.Request().Context(), objectName, file, fileHeader.Size, contentType); err != nil {
		return HandleError(h.logger, c, err)
	}

	coverURL, err := h.storageClient.CoverURL(c.Request().Context(), objectName, 7*24*time.Hour)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.interviewService.SetCoverURL(c.Request().Context(), id, coverURL); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, map[string]string{"cover_url": coverURL})
}
