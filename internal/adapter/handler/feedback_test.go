package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/prepwise-app/prepwise-api/internal/domain/entities"
	"github.com/prepwise-app/prepwise-api/internal/usecase/feedback"
	"github.com/prepwise-app/prepwise-api/internal/usecase/interview"
	pkgvalidator "github.com/prepwise-app/prepwise-api/pkg/validator"
)

type stubFeedbackService struct {
	result   feedback.CreateFeedbackResult
	stored   *entities.Feedback
	lastArgs feedback.CreateFeedbackParams
}

func (s *stubFeedbackService) CreateFeedback(ctx context.Context, params feedback.CreateFeedbackParams) feedback.CreateFeedbackResult {
	s.lastArgs = params
	return s.result
}

func (s *stubFeedbackService) GetFeedbackByInterview(ctx context.Context, interviewID, userID uuid.UUID) (*entities.Feedback, error) {
	return s.stored, nil
}

type stubInterviewService struct {
	interview *entities.Interview
	list      []*entities.Interview
	err       error
}

func (s *stubInterviewService) Create(ctx context.Context, params interview.CreateInterviewParams) (*entities.Interview, error) {
	return s.interview, s.err
}

func (s *stubInterviewService) GetByID(ctx context.Context, id uuid.UUID) (*entities.Interview, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.interview, nil
}

func (s *stubInterviewService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Interview, error) {
	return s.list, s.err
}

func (s *stubInterviewService) ListLatest(ctx context.Context, excludeUserID uuid.UUID, limit int) ([]*entities.Interview, error) {
	return s.list, s.err
}

func (s *stubInterviewService) SetCoverURL(ctx context.Context, id uuid.UUID, coverURL string) error {
	return nil
}

func newFeedbackContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = pkgvalidator.New()

	req := httptest.NewRequest(http.MethodPost, "/v1/feedback", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uuid.New())

	return c, rec
}

func TestFeedbackCreateSuccess(t *testing.T) {
	interviewID := uuid.New()
	fbSvc := &stubFeedbackService{
		result: feedback.CreateFeedbackResult{Success: true, FeedbackID: "fb-1"},
	}
	ivSvc := &stubInterviewService{
		interview: entities.NewInterview(uuid.New(), "Backend Engineer", entities.InterviewTypeTechnical),
	}
	h := NewFeedback(fbSvc, ivSvc, zap.NewNop())

	body := `{
		"interview_id": "` + interviewID.String() + `",
		"transcript": [
			{"role": "interviewer", "content": "Why Go?"},
			{"role": "candidate", "content": "Concurrency."}
		]
	}`
	c, rec := newFeedbackContext(t, body)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data feedback.CreateFeedbackResult `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Data.Success {
		t.Errorf("expected success result, got %+v", resp.Data)
	}
	if resp.Data.FeedbackID != "fb-1" {
		t.Errorf("FeedbackID = %q, want %q", resp.Data.FeedbackID, "fb-1")
	}

	if fbSvc.lastArgs.InterviewID != interviewID {
		t.Errorf("service got interview ID %v, want %v", fbSvc.lastArgs.InterviewID, interviewID)
	}
	if len(fbSvc.lastArgs.Transcript) != 2 {
		t.Errorf("service got %d transcript messages, want 2", len(fbSvc.lastArgs.Transcript))
	}
}

func TestFeedbackCreateFailureResultIsHTTP200(t *testing.T) {
	fbSvc := &stubFeedbackService{
		result: feedback.CreateFeedbackResult{Success: false, Error: "feedback generation failed"},
	}
	ivSvc := &stubInterviewService{
		interview: entities.NewInterview(uuid.New(), "Backend Engineer", entities.InterviewTypeTechnical),
	}
	h := NewFeedback(fbSvc, ivSvc, zap.NewNop())

	body := `{
		"interview_id": "` + uuid.NewString() + `",
		"transcript": [{"role": "interviewer", "content": "Hello"}]
	}`
	c, rec := newFeedbackContext(t, body)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Data feedback.CreateFeedbackResult `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Success {
		t.Error("expected success=false in result")
	}
	if resp.Data.Error == "" {
		t.Error("expected error message in result")
	}
}

func TestFeedbackCreateUnknownInterview(t *testing.T) {
	fbSvc := &stubFeedbackService{}
	ivSvc := &stubInterviewService{err: entities.ErrInterviewNotFound}
	h := NewFeedback(fbSvc, ivSvc, zap.NewNop())

	body := `{
		"interview_id": "` + uuid.NewString() + `",
		"transcript": [{"role": "interviewer", "content": "Hello"}]
	}`
	c, rec := newFeedbackContext(t, body)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestFeedbackCreateInvalidBody(t *testing.T) {
	fbSvc := &stubFeedbackService{}
	ivSvc := &stubInterviewService{}
	h := NewFeedback(fbSvc, ivSvc, zap.NewNop())

	c, rec := newFeedbackContext(t, `{"interview_id": "not-a-uuid"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestFeedbackGetByInterviewMissing(t *testing.T) {
	fbSvc := &stubFeedbackService{stored: nil}
	ivSvc := &stubInterviewService{}
	h := NewFeedback(fbSvc, ivSvc, zap.NewNop())

	e := echo.New()
	e.Validator = pkgvalidator.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/interviews/:id/feedback")
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())
	c.Set("user_id", uuid.New())

	if err := h.GetByInterview(c); err != nil {
		t.Fatalf("GetByInterview() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data) != 0 && string(resp.Data) != "null" {
		t.Errorf("data = %s, want null", resp.Data)
	}
}
