package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	interviewdto "github.com/prepwise-app/prepwise-api/internal/adapter/dto/interview"
	"github.com/prepwise-app/prepwise-api/internal/domain/entities"
	pkgvalidator "github.com/prepwise-app/prepwise-api/pkg/validator"
)

func newListContext(t *testing.T, path string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = pkgvalidator.New()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uuid.New())

	return c, rec
}

func TestInterviewListMineEnvelope(t *testing.T) {
	ivSvc := &stubInterviewService{
		list: []*entities.Interview{
			entities.NewInterview(uuid.New(), "Backend Engineer", entities.InterviewTypeTechnical),
			entities.NewInterview(uuid.New(), "Frontend Engineer", entities.InterviewTypeBehavioral),
		},
	}
	h := NewInterview(ivSvc, nil, zap.NewNop())

	c, rec := newListContext(t, "/v1/interviews")

	if err := h.ListMine(c); err != nil {
		t.Fatalf("ListMine() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data struct {
			Data  []*interviewdto.InterviewResponse `json:"data"`
			Count int                               `json:"count"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Count != 2 {
		t.Errorf("count = %d, want 2", resp.Data.Count)
	}
	if len(resp.Data.Data) != 2 {
		t.Errorf("got %d items, want 2", len(resp.Data.Data))
	}
	if resp.Data.Data[0].Role != "Backend Engineer" {
		t.Errorf("first role = %q, want %q", resp.Data.Data[0].Role, "Backend Engineer")
	}
}

func TestInterviewListLatestEnvelopeEmpty(t *testing.T) {
	ivSvc := &stubInterviewService{}
	h := NewInterview(ivSvc, nil, zap.NewNop())

	c, rec := newListContext(t, "/v1/interviews/latest")

	if err := h.ListLatest(c); err != nil {
		t.Fatalf("ListLatest() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Data struct {
			Count int `json:"count"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Count != 0 {
		t.Errorf("count = %d, want 0", resp.Data.Count)
	}
}
