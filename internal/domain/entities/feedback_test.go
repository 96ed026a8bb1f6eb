package entities

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewFeedbackAllocatesKey(t *testing.T) {
	fb := NewFeedback("", uuid.New(), uuid.New())
	if fb.ID == "" {
		t.Fatal("expected an allocated ID")
	}
	if _, err := uuid.Parse(fb.ID); err != nil {
		t.Errorf("allocated ID %q is not a UUID: %v", fb.ID, err)
	}
	if fb.CreatedAt.IsZero() {
		t.Error("CreatedAt was not set")
	}
}

func TestNewFeedbackKeepsCallerKey(t *testing.T) {
	fb := NewFeedback("abc", uuid.New(), uuid.New())
	if fb.ID != "abc" {
		t.Errorf("ID = %q, want %q", fb.ID, "abc")
	}
}

func TestFeedbackCategoryScoresRoundTrip(t *testing.T) {
	fb := NewFeedback("", uuid.New(), uuid.New())

	in := []CategoryScore{
		{Name: CategoryNames[0], Score: 80, Comment: "clear"},
		{Name: CategoryNames[1], Score: 60, Comment: "solid"},
	}
	if err := fb.SetCategoryScores(in); err != nil {
		t.Fatalf("SetCategoryScores() error = %v", err)
	}

	out, err := fb.GetCategoryScores()
	if err != nil {
		t.Fatalf("GetCategoryScores() error = %v", err)
	}
	if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
		t.Errorf("round trip mismatch: %+v", out)
	}
}
