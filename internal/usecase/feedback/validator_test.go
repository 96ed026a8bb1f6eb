package feedback

import (
	"fmt"
	"testing"
)

func validRawObject() string {
	return `{
		"totalScore": 72,
		"categoryScores": [
			{"name": "Communication Skills", "score": 80, "comment": "Clear answers."},
			{"name": "Technical Knowledge", "score": 70, "comment": "Solid fundamentals."},
			{"name": "Problem Solving", "score": 65, "comment": "Needed hints."},
			{"name": "Cultural Fit", "score": 75, "comment": "Collaborative."},
			{"name": "Confidence and Clarity", "score": 70, "comment": "Occasionally hesitant."}
		],
		"strengths": ["communication", "fundamentals"],
		"areasForImprovement": ["algorithm practice"],
		"finalAssessment": "A promising candidate with room to grow."
	}`
}

func TestValidateScoreObjectValid(t *testing.T) {
	obj, err := validateScoreObject(validRawObject())
	if err != nil {
		t.Fatalf("validateScoreObject() error = %v", err)
	}

	if obj.TotalScore != 72 {
		t.Errorf("TotalScore = %d, want 72", obj.TotalScore)
	}
	if len(obj.CategoryScores) != 5 {
		t.Fatalf("got %d categories, want 5", len(obj.CategoryScores))
	}
	if obj.CategoryScores[2].Name != "Problem Solving" {
		t.Errorf("category 2 name = %q, want %q", obj.CategoryScores[2].Name, "Problem Solving")
	}
	if len(obj.Strengths) != 2 {
		t.Errorf("got %d strengths, want 2", len(obj.Strengths))
	}
	if obj.FinalAssessment == "" {
		t.Error("FinalAssessment is empty")
	}
}

func TestValidateScoreObjectMalformedJSON(t *testing.T) {
	if _, err := validateScoreObject("not json at all"); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestValidateScoreObjectMissingFields(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing totalScore", `{"categoryScores": [], "strengths": [], "areasForImprovement": [], "finalAssessment": "x"}`},
		{"missing categoryScores", `{"totalScore": 50, "strengths": [], "areasForImprovement": [], "finalAssessment": "x"}`},
		{"missing strengths", `{"totalScore": 50, "categoryScores": [], "areasForImprovement": [], "finalAssessment": "x"}`},
		{"missing finalAssessment", `{"totalScore": 50, "categoryScores": [], "strengths": [], "areasForImprovement": []}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validateScoreObject(tc.raw)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if _, ok := err.(*ValidationError); !ok {
				t.Errorf("error type = %T, want *ValidationError", err)
			}
		})
	}
}

func TestValidateScoreObjectTotalScoreOutOfRange(t *testing.T) {
	for _, score := range []int{-1, 101, 500} {
		raw := fmt.Sprintf(`{"totalScore": %d, "categoryScores": [], "strengths": [], "areasForImprovement": [], "finalAssessment": "x"}`, score)
		if _, err := validateScoreObject(raw); err == nil {
			t.Errorf("expected error for totalScore %d", score)
		}
	}
}

func TestValidateScoreObjectWrongCategoryCount(t *testing.T) {
	raw := `{
		"totalScore": 50,
		"categoryScores": [
			{"name": "Communication Skills", "score": 50, "comment": "ok"}
		],
		"strengths": [], "areasForImprovement": [], "finalAssessment": "x"
	}`
	if _, err := validateScoreObject(raw); err == nil {
		t.Fatal("expected error for wrong category count")
	}
}

func TestValidateScoreObjectWrongCategoryName(t *testing.T) {
	raw := `{
		"totalScore": 50,
		"categoryScores": [
			{"name": "Communication Skills", "score": 50, "comment": "ok"},
			{"name": "Technical Knowledge", "score": 50, "comment": "ok"},
			{"name": "Creativity", "score": 50, "comment": "ok"},
			{"name": "Cultural Fit", "score": 50, "comment": "ok"},
			{"name": "Confidence and Clarity", "score": 50, "comment": "ok"}
		],
		"strengths": [], "areasForImprovement": [], "finalAssessment": "x"
	}`
	if _, err := validateScoreObject(raw); err == nil {
		t.Fatal("expected error for unknown category name")
	}
}

func TestValidateScoreObjectWrongCategoryOrder(t *testing.T) {
	raw := `{
		"totalScore": 50,
		"categoryScores": [
			{"name": "Technical Knowledge", "score": 50, "comment": "ok"},
			{"name": "Communication Skills", "score": 50, "comment": "ok"},
			{"name": "Problem Solving", "score": 50, "comment": "ok"},
			{"name": "Cultural Fit", "score": 50, "comment": "ok"},
			{"name": "Confidence and Clarity", "score": 50, "comment": "ok"}
		],
		"strengths": [], "areasForImprovement": [], "finalAssessment": "x"
	}`
	if _, err := validateScoreObject(raw); err == nil {
		t.Fatal("expected error for out of order categories")
	}
}

func TestValidateScoreObjectCategoryScoreOutOfRange(t *testing.T) {
	raw := `{
		"totalScore": 50,
		"categoryScores": [
			{"name": "Communication Skills", "score": 120, "comment": "ok"},
			{"name": "Technical Knowledge", "score": 50, "comment": "ok"},
			{"name": "Problem Solving", "score": 50, "comment": "ok"},
			{"name": "Cultural Fit", "score": 50, "comment": "ok"},
			{"name": "Confidence and Clarity", "score": 50, "comment": "ok"}
		],
		"strengths": [], "areasForImprovement": [], "finalAssessment": "x"
	}`
	if _, err := validateScoreObject(raw); err == nil {
		t.Fatal("expected error for out of range category score")
	}
}

func TestValidateScoreObjectBoundaryScores(t *testing.T) {
	raw := `{
		"totalScore": 0,
		"categoryScores": [
			{"name": "Communication Skills", "score": 0, "comment": "ok"},
			{"name": "Technical Knowledge", "score": 100, "comment": "ok"},
			{"name": "Problem Solving", "score": 0, "comment": "ok"},
			{"name": "Cultural Fit", "score": 100, "comment": "ok"},
			{"name": "Confidence and Clarity", "score": 50, "comment": "ok"}
		],
		"strengths": [], "areasForImprovement": [], "finalAssessment": "x"
	}`
	obj, err := validateScoreObject(raw)
	if err != nil {
		t.Fatalf("validateScoreObject() error = %v", err)
	}
	if obj.TotalScore != 0 {
		t.Errorf("TotalScore = %d, want 0", obj.TotalScore)
	}
	if obj.CategoryScores[1].Score != 100 {
		t.Errorf("category 1 score = %d, want 100", obj.CategoryScores[1].Score)
	}
}
