package feedback

import (
	"testing"

	"github.com/prepwise-app/prepwise-api/internal/domain/entities"
)

func TestFormatTranscript(t *testing.T) {
	messages := []entities.TranscriptMessage{
		{Role: "interviewer", Content: "Tell me about yourself."},
		{Role: "candidate", Content: "I am a backend engineer."},
	}

	got := FormatTranscript(messages)
	want := "- interviewer: Tell me about yourself.\n- candidate: I am a backend engineer.\n"
	if got != want {
		t.Errorf("FormatTranscript() = %q, want %q", got, want)
	}
}

func TestFormatTranscriptEmpty(t *testing.T) {
	if got := FormatTranscript(nil); got != "" {
		t.Errorf("FormatTranscript(nil) = %q, want empty string", got)
	}
	if got := FormatTranscript([]entities.TranscriptMessage{}); got != "" {
		t.Errorf("FormatTranscript(empty) = %q, want empty string", got)
	}
}

func TestFormatTranscriptPreservesOrder(t *testing.T) {
	messages := []entities.TranscriptMessage{
		{Role: "a", Content: "first"},
		{Role: "b", Content: "second"},
		{Role: "a", Content: "third"},
	}

	got := FormatTranscript(messages)
	want := "- a: first\n- b: second\n- a: third\n"
	if got != want {
		t.Errorf("FormatTranscript() = %q, want %q", got, want)
	}
}
