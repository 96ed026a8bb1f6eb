package entities

// TranscriptMessage is a single utterance in an interview transcript.
// Order within a transcript is conversation order and must be preserved.
type TranscriptMessage struct {
	Role    string `json:"role" validate:"required"`
	Content string `json:"content" validate:"required"`
}
