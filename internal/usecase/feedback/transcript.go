package feedback

import (
	"fmt"
	"strings"

	"github.com/prepwise-app/prepwise-api/internal/domain/entities"
)

// FormatTranscript renders a transcript as one "- role: content" line per
// message, in order. An empty transcript formats to an empty string.
func FormatTranscript(messages []entities.TranscriptMessage) string {
	var sb strings.Builder
	for _, msg := range messages {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", msg.Role, msg.Content))
	}
	return sb.String()
}
