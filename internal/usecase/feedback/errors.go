package feedback

import "errors"

// ErrGenerationFailed indicates the model did not produce a usable object.
var ErrGenerationFailed = errors.New("feedback generation failed")

// ValidationError indicates the model produced an object that does not
// conform to the score schema. The offending object is discarded.
type ValidationError struct {
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return "invalid score object: " + e.Reason
}
