package analysis

import (
	"errors"
	"fmt"
)

// Error codes surfaced to API callers
const (
	CodeResumeTextMissing = "RESUME_TEXT_MISSING"
	CodeValidation        = "VALIDATION_ERROR"
	CodeInternal          = "INTERNAL_ERROR"
)

// ErrResumeTextMissing is returned when neither raw resume text nor a parsed
// resume was provided
var ErrResumeTextMissing = errors.New("resume text is missing")

// ValidationError represents malformed analysis input
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// Code returns the API error code for err
func Code(err error) string {
	var ve *ValidationError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrResumeTextMissing):
		return CodeResumeTextMissing
	case errors.As(err, &ve):
		return CodeValidation
	default:
		return CodeInternal
	}
}
