package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/lawrence-dass/coop-ready/internal/analysis"
	"github.com/lawrence-dass/coop-ready/internal/llm"
)

// Error codes returned alongside analysis codes
const (
	CodeBadRequest     = "BAD_REQUEST"
	CodeLLMUnavailable = "LLM_UNAVAILABLE"
	CodeLLMFailed      = "LLM_FAILED"
	CodeLLMParse       = "LLM_PARSE_ERROR"
	CodeRateLimited    = "RATE_LIMITED"
)

// errorBody is the JSON shape of every error response
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrBadRequest indicates a body that could not be decoded
type ErrBadRequest struct {
	Cause error
}

func (e *ErrBadRequest) Error() string {
	return fmt.Sprintf("invalid request body: %v", e.Cause)
}

func (e *ErrBadRequest) Unwrap() error {
	return e.Cause
}

// ErrLLMUnavailable indicates keyword extraction was requested without a configured model
type ErrLLMUnavailable struct{}

func (e *ErrLLMUnavailable) Error() string {
	return "keyword extraction is not configured; send keywords or set GEMINI_API_KEY"
}

// ErrLLMFailed wraps a failed model call
type ErrLLMFailed struct {
	Cause error
}

func (e *ErrLLMFailed) Error() string {
	return fmt.Sprintf("keyword extraction failed: %v", e.Cause)
}

func (e *ErrLLMFailed) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	if errors.Is(err, analysis.ErrResumeTextMissing) {
		return http.StatusBadRequest
	}
	switch err.(type) {
	case *ErrValidation, *ErrBadRequest, *analysis.ValidationError:
		return http.StatusBadRequest
	case *ErrLLMUnavailable:
		return http.StatusServiceUnavailable
	case *ErrLLMFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorCode returns the machine-readable code for an error
func ErrorCode(err error) string {
	var pe *llm.ParseError
	switch e := err.(type) {
	case *ErrValidation:
		return analysis.CodeValidation
	case *ErrBadRequest:
		return CodeBadRequest
	case *ErrLLMUnavailable:
		return CodeLLMUnavailable
	case *ErrLLMFailed:
		if errors.As(e.Cause, &pe) {
			return CodeLLMParse
		}
		return CodeLLMFailed
	default:
		return analysis.Code(err)
	}
}
