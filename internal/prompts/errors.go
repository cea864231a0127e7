package prompts

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Kind classifies a match failure. Its value is the error label written to
// the response body.
type Kind string

// Failure kinds.
const (
	KindMissingData     Kind = "Missing Data"
	KindInvalidPrompt   Kind = "Invalid Prompt"
	KindProcessingError Kind = "Processing Error"
	KindInternalError   Kind = "Internal Error"
)

// ErrNoMatch is returned when every field is valid but the combination is
// not in the lookup table.
var ErrNoMatch = errors.New("Invalid Prompt: No matching prompt found for the given criteria")

// ErrBodyTooLarge is returned when a request body exceeds the configured limit.
var ErrBodyTooLarge = errors.New("request body too large")

// Request bodies rejected before matching. All classify as KindMissingData.
var (
	ErrNotJSON     = &BodyError{Message: "Request must contain JSON data"}
	ErrEmptyBody   = &BodyError{Message: "Request body cannot be empty"}
	ErrInvalidJSON = &BodyError{Message: "Invalid JSON format"}
	ErrNotObject   = &BodyError{Message: "Request body must be a JSON object"}
)

// BodyError describes a request body that could not be turned into Fields.
type BodyError struct {
	Message string
}

func (e *BodyError) Error() string { return e.Message }

// MissingDataError lists required fields that were absent or null.
type MissingDataError struct {
	Fields []string
}

func (e *MissingDataError) Error() string {
	return "Missing Data: Required fields missing: " + strings.Join(e.Fields, ", ")
}

// FieldErrors maps each field whose value is outside its domain to the reason.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	return "Invalid Prompt: invalid fields: " + strings.Join(names, ", ")
}

// InternalError wraps an unexpected fault raised while matching.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("An unexpected error occurred: %v", e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }

// KindOf classifies err. It returns the empty Kind for a nil error.
// Errors not produced by this package are processing errors.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var (
		body     *BodyError
		missing  *MissingDataError
		fields   FieldErrors
		internal *InternalError
	)

	switch {
	case errors.As(err, &body), errors.As(err, &missing):
		return KindMissingData
	case errors.As(err, &fields), errors.Is(err, ErrNoMatch):
		return KindInvalidPrompt
	case errors.As(err, &internal):
		return KindInternalError
	default:
		return KindProcessingError
	}
}

// MapHTTPStatus maps match errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrBodyTooLarge) {
		return http.StatusRequestEntityTooLarge
	}

	switch KindOf(err) {
	case "":
		return http.StatusOK
	case KindMissingData:
		return http.StatusBadRequest
	case KindInvalidPrompt:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
