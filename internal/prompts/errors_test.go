package prompts_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/JaimeStill/promptmatch/internal/prompts"
)

func TestKindOfAndStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		kind   prompts.Kind
		status int
	}{
		{"nil", nil, "", http.StatusOK},
		{"missing data", &prompts.MissingDataError{Fields: []string{"data"}}, prompts.KindMissingData, http.StatusBadRequest},
		{"not json", prompts.ErrNotJSON, prompts.KindMissingData, http.StatusBadRequest},
		{"empty body", prompts.ErrEmptyBody, prompts.KindMissingData, http.StatusBadRequest},
		{"invalid json", prompts.ErrInvalidJSON, prompts.KindMissingData, http.StatusBadRequest},
		{"not object", prompts.ErrNotObject, prompts.KindMissingData, http.StatusBadRequest},
		{"field errors", prompts.FieldErrors{"level": "bad"}, prompts.KindInvalidPrompt, http.StatusUnprocessableEntity},
		{"no match", prompts.ErrNoMatch, prompts.KindInvalidPrompt, http.StatusUnprocessableEntity},
		{"wrapped no match", fmt.Errorf("lookup: %w", prompts.ErrNoMatch), prompts.KindInvalidPrompt, http.StatusUnprocessableEntity},
		{"internal", &prompts.InternalError{Err: errors.New("boom")}, prompts.KindInternalError, http.StatusInternalServerError},
		{"unknown", errors.New("matcher offline"), prompts.KindProcessingError, http.StatusInternalServerError},
		{"too large", fmt.Errorf("%w: limit is 1 KB", prompts.ErrBodyTooLarge), prompts.KindProcessingError, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := prompts.KindOf(tt.err); got != tt.kind {
				t.Errorf("kind: got %q, want %q", got, tt.kind)
			}
			if got := prompts.MapHTTPStatus(tt.err); got != tt.status {
				t.Errorf("status: got %d, want %d", got, tt.status)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{prompts.ErrNoMatch, "Invalid Prompt: No matching prompt found for the given criteria"},
		{&prompts.MissingDataError{Fields: []string{"situation", "data"}}, "Missing Data: Required fields missing: situation, data"},
		{&prompts.InternalError{Err: errors.New("index out of range")}, "An unexpected error occurred: index out of range"},
		{prompts.FieldErrors{"level": "x", "file_type": "y"}, "Invalid Prompt: invalid fields: file_type, level"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("message: got %q, want %q", got, tt.want)
		}
	}
}

func TestInternalErrorUnwraps(t *testing.T) {
	cause := errors.New("cause")
	err := &prompts.InternalError{Err: cause}
	if !errors.Is(err, cause) {
		t.Error("InternalError does not unwrap to its cause")
	}
}
