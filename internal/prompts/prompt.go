// Package prompts implements prompt matching for the API.
// It validates the categorical request fields, resolves them against a
// fixed lookup table, and classifies every failure for the HTTP layer.
package prompts

// PromptID identifies one of the predefined system prompts.
type PromptID string

// Fields is a decoded JSON request object.
// A field may be absent or present with a nil value; both count as missing.
type Fields map[string]any

// Request field names.
const (
	FieldSituation = "situation"
	FieldLevel     = "level"
	FieldFileType  = "file_type"
	FieldData      = "data"
)

var requiredFields = []string{
	FieldSituation,
	FieldLevel,
	FieldFileType,
	FieldData,
}

// RequiredFields returns the field names every match request must carry,
// in the order they are reported when missing.
func RequiredFields() []string {
	return append([]string(nil), requiredFields...)
}

// Request is the documented body of a match request.
// Data is required but never interpreted.
type Request struct {
	Situation string `json:"situation" yaml:"situation"`
	Level     string `json:"level" yaml:"level"`
	FileType  string `json:"file_type" yaml:"file_type"`
	Data      string `json:"data" yaml:"data"`
}

// Fields converts the request into the raw field map consumed by System.Match.
func (r Request) Fields() Fields {
	return Fields{
		FieldSituation: r.Situation,
		FieldLevel:     r.Level,
		FieldFileType:  r.FileType,
		FieldData:      r.Data,
	}
}

// Response is the body returned for a successful match.
type Response struct {
	Success bool     `json:"success"`
	Prompt  PromptID `json:"prompt"`
}
