package prompts

import (
	"fmt"
	"slices"
	"strings"
)

// Situation is the claim line of business a request targets.
type Situation string

// Supported situations.
const (
	SituationCommercialAuto      Situation = "Commercial Auto"
	SituationGeneralLiability    Situation = "General Liability"
	SituationWorkersCompensation Situation = "Workers Compensation"
)

// Level is the kind of output the prompt produces.
type Level string

// Supported levels.
const (
	LevelStructure Level = "Structure"
	LevelSummarize Level = "Summarize"
)

// FileType is the kind of source document the prompt is applied to.
type FileType string

// Supported file types.
const (
	FileTypeMedicalRecords FileType = "Medical Records"
	FileTypeDeposition     FileType = "Deposition"
	FileTypeSummons        FileType = "Summons"
	FileTypeSummaryReport  FileType = "Summary Report"
)

var (
	situations = domain[Situation]{
		field: FieldSituation,
		values: []Situation{
			SituationCommercialAuto,
			SituationGeneralLiability,
			SituationWorkersCompensation,
		},
	}

	levels = domain[Level]{
		field: FieldLevel,
		values: []Level{
			LevelStructure,
			LevelSummarize,
		},
	}

	fileTypes = domain[FileType]{
		field: FieldFileType,
		values: []FileType{
			FileTypeMedicalRecords,
			FileTypeDeposition,
			FileTypeSummons,
			FileTypeSummaryReport,
		},
	}
)

// Situations returns the supported situations in documentation order.
func Situations() []Situation {
	return slices.Clone(situations.values)
}

// Levels returns the supported levels in documentation order.
func Levels() []Level {
	return slices.Clone(levels.values)
}

// FileTypes returns the supported file types in documentation order.
func FileTypes() []FileType {
	return slices.Clone(fileTypes.values)
}

// Valid reports whether s is a supported situation.
func (s Situation) Valid() bool { return slices.Contains(situations.values, s) }

// Valid reports whether l is a supported level.
func (l Level) Valid() bool { return slices.Contains(levels.values, l) }

// Valid reports whether f is a supported file type.
func (f FileType) Valid() bool { return slices.Contains(fileTypes.values, f) }

// domain is a closed, case-sensitive set of accepted values for one field.
type domain[T ~string] struct {
	field  string
	values []T
}

// parse trims surrounding white space and checks membership.
// Non-string values are never members.
func (d domain[T]) parse(raw any) (T, bool) {
	s, ok := raw.(string)
	if !ok {
		return "", false
	}
	v := T(strings.TrimSpace(s))
	return v, slices.Contains(d.values, v)
}

func (d domain[T]) names() []string {
	out := make([]string, len(d.values))
	for i, v := range d.values {
		out[i] = string(v)
	}
	return out
}

func (d domain[T]) reason() string {
	return fmt.Sprintf("Invalid %s. Must be one of: %s", d.field, strings.Join(d.names(), ", "))
}
