package prompts

// Validate checks a raw request for presence and domain membership.
//
// Presence is checked first: every required field that is absent or nil is
// reported together in a *MissingDataError and no further checks run.
// Otherwise situation, level and file_type are trimmed and checked against
// their domains; every offending field is reported in FieldErrors.
// On success the trimmed values are returned as a Key. Data is never inspected.
func Validate(fields Fields) (Key, error) {
	var missing []string
	for _, name := range requiredFields {
		if v, ok := fields[name]; !ok || v == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return Key{}, &MissingDataError{Fields: missing}
	}

	invalid := FieldErrors{}

	situation, ok := situations.parse(fields[FieldSituation])
	if !ok {
		invalid[FieldSituation] = situations.reason()
	}

	level, ok := levels.parse(fields[FieldLevel])
	if !ok {
		invalid[FieldLevel] = levels.reason()
	}

	fileType, ok := fileTypes.parse(fields[FieldFileType])
	if !ok {
		invalid[FieldFileType] = fileTypes.reason()
	}

	if len(invalid) > 0 {
		return Key{}, invalid
	}

	return Key{
		Situation: situation,
		Level:     level,
		FileType:  fileType,
	}, nil
}
