package prompts

// Key is the ordered triple that selects a prompt.
type Key struct {
	Situation Situation
	Level     Level
	FileType  FileType
}

// Entry pairs a lookup key with the prompt it selects.
type Entry struct {
	Key    Key
	Prompt PromptID
}

var entries = []Entry{
	{Key{SituationCommercialAuto, LevelStructure, FileTypeSummaryReport}, "Prompt 1"},
	{Key{SituationGeneralLiability, LevelSummarize, FileTypeDeposition}, "Prompt 2"},
	{Key{SituationCommercialAuto, LevelSummarize, FileTypeSummons}, "Prompt 3"},
	{Key{SituationWorkersCompensation, LevelStructure, FileTypeMedicalRecords}, "Prompt 4"},
	{Key{SituationWorkersCompensation, LevelSummarize, FileTypeSummons}, "Prompt 5"},
}

var table = func() map[Key]PromptID {
	m := make(map[Key]PromptID, len(entries))
	for _, e := range entries {
		m[e.Key] = e.Prompt
	}
	return m
}()

// Entries returns a copy of the lookup table in prompt order.
func Entries() []Entry {
	return append([]Entry(nil), entries...)
}

// Lookup returns the prompt for an exact key.
func Lookup(key Key) (PromptID, bool) {
	id, ok := table[key]
	return id, ok
}

// Matcher resolves a validated key to a prompt.
type Matcher interface {
	Match(key Key) (PromptID, error)
}

// MatcherFunc adapts a function to the Matcher interface.
type MatcherFunc func(key Key) (PromptID, error)

// Match calls f(key).
func (f MatcherFunc) Match(key Key) (PromptID, error) {
	return f(key)
}

// Table is the Matcher backed by the fixed lookup table.
// Matching is exact, case-sensitive and positional.
var Table Matcher = MatcherFunc(func(key Key) (PromptID, error) {
	if id, ok := Lookup(key); ok {
		return id, nil
	}
	return "", ErrNoMatch
})
