// Package smoke runs request scenarios against a live prompt matching
// service and checks each response against its expectation.
package smoke

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed scenarios.yaml
var defaultScenarios []byte

// Scenario is a single match request and its expected response.
// When Body is set it is sent verbatim; otherwise Fields is JSON-encoded.
type Scenario struct {
	Name        string         `yaml:"name"`
	Fields      map[string]any `yaml:"fields,omitempty"`
	Body        *string        `yaml:"body,omitempty"`
	ContentType string         `yaml:"content_type,omitempty"`
	Expect      Expectation    `yaml:"expect"`
}

// Expectation describes a passing response. Zero fields are not checked.
type Expectation struct {
	Status int    `yaml:"status,omitempty"`
	Prompt string `yaml:"prompt,omitempty"`
	Error  string `yaml:"error,omitempty"`
}

// Default returns the embedded scenario set.
func Default() ([]Scenario, error) {
	return Load(bytes.NewReader(defaultScenarios))
}

// LoadFile reads scenarios from a YAML file.
func LoadFile(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenarios: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes a YAML list of scenarios and validates each one.
func Load(r io.Reader) ([]Scenario, error) {
	var scenarios []Scenario
	if err := yaml.NewDecoder(r).Decode(&scenarios); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("no scenarios defined")
		}
		return nil, fmt.Errorf("decode scenarios: %w", err)
	}

	for i, s := range scenarios {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i, err)
		}
	}
	return scenarios, nil
}

func (s Scenario) validate() error {
	switch {
	case s.Name == "":
		return errors.New("name required")
	case s.Expect == (Expectation{}):
		return fmt.Errorf("%s: expect requires status, prompt, or error", s.Name)
	case s.Expect.Prompt != "" && s.Expect.Error != "":
		return fmt.Errorf("%s: expect cannot name both prompt and error", s.Name)
	}
	return nil
}
