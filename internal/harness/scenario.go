package harness

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultTolerance is the absolute tolerance used when an expectation
// does not set one.
const DefaultTolerance = 1e-9

// Scenario is one weight scenario.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario checks.
	Description string `yaml:"description"`

	// Records is an inline record stream. Exactly one of Records and
	// RecordsFile must be set.
	Records string `yaml:"records,omitempty"`

	// RecordsFile is a path to a record stream, relative to the scenario
	// file.
	RecordsFile string `yaml:"records_file,omitempty"`

	// Expect lists the weight checks, evaluated in order.
	Expect []Expectation `yaml:"expect"`
}

// Expectation checks one synapse's weight after stepping to Time.
type Expectation struct {
	// Time is passed to every synapse's UpdateWeight.
	Time float64 `yaml:"time"`

	// Synapse is the 0-based record index of the synapse to check.
	Synapse int `yaml:"synapse"`

	// Weight is the expected weight.
	Weight float64 `yaml:"weight"`

	// Tolerance is the allowed absolute difference. Zero means
	// DefaultTolerance.
	Tolerance float64 `yaml:"tolerance,omitempty"`
}

func (e Expectation) tolerance() float64 {
	if e.Tolerance > 0 {
		return e.Tolerance
	}
	return DefaultTolerance
}

// LoadScenario reads and parses a scenario YAML file. Unknown fields are
// rejected and RecordsFile is resolved against the scenario's directory.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, err
	}

	if scenario.RecordsFile != "" && !filepath.IsAbs(scenario.RecordsFile) {
		scenario.RecordsFile = filepath.Join(filepath.Dir(path), scenario.RecordsFile)
	}
	return scenario, nil
}

// ParseScenario parses scenario YAML. RecordsFile is left as written.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
// Synapse indices are checked against the record stream at run time.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if s.Records == "" && s.RecordsFile == "" {
		return fmt.Errorf("one of records or records_file is required")
	}
	if s.Records != "" && s.RecordsFile != "" {
		return fmt.Errorf("records and records_file are mutually exclusive")
	}
	if len(s.Expect) == 0 {
		return fmt.Errorf("expect list is required and must be non-empty")
	}

	for i, e := range s.Expect {
		if e.Synapse < 0 {
			return fmt.Errorf("expect[%d]: synapse index must be non-negative", i)
		}
		if e.Tolerance < 0 {
			return fmt.Errorf("expect[%d]: tolerance must be non-negative", i)
		}
		if math.IsNaN(e.Time) || math.IsNaN(e.Weight) {
			return fmt.Errorf("expect[%d]: time and weight must be numbers", i)
		}
	}
	return nil
}
