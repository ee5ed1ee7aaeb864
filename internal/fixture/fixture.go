// Package fixture loads the named end-to-end elaboration scenarios used
// by pkg/iota's integration tests from a YAML file, the same way the
// teacher loads structured data for its builtins and ext config
// (internal/evaluator/builtins_yaml.go, internal/ext/config.go) rather
// than hand-writing Go literals for test data.
//
// The YAML only carries scenario metadata (name, description, and the
// expected outcome); the actual program each scenario elaborates is
// built from internal/calculus values in Go, since there is no parser
// front end to read a surface syntax from text (spec.md explicitly
// excludes one). Scenario.Name is the join key between the two.
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iotalang/iotacheck/internal/config"
)

// Scenario is one named elaboration expectation.
type Scenario struct {
	Name            string `yaml:"name"`
	Description     string `yaml:"description"`
	WantOK          bool   `yaml:"want_ok"`
	WantErrContains string `yaml:"want_err_contains"`
}

// Bank is a named collection of scenarios, as stored in a fixture file.
type Bank struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load reads and parses a fixture file. path must carry one of
// config.SourceFileExtensions, the same convention the teacher used for
// its own source files, just repointed at fixture data.
func Load(path string) (Bank, error) {
	if !config.HasSourceExt(path) {
		return Bank{}, fmt.Errorf("fixture: %s does not have a recognized fixture extension %v", path, config.SourceFileExtensions)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Bank{}, err
	}
	var bank Bank
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return Bank{}, err
	}
	return bank, nil
}

// ByName returns the scenario with the given name, plus whether it was
// found.
func (b Bank) ByName(name string) (Scenario, bool) {
	for _, s := range b.Scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}
