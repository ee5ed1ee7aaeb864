package iota_test

import (
	"strings"
	"testing"

	"github.com/iotalang/iotacheck/internal/fixture"
	iota "github.com/iotalang/iotacheck/pkg/iota"
)

const fixturePath = "../../internal/fixture/testdata/programs.iota.yaml"

// TestScenarios runs the six literal end-to-end programs spec §8 names
// (S1–S6) and checks each against the outcome recorded in the YAML
// fixture bank, joined by name.
func TestScenarios(t *testing.T) {
	bank, err := fixture.Load(fixturePath)
	if err != nil {
		t.Fatalf("loading fixture bank: %v", err)
	}
	programs := iota.Scenarios()

	for name, prgm := range programs {
		name, prgm := name, prgm
		t.Run(name, func(t *testing.T) {
			sc, ok := bank.ByName(name)
			if !ok {
				t.Fatalf("no fixture metadata for scenario %q", name)
			}
			_, err := iota.ElaborateProgram(prgm)
			if sc.WantOK {
				if err != nil {
					t.Fatalf("%s: expected elaboration to succeed, got error: %v", sc.Description, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("%s: expected elaboration to fail, succeeded", sc.Description)
			}
			if sc.WantErrContains != "" && !strings.Contains(err.Error(), sc.WantErrContains) {
				t.Fatalf("%s: error %q does not contain %q", sc.Description, err.Error(), sc.WantErrContains)
			}
		})
	}

	if len(programs) != len(bank.Scenarios) {
		t.Fatalf("scenario count mismatch: %d programs vs %d fixture entries", len(programs), len(bank.Scenarios))
	}
}
