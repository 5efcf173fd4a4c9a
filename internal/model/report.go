package model

import (
	"fmt"
	"strings"
)

// Classification splits the includes of a block into needed and removable.
// Both slices follow the order of the block.
type Classification struct {
	Needed    []IncludeLine
	Removable []IncludeLine
}

// NeededTexts returns the set of include texts that must be kept.
func (c Classification) NeededTexts() map[string]bool {
	texts := make(map[string]bool, len(c.Needed))
	for _, inc := range c.Needed {
		texts[inc.Text] = true
	}

	return texts
}

// Outcome describes what happened to a single file.
type Outcome int

const (
	// OutcomeSkipped means the file has no include block.
	OutcomeSkipped Outcome = iota
	// OutcomeChecked means includes were classified without rewriting.
	OutcomeChecked
	// OutcomeRewritten means the file was rewritten with fewer includes.
	OutcomeRewritten
	// OutcomeUnchanged means the include block is already minimal.
	OutcomeUnchanged
	// OutcomeBaselineBroken means the unmodified file does not compile.
	OutcomeBaselineBroken
	// OutcomeRepairExhausted means no reduced include set compiled.
	OutcomeRepairExhausted
	// OutcomeIOError means reading, writing or temp file handling failed.
	OutcomeIOError
)

var outcomeLabels = map[Outcome]string{
	OutcomeSkipped:         "skipped",
	OutcomeChecked:         "checked",
	OutcomeRewritten:       "rewritten",
	OutcomeUnchanged:       "unchanged",
	OutcomeBaselineBroken:  "baseline-broken",
	OutcomeRepairExhausted: "repair-exhausted",
	OutcomeIOError:         "io-error",
}

func (o Outcome) String() string {
	if label, ok := outcomeLabels[o]; ok {
		return label
	}

	return "unknown"
}

// Failed reports whether the outcome counts against the run.
func (o Outcome) Failed() bool {
	return o == OutcomeBaselineBroken || o == OutcomeRepairExhausted || o == OutcomeIOError
}

// MarshalYAML stores the outcome as its label.
func (o Outcome) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// UnmarshalYAML parses an outcome label.
func (o *Outcome) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var label string
	if err := unmarshal(&label); err != nil {
		return err
	}

	for outcome, l := range outcomeLabels {
		if strings.EqualFold(l, label) {
			*o = outcome
			return nil
		}
	}

	return fmt.Errorf("unknown outcome %q", label)
}

// FileReport is the result of processing one file.
type FileReport struct {
	Path       Path     `yaml:"path"`
	Outcome    Outcome  `yaml:"outcome"`
	Needed     []string `yaml:"needed,omitempty"`
	Removable  []string `yaml:"removable,omitempty"`
	Restored   []string `yaml:"restored,omitempty"`
	BytesSaved int      `yaml:"bytes_saved,omitempty"`
	Error      string   `yaml:"error,omitempty"`
}

// RunReport collects the results of a whole run.
type RunReport struct {
	Compiler string       `yaml:"compiler"`
	Includes []string     `yaml:"includes,omitempty"`
	CFlags   []string     `yaml:"cflags,omitempty"`
	Fix      bool         `yaml:"fix"`
	Files    []FileReport `yaml:"files"`
}

// Failed counts the files whose outcome is a failure.
func (r RunReport) Failed() int {
	failed := 0

	for _, file := range r.Files {
		if file.Outcome.Failed() {
			failed++
		}
	}

	return failed
}
