package requirements

import (
	"fmt"
	"strings"
	"unicode"
)

// Outcome is the aggregated result of one requirement across all projects.
type Outcome int

const (
	// NotEvaluated means no project produced a comparable pair.
	NotEvaluated Outcome = iota
	Pass
	Fail
)

func (o Outcome) String() string {
	switch o {
	case Pass:
		return "PASS"
	case Fail:
		return "FAIL"
	default:
		return "NOT EVALUATED"
	}
}

// Evaluated reports whether at least one comparable pair contributed.
func (o Outcome) Evaluated() bool {
	return o != NotEvaluated
}

// and folds one project's result into the aggregate.
func (o Outcome) and(passed bool) Outcome {
	if o == Fail || !passed {
		return Fail
	}
	return Pass
}

// Requirement is an overhead threshold for one level relative to the baseline.
type Requirement struct {
	ID          string  `mapstructure:"id"`           // e.g. "10.1"
	Level       string  `mapstructure:"level"`        // substring identifying the level, e.g. "1_signatures"
	MaxOverhead float64 `mapstructure:"max_overhead"` // percent of baseline time
}

// DefaultBaseline marks the Level 0 benchmark of each project.
const DefaultBaseline = "0_default"

// DefaultProjects returns the project identifiers looked up in benchmark names.
// Matching is by substring, so no identifier may contain another.
func DefaultProjects() []string {
	return []string{"simple_ts", "nestjs"}
}

// DefaultRequirements returns requirements 10.1 and 10.2.
func DefaultRequirements() []Requirement {
	return []Requirement{
		{ID: "10.1", Level: "1_signatures", MaxOverhead: 110.0},
		{ID: "10.2", Level: "2_logic", MaxOverhead: 125.0},
	}
}

// Name is the label used in the report summary, e.g. "REQ.10.1".
func (r Requirement) Name() string {
	return "REQ." + strings.ToUpper(r.ID)
}

// Key is a metric-safe identifier, e.g. "req_10_1".
func (r Requirement) Key() string {
	return "req_" + strings.NewReplacer(".", "_", "-", "_", " ", "_").Replace(r.ID)
}

// Passes reports whether overhead is within the threshold.
func (r Requirement) Passes(overhead float64) bool {
	return overhead <= r.MaxOverhead
}

func (r Requirement) String() string {
	return fmt.Sprintf("Requirement %s", r.ID)
}

// LevelLabel turns a level marker such as "2_logic" into "Level 2".
// Markers without a leading number are returned unchanged.
func LevelLabel(marker string) string {
	end := strings.IndexFunc(marker, func(r rune) bool { return !unicode.IsDigit(r) })
	if end == 0 || marker == "" {
		return marker
	}
	if end < 0 {
		end = len(marker)
	}
	return "Level " + marker[:end]
}
