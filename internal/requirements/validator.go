package requirements

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"benchgate/internal/benchmark"
	"benchgate/internal/telemetry"
)

// Marker decorates the PASS/FAIL status printed in the breakdown.
type Marker interface {
	Pass(text string) string
	Fail(text string) string
}

type plainMarker struct{}

func (plainMarker) Pass(text string) string { return text }
func (plainMarker) Fail(text string) string { return text }

// Check is one project's comparison against one requirement.
type Check struct {
	Project     string
	Requirement Requirement
	Comparison  benchmark.Comparison
	Passed      bool
}

// RequirementOutcome pairs a requirement with its aggregated outcome.
type RequirementOutcome struct {
	Requirement Requirement
	Outcome     Outcome
}

// Summary is the output of a validation pass.
type Summary struct {
	Outcomes []RequirementOutcome // in requirement declaration order
	Checks   []Check
}

// Outcome returns the aggregated outcome for the requirement with the given ID.
func (s Summary) Outcome(id string) Outcome {
	for _, o := range s.Outcomes {
		if o.Requirement.ID == id {
			return o.Outcome
		}
	}
	return NotEvaluated
}

// Validator evaluates overhead requirements over a result store.
type Validator struct {
	Projects     []string
	Baseline     string
	Requirements []Requirement

	out    io.Writer
	marker Marker
}

// NewValidator creates a Validator with the default projects and requirements.
// The per-project breakdown is written to out.
func NewValidator(out io.Writer) *Validator {
	return &Validator{
		Projects:     DefaultProjects(),
		Baseline:     DefaultBaseline,
		Requirements: DefaultRequirements(),
		out:          out,
		marker:       plainMarker{},
	}
}

// WithMarker sets the decoration used for status markers.
func (v *Validator) WithMarker(m Marker) *Validator {
	if m != nil {
		v.marker = m
	}
	return v
}

// Validate groups results by project and level and checks every requirement.
func (v *Validator) Validate(store *benchmark.Store) Summary {
	summary := Summary{Outcomes: make([]RequirementOutcome, len(v.Requirements))}
	for i, req := range v.Requirements {
		summary.Outcomes[i] = RequirementOutcome{Requirement: req}
	}

	for _, project := range v.Projects {
		baseline, levels := v.collect(store, project)
		if baseline == nil {
			telemetry.LogDebug("No baseline found", "project", project, "baseline", v.Baseline)
			continue
		}

		for i, req := range v.Requirements {
			level := levels[i]
			if level == nil {
				continue
			}

			cmp, ok := benchmark.Compare(baseline, level)
			if !ok {
				telemetry.LogWarn("Baseline time is zero, skipping comparison",
					"project", project, "requirement", req.ID, "baseline", baseline.Name)
				continue
			}

			passed := req.Passes(cmp.Overhead)
			v.printCheck(project, req, cmp, passed)

			summary.Outcomes[i].Outcome = summary.Outcomes[i].Outcome.and(passed)
			summary.Checks = append(summary.Checks, Check{
				Project:     project,
				Requirement: req,
				Comparison:  cmp,
				Passed:      passed,
			})
		}
	}

	return summary
}

// collect finds the baseline and per-requirement level results for a project.
// Each result fills at most one slot, the baseline taking precedence, and a
// later result replaces an earlier one in the same slot.
func (v *Validator) collect(store *benchmark.Store, project string) (*benchmark.Result, []*benchmark.Result) {
	var baseline *benchmark.Result
	levels := make([]*benchmark.Result, len(v.Requirements))

	for _, r := range store.All() {
		if !strings.Contains(r.Name, project) {
			continue
		}
		if strings.Contains(r.Name, v.Baseline) {
			baseline = r
			continue
		}
		for i, req := range v.Requirements {
			if strings.Contains(r.Name, req.Level) {
				levels[i] = r
				break
			}
		}
	}

	return baseline, levels
}

func (v *Validator) printCheck(project string, req Requirement, cmp benchmark.Comparison, passed bool) {
	if v.out == nil {
		return
	}

	status := v.marker.Pass("✅ PASS")
	if !passed {
		status = v.marker.Fail("❌ FAIL")
	}

	fmt.Fprintf(v.out, "\n%s - %s:\n", strings.ToUpper(project), req)
	fmt.Fprintf(v.out, "  %s: %.2fms\n", LevelLabel(v.Baseline), cmp.Baseline.TimeMs)
	fmt.Fprintf(v.out, "  %s: %.2fms\n", LevelLabel(req.Level), cmp.Level.TimeMs)
	fmt.Fprintf(v.out, "  Overhead: %.1f%%\n", cmp.Overhead)
	fmt.Fprintf(v.out, "  Status: %s (requirement: ≤ %s%%)\n",
		status, strconv.FormatFloat(req.MaxOverhead, 'f', -1, 64))
}
