package report

import (
	"fmt"
	"strings"

	"benchgate/internal/benchmark"
	"benchgate/internal/requirements"
)

// FileName is the report written next to the analyzed log.
const FileName = "benchmark_analysis.txt"

var rule = strings.Repeat("=", 60)

// Generate formats the validation summary and every stored result into the
// analysis report. Lines are joined with "\n" and nothing follows the final
// line.
func Generate(outcomes []requirements.RequirementOutcome, store *benchmark.Store) string {
	var lines []string

	section := func(title string) {
		lines = append(lines, rule, title, rule, "")
	}

	section("PERFORMANCE BENCHMARK ANALYSIS")
	lines = append(lines, "")
	section("REQUIREMENTS VALIDATION SUMMARY")

	for _, o := range outcomes {
		if !o.Outcome.Evaluated() {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", o.Requirement.Name(), statusText(o.Outcome)))
	}

	lines = append(lines, "")
	section("ALL BENCHMARK RESULTS")

	for _, r := range store.Sorted() {
		lines = append(lines, r.Name)
		lines = append(lines, fmt.Sprintf("  Time: %.2fms", r.TimeMs))
		if r.HasChange() {
			lines = append(lines, fmt.Sprintf("  Change: %+.1f%%", *r.ChangePct))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func statusText(o requirements.Outcome) string {
	if o == requirements.Pass {
		return "✅ PASS"
	}
	return "❌ FAIL"
}
