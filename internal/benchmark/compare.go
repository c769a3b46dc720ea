package benchmark

import "fmt"

// Comparison relates a benchmark level to its baseline.
type Comparison struct {
	Baseline *Result
	Level    *Result
	Overhead float64 // Level time as a percentage of baseline time
}

// Compare computes the overhead of level relative to baseline.
// It returns false when the baseline time is zero and no ratio exists.
func Compare(baseline, level *Result) (Comparison, bool) {
	if baseline.TimeMs == 0 {
		return Comparison{}, false
	}
	return Comparison{
		Baseline: baseline,
		Level:    level,
		Overhead: (level.TimeMs / baseline.TimeMs) * 100,
	}, true
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s vs %s: %.1f%%", c.Level.Name, c.Baseline.Name, c.Overhead)
}
