package benchmark

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Criterion prints the estimate interval as [lower point upper]:
	//                         time:   [45.234 ms 45.891 ms 46.612 ms]
	timeRegex = regexp.MustCompile(`time:\s+\[[\d.]+ \pL+ ([\d.]+) (\pL+)`)

	// change:   [-2.1034% -0.5102% +1.0829%] (p = 0.52 > 0.05)
	changeRegex = regexp.MustCompile(`change:\s+\[.*?\s+([+-]?[\d.]+)%`)
)

// Parse scans Criterion text output and collects one Result per benchmark name.
//
// A line containing "/" that is not itself a timing line names the benchmark
// that following time and change lines belong to. Lines that do not match
// are skipped without error.
func Parse(output string) *Store {
	store := NewStore()
	current := ""

	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, "/") && !strings.HasPrefix(strings.TrimSpace(line), "time:") {
			current = strings.TrimSpace(line)
		}
		if current == "" {
			continue
		}

		if m := timeRegex.FindStringSubmatch(line); m != nil {
			if val, err := strconv.ParseFloat(m[1], 64); err == nil {
				store.Put(current, ToMillis(val, m[2]))
			}
		}

		if m := changeRegex.FindStringSubmatch(line); m != nil {
			r, ok := store.Get(current)
			if !ok {
				continue
			}
			if pct, err := strconv.ParseFloat(m[1], 64); err == nil {
				r.ChangePct = &pct
			}
		}
	}

	return store
}

// ToMillis converts a value in the given unit to milliseconds.
// Units other than seconds, milliseconds and microseconds are returned as-is.
func ToMillis(value float64, unit string) float64 {
	switch unit {
	case "ms":
		return value
	case "µs", "μs", "us":
		return value / 1000.0
	case "s":
		return value * 1000.0
	default:
		return value
	}
}
