package config

import (
	"fmt"
	"strings"

	"benchgate/internal/telemetry"
)

// Validate checks the configuration and returns an error listing every
// invalid value.
func (c *Config) Validate() error {
	var errors []string

	if len(c.Projects) == 0 {
		errors = append(errors, "projects must not be empty")
	}
	for i, p := range c.Projects {
		if strings.TrimSpace(p) == "" {
			errors = append(errors, fmt.Sprintf("projects[%d] must not be blank", i))
		}
	}

	if strings.TrimSpace(c.Baseline) == "" {
		errors = append(errors, "baseline must not be blank")
	}

	if len(c.Requirements) == 0 {
		errors = append(errors, "requirements must not be empty")
	}
	seen := make(map[string]bool)
	for i, r := range c.Requirements {
		if r.ID == "" {
			errors = append(errors, fmt.Sprintf("requirements[%d].id must not be blank", i))
		} else if seen[r.ID] {
			errors = append(errors, fmt.Sprintf("requirements[%d].id %q is duplicated", i, r.ID))
		}
		seen[r.ID] = true

		if strings.TrimSpace(r.Level) == "" {
			errors = append(errors, fmt.Sprintf("requirements[%d].level must not be blank", i))
		}
		if r.MaxOverhead <= 0 {
			errors = append(errors, fmt.Sprintf("requirements[%d].max_overhead must be positive, got: %v", i, r.MaxOverhead))
		}
	}

	// If there are any errors, return them
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errors, "\n  "))
	}

	warnOverlappingProjects(c.Projects)
	return nil
}

// warnOverlappingProjects logs project identifiers that contain one another.
// Benchmark names are matched by substring, so such projects would claim each
// other's results.
func warnOverlappingProjects(projects []string) {
	for i, a := range projects {
		for j, b := range projects {
			if i != j && a != "" && strings.Contains(b, a) {
				telemetry.LogWarn("Project identifier is a substring of another; results may be paired ambiguously",
					"project", a, "other", b)
			}
		}
	}
}
