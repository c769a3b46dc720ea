package benchmark

// Result represents a single benchmark measurement parsed from the log.
type Result struct {
	Name      string   `json:"name"`
	TimeMs    float64  `json:"time_ms"`
	ChangePct *float64 `json:"change_pct,omitempty"` // nil until a change line is seen
}

// HasChange reports whether a change percentage was observed for the result.
func (r *Result) HasChange() bool {
	return r.ChangePct != nil
}
