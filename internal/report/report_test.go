package report

import (
	"testing"

	"benchgate/internal/benchmark"
	"benchgate/internal/requirements"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	store := benchmark.NewStore()
	store.Put("simple_ts/level/2_logic", 130)
	r := store.Put("simple_ts/level/0_default", 100)
	up := 1.25
	r.ChangePct = &up
	r = store.Put("simple_ts/level/1_signatures", 105)
	down := -3.0
	r.ChangePct = &down

	reqs := requirements.DefaultRequirements()
	outcomes := []requirements.RequirementOutcome{
		{Requirement: reqs[0], Outcome: requirements.Pass},
		{Requirement: reqs[1], Outcome: requirements.Fail},
	}

	want := `============================================================
PERFORMANCE BENCHMARK ANALYSIS
============================================================


============================================================
REQUIREMENTS VALIDATION SUMMARY
============================================================

REQ.10.1: ✅ PASS
REQ.10.2: ❌ FAIL

============================================================
ALL BENCHMARK RESULTS
============================================================

simple_ts/level/0_default
  Time: 100.00ms
  Change: +1.2%

simple_ts/level/1_signatures
  Time: 105.00ms
  Change: -3.0%

simple_ts/level/2_logic
  Time: 130.00ms
`
	assert.Equal(t, want, Generate(outcomes, store))
}

func TestGenerate_OmitsUnevaluated(t *testing.T) {
	store := benchmark.NewStore()
	store.Put("bench/a", 1.005)

	reqs := requirements.DefaultRequirements()
	outcomes := []requirements.RequirementOutcome{
		{Requirement: reqs[0], Outcome: requirements.NotEvaluated},
		{Requirement: reqs[1], Outcome: requirements.Pass},
	}

	got := Generate(outcomes, store)

	assert.NotContains(t, got, "REQ.10.1")
	assert.Contains(t, got, "REQ.10.2: ✅ PASS")
	assert.Contains(t, got, "bench/a\n  Time: 1.00ms\n")
	assert.NotContains(t, got, "Change:")
}

func TestGenerate_Empty(t *testing.T) {
	got := Generate(nil, benchmark.NewStore())

	assert.Contains(t, got, "ALL BENCHMARK RESULTS")
	assert.Equal(t, "\n", got[len(got)-1:])
	assert.Equal(t, Generate(nil, benchmark.NewStore()), got)
}
