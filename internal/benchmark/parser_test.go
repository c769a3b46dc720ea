package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	output := `
Benchmarking processing_time_simple_ts/level/0_default: Analyzing
processing_time_simple_ts/level/0_default
                        time:   [44.012 ms 45.000 ms 46.731 ms]
                        change: [-2.1034% -0.5102% +1.0829%] (p = 0.52 > 0.05)
                        No change in performance detected.
Found 3 outliers among 100 measurements (3.00%)
processing_time_simple_ts/level/1_signatures
                        time:   [47.100 ms 47.500 ms 47.900 ms]
`
	store := Parse(output)

	assert.Equal(t, 2, store.Len())

	r, ok := store.Get("processing_time_simple_ts/level/0_default")
	require.True(t, ok)
	assert.Equal(t, 45.0, r.TimeMs)
	require.NotNil(t, r.ChangePct)
	assert.Equal(t, -0.5102, *r.ChangePct)

	r, ok = store.Get("processing_time_simple_ts/level/1_signatures")
	require.True(t, ok)
	assert.Equal(t, 47.5, r.TimeMs)
	assert.False(t, r.HasChange())
}

func TestParse_MiddleValue(t *testing.T) {
	store := Parse("group/level/variant\n time: [44.0 ms 45.0 ms 46.0 ms]\n")

	r, ok := store.Get("group/level/variant")
	require.True(t, ok)
	assert.Equal(t, 45.0, r.TimeMs)
}

func TestParse_Units(t *testing.T) {
	tests := []struct {
		name string
		line string
		want float64
	}{
		{"micro sign", "time:   [900 µs 1000 µs 1100 µs]", 1.0},
		{"greek mu", "time:   [900 μs 1000 μs 1100 μs]", 1.0},
		{"ascii micro", "time:   [900 us 1000 us 1100 us]", 1.0},
		{"seconds", "time:   [1.1 s 1.2 s 1.3 s]", 1200.0},
		{"millis", "time:   [1.5 ms 2.5 ms 3.5 ms]", 2.5},
		{"nanos pass through", "time:   [10 ns 20 ns 30 ns]", 20.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := Parse("bench/x\n" + tt.line)
			r, ok := store.Get("bench/x")
			require.True(t, ok)
			assert.InDelta(t, tt.want, r.TimeMs, 1e-9)
		})
	}
}

func TestParse_ChangeBeforeTime(t *testing.T) {
	output := `
bench/a
    change: [-1.0% +2.0% +3.0%] (p = 0.01 < 0.05)
`
	store := Parse(output)
	assert.Equal(t, 0, store.Len())
}

func TestParse_NoCursor(t *testing.T) {
	output := `
    time:   [1.0 ms 2.0 ms 3.0 ms]
    change: [-1.0% +2.0% +3.0%]
`
	store := Parse(output)
	assert.Equal(t, 0, store.Len())
}

func TestParse_DuplicateOverwrites(t *testing.T) {
	output := `
bench/a
    time:   [1.0 ms 2.0 ms 3.0 ms]
    change: [-1.0% +2.0% +3.0%]
bench/a
    time:   [4.0 ms 5.0 ms 6.0 ms]
`
	store := Parse(output)

	r, ok := store.Get("bench/a")
	require.True(t, ok)
	assert.Equal(t, 5.0, r.TimeMs)
	assert.False(t, r.HasChange())
}

func TestParse_MalformedSkipped(t *testing.T) {
	output := `
bench/a
    time:   [1.0 ms 1.2.3 ms 3.0 ms]
bench/b
    time:   [abc ms 2.0 ms 3.0 ms]
bench/c
    time:   [1.0 ms 2.0 ms 3.0 ms]
    change: [-1.0% +2.0.0% +3.0%]
`
	store := Parse(output)

	assert.Equal(t, 1, store.Len())
	r, ok := store.Get("bench/c")
	require.True(t, ok)
	assert.False(t, r.HasChange())
}

func TestParse_NameAndTimeOnOneLine(t *testing.T) {
	store := Parse("short/x                 time:   [1.0 ms 2.0 ms 3.0 ms]")

	r, ok := store.Get("short/x                 time:   [1.0 ms 2.0 ms 3.0 ms]")
	require.True(t, ok)
	assert.Equal(t, 2.0, r.TimeMs)
}

func TestParse_CRLF(t *testing.T) {
	store := Parse("bench/a\r\n    time:   [1.0 ms 2.0 ms 3.0 ms]\r\n")

	r, ok := store.Get("bench/a")
	require.True(t, ok)
	assert.Equal(t, 2.0, r.TimeMs)
}

func TestToMillis(t *testing.T) {
	assert.Equal(t, 1.0, ToMillis(1000, "µs"))
	assert.Equal(t, 2000.0, ToMillis(2, "s"))
	assert.Equal(t, 3.0, ToMillis(3, "ms"))
	assert.Equal(t, 7.0, ToMillis(7, "ps"))
}
