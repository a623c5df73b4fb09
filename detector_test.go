package apfind

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/hupe1980/apfind/internal/container"
	"github.com/hupe1980/apfind/internal/mla"
	"github.com/hupe1980/apfind/internal/resource"
	"github.com/hupe1980/apfind/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		input []uint64
		want  string
	}{
		{"Empty", nil, "0"},
		{"SingleValue", []uint64{42}, "1: 42"},
		{"Pair", []uint64{1, 10}, "2: 1 10"},
		{"FullProgression", []uint64{1, 3, 5, 7, 9}, "5: 1 3 5 7 9"},
		{"ConstantRun", []uint64{5, 5, 5, 5}, "4: 5 5 5 5"},
		{"NoThreeTerm", []uint64{1, 2, 4, 8, 16}, "2: 1 2"},
		{"HiddenTriple", []uint64{1, 2, 4, 7, 11}, "3: 1 4 7"},
		{"SkippedValues", []uint64{1, 2, 3, 5, 7}, "4: 1 3 5 7"},
		{"Interleaved", []uint64{1, 3, 4, 5, 7, 9}, "5: 1 3 5 7 9"},
		{"DuplicatesInside", []uint64{0, 2, 2, 4, 4, 6}, "4: 0 2 4 6"},
		{"TieKeepsFirst", []uint64{1, 2, 3, 10, 11, 12}, "3: 1 2 3"},
		{"LargeValues", []uint64{1 << 62, 1<<62 + 7, 1<<62 + 14}, "3: 4611686018427387904 4611686018427387911 4611686018427387918"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, fanout := range []int{2, 3, mla.DefaultFanout} {
				p, err := Find(tt.input, WithFanout(fanout))
				require.NoError(t, err)
				assert.Equal(t, tt.want, p.String(), "fanout %d", fanout)
			}
		})
	}
}

func TestFind_OrderViolation(t *testing.T) {
	p, err := Find([]uint64{5, 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOrderViolation)

	var ove *OrderViolationError
	require.ErrorAs(t, err, &ove)
	assert.Equal(t, 2, ove.Line)
	assert.Equal(t, 1, ove.Index)
	assert.Equal(t, uint64(5), ove.Previous)
	assert.Equal(t, uint64(3), ove.Value)
	assert.Contains(t, err.Error(), "at line 2")

	// Best before the failure.
	assert.Equal(t, "1: 5", p.String())
}

func TestDetector_PushOrderViolation(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	require.NoError(t, d.Push(4))
	require.NoError(t, d.Push(4))

	err = d.Push(2)
	var ove *OrderViolationError
	require.ErrorAs(t, err, &ove)
	assert.Equal(t, 0, ove.Line)
	assert.Equal(t, 2, ove.Index)
	assert.Contains(t, err.Error(), "at index 2")
	assert.Equal(t, 2, d.Len())
}

func TestDetector_ReportsImprovements(t *testing.T) {
	var reports []string
	_, err := Find([]uint64{1, 3, 5, 7, 9}, WithReporter(func(p Progression) {
		reports = append(reports, p.String())
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"1: 1",
		"2: 1 3",
		"3: 1 3 5",
		"4: 1 3 5 7",
		"5: 1 3 5 7 9",
	}, reports)
}

func TestDetector_ImprovementsStrictlyIncrease(t *testing.T) {
	rng := testutil.NewRNG(99)
	stream := rng.MonotonicStream(200, 6)

	last := 0
	_, err := Find(stream, WithReporter(func(p Progression) {
		assert.Greater(t, p.Length, last)
		last = p.Length
	}))
	require.NoError(t, err)
	assert.Equal(t, testutil.LongestProgression(stream), last)
}

func TestDetector_Stats(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	d, err := New(WithFanout(2), WithMetricsCollector(metrics))
	require.NoError(t, err)

	for _, v := range []uint64{1, 3, 5, 7, 9} {
		require.NoError(t, d.Push(v))
	}

	st := d.Stats()
	assert.Equal(t, 5, st.Values)
	assert.Equal(t, int64(8), st.Scanned)
	assert.Equal(t, 4, st.Extensions)
	assert.Equal(t, 5, st.Improvements)
	assert.Equal(t, 5, st.Best)
	assert.Equal(t, 1, st.StoreSegments)
	assert.Equal(t, 2, st.IndexDepth)
	assert.Equal(t, 3, st.IndexNodes)
	assert.Positive(t, st.MemoryBytes)
	assert.Equal(t, st.MemoryBytes, st.PeakMemoryBytes)

	ms := metrics.GetStats()
	assert.Equal(t, int64(5), ms.ValueCount)
	assert.Equal(t, int64(8), ms.ScannedCount)
	assert.Equal(t, int64(4), ms.ExtensionCount)
	assert.Equal(t, int64(5), ms.ImprovementCount)
	assert.Equal(t, int64(5), ms.BestLength)
	assert.Equal(t, int64(0), ms.ErrorCount)
}

func TestDetector_AllocationFailure(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	// Room for the first store segment only: the first extension fails.
	d, err := New(WithMemoryLimit(container.SegmentBytes), WithMetricsCollector(metrics))
	require.NoError(t, err)

	require.NoError(t, d.Push(1))
	require.NoError(t, d.Push(2))

	err = d.Push(3)
	assert.ErrorIs(t, err, ErrAllocationFailed)
	assert.ErrorIs(t, err, resource.ErrMemoryLimitExceeded)
	assert.Equal(t, 2, d.Result().Length)
	assert.Equal(t, int64(1), metrics.GetStats().ErrorCount)
}

func TestDetector_AllocationFailureOnStore(t *testing.T) {
	_, err := Find([]uint64{1}, WithMemoryLimit(1))
	assert.ErrorIs(t, err, ErrAllocationFailed)
}

func TestNew_InvalidFanout(t *testing.T) {
	_, err := New(WithFanout(1))
	assert.ErrorIs(t, err, ErrInvalidFanout)
}

func TestFind_MatchesExhaustiveSearch(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		rng := testutil.NewRNG(seed)
		maxStep := uint64(seed%5) + 1
		stream := rng.MonotonicStream(60, maxStep)

		for _, fanout := range []int{2, 5, mla.DefaultFanout} {
			p, err := Find(stream, WithFanout(fanout))
			require.NoError(t, err)

			values := p.Values()
			require.Equal(t, testutil.LongestProgression(stream), p.Length, "seed %d fanout %d", seed, fanout)
			require.True(t, testutil.IsProgression(values), "seed %d: %v", seed, values)
			require.True(t, testutil.IsSubsequence(values, stream), "seed %d: %v", seed, values)
		}
	}
}

func TestFind_PlantedProgression(t *testing.T) {
	rng := testutil.NewRNG(2024)
	stream := rng.PlantedStream(300, 100000, 1000, 997, 25)

	p, err := Find(stream, WithFanout(4))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, p.Length, 25)
	assert.True(t, testutil.IsProgression(p.Values()))
	assert.True(t, testutil.IsSubsequence(p.Values(), stream))
}

func TestFind_Deterministic(t *testing.T) {
	stream := testutil.NewRNG(5).MonotonicStream(150, 3)

	var first, second []string
	p1, err := Find(stream, WithReporter(func(p Progression) { first = append(first, p.String()) }))
	require.NoError(t, err)
	p2, err := Find(stream, WithReporter(func(p Progression) { second = append(second, p.String()) }))
	require.NoError(t, err)

	assert.Equal(t, p1, p2)
	assert.Equal(t, first, second)
}

func TestDetector_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Find([]uint64{2, 4, 6}, WithLogger(logger), WithProgressInterval(0))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"progression improved"`)
	assert.Contains(t, out, `"msg":"run completed"`)
	assert.NotContains(t, out, "ingest progress")
}

func TestDetector_ProgressLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, nil))

	_, err := Find([]uint64{2, 4, 6}, WithLogger(logger), WithProgressInterval(DefaultProgressInterval))
	require.NoError(t, err)

	// rate.Sometimes always runs the first call.
	assert.Contains(t, buf.String(), "ingest progress")
}
