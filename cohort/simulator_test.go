package cohort

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/sky-flux/nova"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRun(t *testing.T, cfg Config) *Result {
	t.Helper()
	sim, err := NewSimulator(cfg)
	require.NoError(t, err)
	res, err := sim.Run(context.Background())
	require.NoError(t, err)
	return res
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 10, cfg.Size)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Nil(t, cfg.Coefficients)
	assert.Equal(t, 1, cfg.Workers)
}

func TestNewSimulatorInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		cfg := DefaultConfig()
		cfg.Size = size
		_, err := NewSimulator(cfg)
		assert.ErrorIs(t, err, nova.ErrInvalidConfiguration, "size %d", size)
	}
}

func TestNewSimulatorSizeErrorNamesValue(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = -3
	_, err := NewSimulator(cfg)
	require.ErrorIs(t, err, nova.ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "-3")
}

func TestNewSimulatorNegativeWorkers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = -4
	_, err := NewSimulator(cfg)
	require.ErrorIs(t, err, nova.ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "-4")
}

func TestNewSimulatorZeroWorkersRunsSerially(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = 0
	res := mustRun(t, cfg)
	assert.Equal(t, mustRun(t, DefaultConfig()), res)
}

func TestNewSimulatorInvalidCoefficients(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Coefficients = []float64{0.5, 0.5}
	_, err := NewSimulator(cfg)
	assert.ErrorIs(t, err, nova.ErrInvalidConfiguration)
}

func TestRunRows(t *testing.T) {
	res := mustRun(t, DefaultConfig())
	require.Len(t, res.Rows, 10)
	assert.Equal(t, int64(42), res.Seed)
	assert.Equal(t, nova.DefaultCoefficients, res.Coefficients)

	lo, hi := nova.GainBounds(nova.DefaultRanges, nova.DefaultCoefficients)
	for i, row := range res.Rows {
		assert.Equal(t, StudentName(i), row.Student)
		assert.InDelta(t, row.Parameters.Gain(res.Coefficients), row.Gain, 1e-12)
		assert.GreaterOrEqual(t, row.Gain, lo)
		assert.LessOrEqual(t, row.Gain, hi)
		assert.GreaterOrEqual(t, row.Pre, 40.0)
		assert.Less(t, row.Pre, 60.0)
		assert.Greater(t, row.Post, row.Pre)
		assert.LessOrEqual(t, row.Post, row.Pre+40+1e-9)
	}
}

func TestRunCohortRelativeStages(t *testing.T) {
	res := mustRun(t, DefaultConfig())

	sum := 0.0
	for _, row := range res.Rows {
		sum += row.Gain
	}
	assert.InDelta(t, sum/float64(len(res.Rows)), res.Threshold, 1e-9)

	for _, row := range res.Rows {
		want := nova.Reinforce
		if row.Gain >= res.Threshold {
			want = nova.Advance
		}
		assert.Equal(t, want, row.Stage, row.Student)
	}
	assert.Positive(t, res.Advanced())
}

func TestRunBestStudentGainsFortyPoints(t *testing.T) {
	res := mustRun(t, DefaultConfig())
	for _, row := range res.Rows {
		if row.Gain == res.MaxGain {
			assert.InDelta(t, row.Pre+40, row.Post, 1e-9)
			return
		}
	}
	t.Fatal("no row carries the maximum gain")
}

func TestRunDeterministic(t *testing.T) {
	a := mustRun(t, DefaultConfig())
	b := mustRun(t, DefaultConfig())
	assert.Equal(t, a, b)
}

func TestRunIndependentOfWorkers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 200
	serial := mustRun(t, cfg)

	cfg.Workers = 8
	parallel := mustRun(t, cfg)
	assert.Equal(t, serial, parallel)
}

func TestRunSeedChangesCohort(t *testing.T) {
	a := mustRun(t, DefaultConfig())
	cfg := DefaultConfig()
	cfg.Seed = 7
	b := mustRun(t, cfg)
	assert.NotEqual(t, a.Rows[0].Parameters, b.Rows[0].Parameters)
}

func TestRunStudentStableAcrossCohortSize(t *testing.T) {
	small := mustRun(t, DefaultConfig())
	cfg := DefaultConfig()
	cfg.Size = 25
	large := mustRun(t, cfg)
	// Parameters are keyed by student, so the first ten students coincide.
	for i := range small.Rows {
		assert.Equal(t, small.Rows[i].Parameters, large.Rows[i].Parameters)
		assert.Equal(t, small.Rows[i].Pre, large.Rows[i].Pre)
	}
}

func TestRunProgress(t *testing.T) {
	var calls atomic.Int64
	cfg := DefaultConfig()
	cfg.Size = 50
	cfg.Workers = 4
	cfg.Progress = func() { calls.Add(1) }
	mustRun(t, cfg)
	assert.Equal(t, int64(50), calls.Load())
}

func TestRunCancelled(t *testing.T) {
	sim, err := NewSimulator(DefaultConfig())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sim.Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled), "err = %v", err)
}

func TestRunZeroCoefficientsIsDegenerate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Coefficients = []float64{0, 0, 0, 0, 0}
	sim, err := NewSimulator(cfg)
	require.NoError(t, err)
	_, err = sim.Run(context.Background())
	assert.ErrorIs(t, err, nova.ErrDegenerateCohort)
}

func TestResultGains(t *testing.T) {
	res := &Result{Rows: []Row{{Gain: 1}, {Gain: 2}, {Gain: 3}}}
	assert.Equal(t, []float64{1, 2, 3}, res.Gains())
}
