package nova

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultThreshold is the fixed learning gain cut-off of the study model.
const DefaultThreshold = 60.0

// Classifier assigns a Stage to every gain of a run.
// The returned slice is parallel to gains.
type Classifier interface {
	Name() string
	Classify(gains []float64) ([]Stage, error)
}

// Compile-time interface checks.
var (
	_ Classifier = CohortMean{}
	_ Classifier = FixedThreshold{}
)

// CohortMean labels a gain Advance when it is at or above the mean gain of
// the whole cohort. It needs every gain of the cohort before it can label
// any of them, so the outcome for one student depends on the others.
type CohortMean struct{}

// Name returns "cohort-mean".
func (CohortMean) Name() string { return "cohort-mean" }

// Threshold returns the arithmetic mean of gains.
// Returns ErrDegenerateCohort for an empty cohort.
func (CohortMean) Threshold(gains []float64) (float64, error) {
	if len(gains) == 0 {
		return 0, fmt.Errorf("%w: cannot average an empty cohort", ErrDegenerateCohort)
	}
	mean := stat.Mean(gains, nil)
	// Summation error can push the mean of equal values above all of them.
	return min(mean, floats.Max(gains)), nil
}

// Classify labels every gain against the cohort mean.
func (c CohortMean) Classify(gains []float64) ([]Stage, error) {
	threshold, err := c.Threshold(gains)
	if err != nil {
		return nil, err
	}
	stages := make([]Stage, len(gains))
	for i, g := range gains {
		stages[i] = stageFor(g, threshold)
	}
	return stages, nil
}

// FixedThreshold labels a gain Advance when it is at or above a constant.
// Each gain is labelled on its own; the rest of the run has no effect.
type FixedThreshold struct {
	Threshold float64
}

// Name returns "fixed-threshold".
func (FixedThreshold) Name() string { return "fixed-threshold" }

// Stage labels a single gain.
func (f FixedThreshold) Stage(gain float64) Stage {
	return stageFor(gain, f.Threshold)
}

// Classify labels every gain independently. It never fails.
func (f FixedThreshold) Classify(gains []float64) ([]Stage, error) {
	stages := make([]Stage, len(gains))
	for i, g := range gains {
		stages[i] = f.Stage(g)
	}
	return stages, nil
}
