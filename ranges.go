package nova

import (
	"fmt"
	"math"
)

// Range is a half-open real interval [Lo, Hi).
type Range struct {
	Lo float64 `json:"lo" yaml:"lo"`
	Hi float64 `json:"hi" yaml:"hi"`
}

// IntRange is a half-open integer interval [Lo, Hi).
type IntRange struct {
	Lo int `json:"lo" yaml:"lo"`
	Hi int `json:"hi" yaml:"hi"`
}

// Ranges holds the sampling interval of every ParameterSet dimension.
type Ranges struct {
	Engagement Range    `json:"engagement" yaml:"engagement"` // E, minutes
	Accuracy   Range    `json:"accuracy" yaml:"accuracy"`     // A, fraction before difficulty weighting
	Frequency  IntRange `json:"frequency" yaml:"frequency"`   // F
	Reflection Range    `json:"reflection" yaml:"reflection"` // R
	Voice      IntRange `json:"voice" yaml:"voice"`           // V
}

// DefaultRanges are the sampling intervals of the NOVA baseline model.
var DefaultRanges = Ranges{
	Engagement: Range{10, 40},
	Accuracy:   Range{0.4, 0.9},
	Frequency:  IntRange{5, 20},
	Reflection: Range{2, 5},
	Voice:      IntRange{1, 10},
}

// PreScoreRange is the interval pre-assessment scores are drawn from.
var PreScoreRange = Range{40, 60}

// Validate checks that every interval is non-empty and finite.
func (r Ranges) Validate() error {
	for _, fr := range []struct {
		name string
		rng  Range
	}{
		{"engagement", r.Engagement},
		{"accuracy", r.Accuracy},
		{"reflection", r.Reflection},
	} {
		if err := fr.rng.validate(fr.name); err != nil {
			return err
		}
	}
	for _, ir := range []struct {
		name string
		rng  IntRange
	}{
		{"frequency", r.Frequency},
		{"voice", r.Voice},
	} {
		if ir.rng.Hi <= ir.rng.Lo {
			return fmt.Errorf("%w: %s range [%d, %d) is empty",
				ErrInvalidConfiguration, ir.name, ir.rng.Lo, ir.rng.Hi)
		}
	}
	return nil
}

func (r Range) validate(name string) error {
	if math.IsNaN(r.Lo) || math.IsNaN(r.Hi) || math.IsInf(r.Lo, 0) || math.IsInf(r.Hi, 0) {
		return fmt.Errorf("%w: %s range [%v, %v) is not finite", ErrInvalidConfiguration, name, r.Lo, r.Hi)
	}
	if r.Hi <= r.Lo {
		return fmt.Errorf("%w: %s range [%v, %v) is empty", ErrInvalidConfiguration, name, r.Lo, r.Hi)
	}
	return nil
}
