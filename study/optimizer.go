package study

import (
	"fmt"
	"math"

	"github.com/sky-flux/nova"
)

// OptimizerConfig configures an Optimizer.
// Zero values produce sensible defaults; see field comments.
type OptimizerConfig struct {
	Coefficients []float64 `json:"coefficients"` // nil → nova.DefaultCoefficients
	Threshold    float64   `json:"threshold"`    // zero → nova.DefaultThreshold; negative → error
}

// Optimizer turns parameter sets into learning gains and stages.
type Optimizer struct {
	coefficients nova.Coefficients
	classifier   nova.FixedThreshold
}

// NewOptimizer creates an Optimizer from the given config.
// Returns nova.ErrInvalidConfiguration for a malformed coefficient vector
// or a negative or non-finite threshold.
func NewOptimizer(cfg OptimizerConfig) (*Optimizer, error) {
	coef, err := nova.NewCoefficients(cfg.Coefficients)
	if err != nil {
		return nil, err
	}
	threshold := cfg.Threshold
	if threshold < 0 || math.IsInf(threshold, 0) || math.IsNaN(threshold) {
		return nil, fmt.Errorf("%w: threshold = %v must be non-negative and finite", nova.ErrInvalidConfiguration, threshold)
	}
	if threshold == 0 {
		threshold = nova.DefaultThreshold
	}
	return &Optimizer{
		coefficients: coef,
		classifier:   nova.FixedThreshold{Threshold: threshold},
	}, nil
}

// Optimize returns the learning gain of p.
func (o *Optimizer) Optimize(p nova.ParameterSet) float64 {
	return nova.LearningGain(p, o.coefficients)
}

// ClassifyStage labels a learning gain against the fixed threshold.
func (o *Optimizer) ClassifyStage(gain float64) nova.Stage {
	return o.classifier.Stage(gain)
}

// Coefficients returns the weights used by Optimize.
func (o *Optimizer) Coefficients() nova.Coefficients { return o.coefficients }

// Classifier returns the fixed-threshold policy used by ClassifyStage.
func (o *Optimizer) Classifier() nova.FixedThreshold { return o.classifier }
