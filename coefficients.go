package nova

import (
	"fmt"
	"math"
)

// NumCoefficients is the number of weights in a coefficient vector,
// one per ParameterSet dimension.
const NumCoefficients = 5

// Coefficients weights the five inputs of the learning gain formula
// in the order E, A, F, R, V.
type Coefficients [NumCoefficients]float64

// DefaultCoefficients is the alpha vector of the NOVA baseline model.
var DefaultCoefficients = Coefficients{
	0.25, // α1 engagement time
	0.35, // α2 accuracy (applied to A·100)
	0.15, // α3 interaction frequency
	0.15, // α4 reflection depth
	0.10, // α5 voice interaction count
}

// NewCoefficients builds a coefficient vector from a slice.
// A nil slice yields DefaultCoefficients; any other slice must hold
// exactly NumCoefficients finite values.
func NewCoefficients(alpha []float64) (Coefficients, error) {
	if alpha == nil {
		return DefaultCoefficients, nil
	}
	if len(alpha) != NumCoefficients {
		return Coefficients{}, fmt.Errorf("%w: coefficient vector has length %d, want %d",
			ErrInvalidConfiguration, len(alpha), NumCoefficients)
	}
	var c Coefficients
	copy(c[:], alpha)
	if err := ValidateCoefficients(c); err != nil {
		return Coefficients{}, err
	}
	return c, nil
}

// ValidateCoefficients checks that every weight is a finite number.
// Weights need not sum to 1.
func ValidateCoefficients(c Coefficients) error {
	for i, w := range c {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: alpha[%d] = %v is not finite", ErrInvalidConfiguration, i, w)
		}
	}
	return nil
}

// Slice returns the weights as a freshly allocated slice.
func (c Coefficients) Slice() []float64 {
	out := make([]float64, NumCoefficients)
	copy(out, c[:])
	return out
}
