package nova

import "math"

// LearningGain computes L for a parameter set.
// L = α1·E + α2·(A·100) + α3·F + α4·R + α5·V
func LearningGain(p ParameterSet, c Coefficients) float64 {
	return c[0]*p.Engagement +
		c[1]*(p.Accuracy*100) +
		c[2]*float64(p.Frequency) +
		c[3]*p.Reflection +
		c[4]*float64(p.Voice)
}

// GainBounds returns the interval L can take for parameter sets drawn from r
// with no difficulty weighting. The bounds use the interval endpoints, so
// hi is a supremum for the real-valued dimensions.
func GainBounds(r Ranges, c Coefficients) (lo, hi float64) {
	terms := [NumCoefficients][2]float64{
		{r.Engagement.Lo, r.Engagement.Hi},
		{r.Accuracy.Lo * 100, r.Accuracy.Hi * 100},
		{float64(r.Frequency.Lo), float64(r.Frequency.Hi)},
		{r.Reflection.Lo, r.Reflection.Hi},
		{float64(r.Voice.Lo), float64(r.Voice.Hi)},
	}
	for i, t := range terms {
		a, b := c[i]*t[0], c[i]*t[1]
		lo += math.Min(a, b)
		hi += math.Max(a, b)
	}
	return lo, hi
}
