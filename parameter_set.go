package nova

// ParameterSet is the five simulated inputs of one (student, subject) pair.
// It is a plain value: once drawn it is never modified.
type ParameterSet struct {
	Engagement float64 `json:"engagement"` // E, engagement time in minutes.
	Accuracy   float64 `json:"accuracy"`   // A, fraction; scaled by subject difficulty.
	Frequency  int     `json:"frequency"`  // F, interaction frequency.
	Reflection float64 `json:"reflection"` // R, reflection depth.
	Voice      int     `json:"voice"`      // V, voice interaction count.
}

// Gain returns the learning gain of p under coefficients c.
func (p ParameterSet) Gain(c Coefficients) float64 {
	return LearningGain(p, c)
}

// AccuracyPercent returns A expressed as a percentage.
func (p ParameterSet) AccuracyPercent() float64 {
	return p.Accuracy * 100
}
