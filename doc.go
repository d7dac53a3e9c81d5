// Package nova implements the NOVA learning gain model.
//
// Five simulated inputs per student and subject (engagement time, accuracy,
// interaction frequency, reflection depth and voice interaction count) are
// combined by a fixed weighted sum into a learning gain L, and L is turned
// into an Advance or Reinforce recommendation by a [Classifier].
//
// Two classification policies exist and are deliberately kept apart:
// [CohortMean] compares each gain to the mean of its cohort, while
// [FixedThreshold] compares it to a constant ([DefaultThreshold]).
//
// Basic usage:
//
//	gen, err := nova.NewGenerator(nova.GeneratorConfig{Seed: 42})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	p := gen.Stream("Student_1").Parameters(1)
//	gain := nova.LearningGain(p, nova.DefaultCoefficients)
//	stage := nova.FixedThreshold{Threshold: nova.DefaultThreshold}.Stage(gain)
//
// The cohort subpackage runs the population-relative simulation with
// pre/post assessments, the study subpackage runs the per-subject model,
// and the report subpackage renders both.
package nova
