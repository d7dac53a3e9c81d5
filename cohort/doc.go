// Package cohort runs the population-relative NOVA simulation.
//
// A cohort of students is generated at once, each student's learning gain
// is computed, the cohort is classified with [nova.CohortMean], and pre and
// post assessment scores are simulated. Post scores are normalised against
// the best learning gain of the run, so both the stages and the
// improvements are relative to the cohort that produced them.
//
// # Usage
//
//	sim, err := cohort.NewSimulator(cohort.DefaultConfig())
//	res, err := sim.Run(ctx)
//	for _, row := range res.Rows {
//	    fmt.Println(row.Student, row.Gain, row.Stage, row.Improvement)
//	}
//
// # Determinism
//
// Every student draws from its own stream keyed by its name, so a run is
// fully determined by Seed and Size, whatever the value of Workers.
package cohort
