package cohort

import (
	"fmt"

	"github.com/sky-flux/nova"
	"gonum.org/v1/gonum/floats"
)

// maxPostGain is the post-score gain awarded to the best student of a cohort.
const maxPostGain = 40.0

// Assessment is the simulated pre/post test result of one student.
type Assessment struct {
	Pre         float64 `json:"pre_score"`
	Post        float64 `json:"post_score"`
	Improvement float64 `json:"improvement_pct"` // (Post-Pre)/Pre·100
}

// DrawPreScore draws a pre-assessment score from nova.PreScoreRange.
func DrawPreScore(d *nova.Draw) float64 {
	return d.Uniform(nova.PreScoreRange)
}

// Assess derives post scores from pre scores and learning gains.
//
//	Post = Pre + (L / max(L)) · 40
//
// pre and gains are parallel slices. Returns ErrDegenerateCohort when the
// cohort is empty or its best gain is zero.
func Assess(gains, pre []float64) ([]Assessment, error) {
	if len(gains) == 0 {
		return nil, fmt.Errorf("%w: no learning gains to normalise", nova.ErrDegenerateCohort)
	}
	if len(pre) != len(gains) {
		return nil, fmt.Errorf("cohort: %d pre scores for %d learning gains", len(pre), len(gains))
	}
	best := floats.Max(gains)
	if best == 0 {
		return nil, fmt.Errorf("%w: max(L) = %v", nova.ErrDegenerateCohort, best)
	}

	out := make([]Assessment, len(gains))
	for i, l := range gains {
		post := pre[i] + (l/best)*maxPostGain
		out[i] = Assessment{
			Pre:         pre[i],
			Post:        post,
			Improvement: (post - pre[i]) / pre[i] * 100,
		}
	}
	return out, nil
}
