package nova

import (
	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// GeneratorConfig configures a Generator.
// Zero values produce sensible defaults; see field comments.
type GeneratorConfig struct {
	Seed   int64  `json:"seed"`   // zero is a valid seed
	Ranges Ranges `json:"ranges"` // zero → DefaultRanges
}

// Generator produces reproducible parameter sets.
//
// Draws are partitioned by key: every key owns an independent random
// stream seeded from the generator seed and the key, so the values drawn
// for one (student, subject) pair never depend on the order in which
// other pairs are generated. Streams are not comparable with NumPy's
// Mersenne Twister output; only internal determinism is guaranteed.
type Generator struct {
	seed   uint64
	ranges Ranges
}

// NewGenerator creates a Generator from the given config.
func NewGenerator(cfg GeneratorConfig) (*Generator, error) {
	ranges := cfg.Ranges
	if ranges == (Ranges{}) {
		ranges = DefaultRanges
	}
	if err := ranges.Validate(); err != nil {
		return nil, err
	}
	return &Generator{seed: uint64(cfg.Seed), ranges: ranges}, nil
}

// Seed returns the generator seed.
func (g *Generator) Seed() int64 { return int64(g.seed) }

// Ranges returns the sampling intervals used by the generator.
func (g *Generator) Ranges() Ranges { return g.ranges }

// Stream returns the random stream owned by key.
// Two calls with the same key return streams that yield identical draws.
func (g *Generator) Stream(key string) *Draw {
	src := rand.NewSource(g.seed ^ xxhash.Sum64String(key))
	return &Draw{src: src, rng: rand.New(src), ranges: g.ranges}
}

// Draw is a single sequential random stream. It is not safe for concurrent use.
type Draw struct {
	src    rand.Source
	rng    *rand.Rand
	ranges Ranges
}

// Uniform draws a real value from [r.Lo, r.Hi).
func (d *Draw) Uniform(r Range) float64 {
	u := distuv.Uniform{Min: r.Lo, Max: r.Hi, Src: d.src}
	return u.Rand()
}

// Int draws an integer from [r.Lo, r.Hi).
func (d *Draw) Int(r IntRange) int {
	return r.Lo + d.rng.Intn(r.Hi-r.Lo)
}

// Parameters draws one parameter set in the order E, A, F, R, V.
// The accuracy draw is multiplied by difficulty afterwards; pass 1 for
// an unweighted draw.
func (d *Draw) Parameters(difficulty float64) ParameterSet {
	return ParameterSet{
		Engagement: d.Uniform(d.ranges.Engagement),
		Accuracy:   d.Uniform(d.ranges.Accuracy) * difficulty,
		Frequency:  d.Int(d.ranges.Frequency),
		Reflection: d.Uniform(d.ranges.Reflection),
		Voice:      d.Int(d.ranges.Voice),
	}
}
