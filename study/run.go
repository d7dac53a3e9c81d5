package study

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sky-flux/nova"
)

// Config configures a study run. Start from DefaultConfig.
type Config struct {
	Students     int       `json:"students"`     // must be positive
	Seed         int64     `json:"seed"`         // generator seed
	Subjects     []Subject `json:"subjects"`     // nil → DefaultSubjects; empty → error
	Coefficients []float64 `json:"coefficients"` // nil → nova.DefaultCoefficients
	Threshold    float64   `json:"threshold"`    // zero → nova.DefaultThreshold; negative → error

	// Logger receives run output. nil discards everything.
	Logger *zerolog.Logger `json:"-"`
}

// DefaultConfig returns the configuration of the baseline demonstration:
// 20 students studying DefaultSubjects with seed 42.
func DefaultConfig() Config {
	return Config{
		Students: 20,
		Seed:     42,
	}
}

// Run creates the students, enrols each in every subject and studies them.
// Students are returned in creation order, named Student_1..Student_N.
func Run(ctx context.Context, cfg Config) ([]*Student, error) {
	if cfg.Students <= 0 {
		return nil, fmt.Errorf("%w: student count %d must be positive", nova.ErrInvalidConfiguration, cfg.Students)
	}
	subjects := cfg.Subjects
	if subjects == nil {
		subjects = DefaultSubjects
	}
	if len(subjects) == 0 {
		return nil, fmt.Errorf("%w: no subjects to study", nova.ErrInvalidConfiguration)
	}
	for _, sub := range subjects {
		if err := sub.Validate(); err != nil {
			return nil, err
		}
	}

	opt, err := NewOptimizer(OptimizerConfig{Coefficients: cfg.Coefficients, Threshold: cfg.Threshold})
	if err != nil {
		return nil, err
	}
	gen, err := nova.NewGenerator(nova.GeneratorConfig{Seed: cfg.Seed})
	if err != nil {
		return nil, err
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	students := make([]*Student, cfg.Students)
	advanced := 0
	for i := range students {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s := NewStudent(fmt.Sprintf("Student_%d", i+1))
		for _, sub := range subjects {
			s.Enroll(sub)
		}
		s.Study(opt, gen)
		for _, r := range s.Records() {
			if r.Stage == nova.Advance {
				advanced++
			}
			logger.Debug().
				Str("student", s.Name).
				Str("subject", r.Subject).
				Float64("gain", r.Gain).
				Stringer("stage", r.Stage).
				Msg("subject studied")
		}
		students[i] = s
	}

	logger.Info().
		Int("students", len(students)).
		Int("subjects", len(subjects)).
		Float64("threshold", opt.Classifier().Threshold).
		Int("advanced", advanced).
		Msg("study simulated")

	return students, nil
}
