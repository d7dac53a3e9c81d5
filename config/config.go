// Package config loads the YAML configuration of the nova command.
//
// A missing key keeps its default: Load decodes the document over Default,
// so only the values present in the file are replaced.
package config

import (
	"fmt"
	"math"
	"os"

	"github.com/rs/zerolog"
	"github.com/sky-flux/nova"
	"github.com/sky-flux/nova/cohort"
	"github.com/sky-flux/nova/study"
	"gopkg.in/yaml.v3"
)

// Config is the root YAML document.
type Config struct {
	Cohort  CohortConfig  `yaml:"cohort"`
	Study   StudyConfig   `yaml:"study"`
	Logging LoggingConfig `yaml:"logging"`
	Chart   ChartConfig   `yaml:"chart"`
}

// CohortConfig configures the cohort simulation.
type CohortConfig struct {
	Size         int       `yaml:"size"`
	Seed         int64     `yaml:"seed"`
	Workers      int       `yaml:"workers"`
	Coefficients []float64 `yaml:"coefficients"`
}

// StudyConfig configures the per-subject simulation.
type StudyConfig struct {
	Students     int             `yaml:"students"`
	Seed         int64           `yaml:"seed"`
	Threshold    float64         `yaml:"threshold"`
	Coefficients []float64       `yaml:"coefficients"`
	Subjects     []study.Subject `yaml:"subjects"`
}

// LoggingConfig configures the zerolog logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // zerolog level name
	Format string `yaml:"format"` // console or json
}

// ChartConfig configures the text and image charts.
type ChartConfig struct {
	Width int    `yaml:"width"` // text bar width in cells
	PNG   string `yaml:"png"`   // image output path; empty disables
}

// Default returns the built-in demonstration configuration.
func Default() *Config {
	cc := cohort.DefaultConfig()
	sc := study.DefaultConfig()
	return &Config{
		Cohort: CohortConfig{
			Size:    cc.Size,
			Seed:    cc.Seed,
			Workers: cc.Workers,
		},
		Study: StudyConfig{
			Students:  sc.Students,
			Seed:      sc.Seed,
			Threshold: nova.DefaultThreshold,
			Subjects:  append([]study.Subject(nil), study.DefaultSubjects...),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Chart: ChartConfig{
			Width: 40,
		},
	}
}

// Load reads and validates the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML document over the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be checked by the simulations
// themselves before they run.
func (c *Config) Validate() error {
	if c.Cohort.Size <= 0 {
		return fmt.Errorf("%w: cohort.size = %d must be positive", nova.ErrInvalidConfiguration, c.Cohort.Size)
	}
	if c.Cohort.Workers <= 0 {
		return fmt.Errorf("%w: cohort.workers = %d must be positive", nova.ErrInvalidConfiguration, c.Cohort.Workers)
	}
	if c.Study.Students <= 0 {
		return fmt.Errorf("%w: study.students = %d must be positive", nova.ErrInvalidConfiguration, c.Study.Students)
	}
	if t := c.Study.Threshold; t <= 0 || math.IsInf(t, 0) || math.IsNaN(t) {
		return fmt.Errorf("%w: study.threshold = %v must be positive and finite", nova.ErrInvalidConfiguration, t)
	}
	if _, err := nova.NewCoefficients(c.Cohort.Coefficients); err != nil {
		return fmt.Errorf("cohort.coefficients: %w", err)
	}
	if _, err := nova.NewCoefficients(c.Study.Coefficients); err != nil {
		return fmt.Errorf("study.coefficients: %w", err)
	}
	for _, s := range c.Study.Subjects {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("study.subjects: %w", err)
		}
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level %q", nova.ErrInvalidConfiguration, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format %q must be console or json", nova.ErrInvalidConfiguration, c.Logging.Format)
	}
	return nil
}

// CohortSimulation returns the cohort simulator config.
func (c *Config) CohortSimulation(logger *zerolog.Logger) cohort.Config {
	return cohort.Config{
		Size:         c.Cohort.Size,
		Seed:         c.Cohort.Seed,
		Coefficients: c.Cohort.Coefficients,
		Workers:      c.Cohort.Workers,
		Logger:       logger,
	}
}

// StudySimulation returns the study run config.
func (c *Config) StudySimulation(logger *zerolog.Logger) study.Config {
	return study.Config{
		Students:     c.Study.Students,
		Seed:         c.Study.Seed,
		Subjects:     c.Study.Subjects,
		Coefficients: c.Study.Coefficients,
		Threshold:    c.Study.Threshold,
		Logger:       logger,
	}
}
