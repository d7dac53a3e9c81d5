package study

import (
	"fmt"
	"math"

	"github.com/sky-flux/nova"
)

// Subject is a course a student can study.
type Subject struct {
	Name             string  `json:"name" yaml:"name"`
	DifficultyWeight float64 `json:"difficulty_weight" yaml:"difficulty_weight"` // multiplies accuracy
}

// DefaultSubjects is the subject list of the baseline demonstration.
var DefaultSubjects = []Subject{
	{Name: "Math", DifficultyWeight: 1.0},
	{Name: "Science", DifficultyWeight: 0.9},
	{Name: "Social", DifficultyWeight: 1.1},
}

// Validate checks that the subject has a name and a positive, finite weight.
func (s Subject) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: subject name is empty", nova.ErrInvalidConfiguration)
	}
	if math.IsNaN(s.DifficultyWeight) || math.IsInf(s.DifficultyWeight, 0) || s.DifficultyWeight <= 0 {
		return fmt.Errorf("%w: subject %q has difficulty weight %v",
			nova.ErrInvalidConfiguration, s.Name, s.DifficultyWeight)
	}
	return nil
}

// parameters draws the subject's parameter set for the given student.
func (s Subject) parameters(gen *nova.Generator, student string) nova.ParameterSet {
	return gen.Stream(streamKey(student, s.Name)).Parameters(s.DifficultyWeight)
}

func streamKey(student, subject string) string {
	return student + "/" + subject
}
