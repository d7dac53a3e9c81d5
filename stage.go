package nova

import (
	"fmt"
	"strconv"
	"strings"
)

// Stage is the recommendation for a learner after one assessment: move on
// to new material, or stay and reinforce the current material.
//
// A Stage travels through reports by name. It implements
// encoding.TextMarshaler, so encoding/json writes "Advance" or "Reinforce"
// rather than the underlying integer, and a map keyed by Stage encodes with
// named keys.
type Stage int

const (
	Advance   Stage = iota + 1 // L reached the threshold
	Reinforce                  // L fell short of it
)

// ParseStage returns the stage named s. Names are matched without regard
// to case, so "advance" and "ADVANCE" both give Advance.
func ParseStage(s string) (Stage, error) {
	switch {
	case strings.EqualFold(s, "advance"):
		return Advance, nil
	case strings.EqualFold(s, "reinforce"):
		return Reinforce, nil
	}
	return 0, fmt.Errorf("%w: %q is neither Advance nor Reinforce", ErrInvalidStage, s)
}

// IsValid reports whether s is one of the declared stages.
func (s Stage) IsValid() bool { return s == Advance || s == Reinforce }

func (s Stage) String() string {
	switch s {
	case Advance:
		return "Advance"
	case Reinforce:
		return "Reinforce"
	default:
		return "Stage(" + strconv.Itoa(int(s)) + ")"
	}
}

// MarshalText fails for values outside the declared stages, so a zero Stage
// never reaches a report disguised as a name.
func (s Stage) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: cannot encode %d", ErrInvalidStage, int(s))
	}
	return []byte(s.String()), nil
}

func (s *Stage) UnmarshalText(text []byte) error {
	v, err := ParseStage(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// stageFor labels gain against threshold. Ties advance.
func stageFor(gain, threshold float64) Stage {
	if gain >= threshold {
		return Advance
	}
	return Reinforce
}
