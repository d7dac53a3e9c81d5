package nova

import "errors"

// Sentinel errors for the nova package.
// Use errors.Is to check: errors.Is(err, nova.ErrInvalidConfiguration)
var (
	ErrInvalidConfiguration = errors.New("nova: invalid configuration")
	ErrDegenerateCohort     = errors.New("nova: degenerate cohort")
	ErrInvalidStage         = errors.New("nova: invalid stage")
)
