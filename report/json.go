package report

import (
	"encoding/json"
	"io"

	"github.com/sky-flux/nova/cohort"
	"github.com/sky-flux/nova/study"
)

// Document is the machine-readable report of one nova run. Sections that
// were not run are omitted.
type Document struct {
	RunID  string           `json:"run_id"`
	Cohort *cohort.Result   `json:"cohort,omitempty"`
	Study  []*study.Student `json:"study,omitempty"`
}

// JSON writes v to w as indented JSON followed by a newline.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
