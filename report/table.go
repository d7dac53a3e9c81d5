package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/sky-flux/nova/cohort"
	"github.com/sky-flux/nova/study"
)

// CohortTitle heads the cohort report.
const CohortTitle = "=== NOVA Adaptive Learning Optimization Simulation ==="

var cohortHeader = []string{
	"Student",
	"Engagement(E)",
	"Accuracy(A)%",
	"Frequency(F)",
	"Reflection(R)",
	"Voice(V)",
	"Learning_Gain(L)",
	"Performance",
	"Pre_Score",
	"Post_Score",
	"Improvement(%)",
}

// CohortRecords converts a cohort result into table cells, one slice per
// student, rounded like the baseline report.
func CohortRecords(res *cohort.Result) [][]string {
	out := make([][]string, len(res.Rows))
	for i, row := range res.Rows {
		p := row.Parameters
		out[i] = []string{
			row.Student,
			fixed(p.Engagement, 2),
			fixed(p.AccuracyPercent(), 1),
			strconv.Itoa(p.Frequency),
			fixed(p.Reflection, 2),
			strconv.Itoa(p.Voice),
			fixed(row.Gain, 2),
			row.Stage.String(),
			fixed(row.Pre, 1),
			fixed(row.Post, 1),
			fixed(row.Improvement, 1),
		}
	}
	return out
}

// CohortTable writes the title and the full per-student table of a cohort run.
func CohortTable(w io.Writer, res *cohort.Result) error {
	if _, err := fmt.Fprintln(w, CohortTitle); err != nil {
		return err
	}
	table := newTable(w, cohortHeader)
	table.AppendBulk(CohortRecords(res))
	table.Render()
	_, err := fmt.Fprintf(w, "threshold (mean L) = %.2f, max L = %.2f, advanced %d of %d\n",
		res.Threshold, res.MaxGain, res.Advanced(), len(res.Rows))
	return err
}

// StudyTable writes one row per (student, subject) record.
func StudyTable(w io.Writer, students []*study.Student) error {
	table := newTable(w, []string{"Student", "Subject", "Learning_Gain(L)", "Stage"})
	for _, s := range students {
		for _, r := range s.Records() {
			table.Append([]string{s.Name, r.Subject, fixed(r.Gain, 2), r.Stage.String()})
		}
	}
	table.Render()
	return nil
}

// StudyListing writes the per-student listing of a study run:
//
//	Student_1
//	  Math: L=41.23, Stage=Reinforce
func StudyListing(w io.Writer, students []*study.Student) error {
	for _, s := range students {
		if _, err := fmt.Fprintf(w, "\n%s\n", s.Name); err != nil {
			return err
		}
		for _, r := range s.Records() {
			if _, err := fmt.Fprintf(w, "  %s: L=%.2f, Stage=%s\n", r.Subject, r.Gain, r.Stage); err != nil {
				return err
			}
		}
	}
	return nil
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	return table
}

func fixed(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
