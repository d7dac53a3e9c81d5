package report

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/sky-flux/nova/cohort"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ChartTitle heads both chart renderings.
const ChartTitle = "Simulated Learning Improvement Across Students"

// DefaultChartWidth is the bar length, in cells, of the largest improvement.
const DefaultChartWidth = 40

var royalBlue = color.RGBA{R: 65, G: 105, B: 225, A: 255}

// ImprovementChart writes a horizontal text bar chart of Improvement% per
// student. width ≤ 0 uses DefaultChartWidth. Negative improvements draw
// an empty bar.
func ImprovementChart(w io.Writer, res *cohort.Result, width int) error {
	if width <= 0 {
		width = DefaultChartWidth
	}
	best, label := 0.0, 0
	for _, row := range res.Rows {
		best = math.Max(best, row.Improvement)
		label = max(label, len(row.Student))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", ChartTitle)
	for _, row := range res.Rows {
		n := 0
		if best > 0 && row.Improvement > 0 {
			n = int(math.Round(row.Improvement / best * float64(width)))
		}
		fmt.Fprintf(&b, "%-*s |%s%s %5.1f%%\n",
			label, row.Student, strings.Repeat("█", n), strings.Repeat(" ", width-n), row.Improvement)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// ImprovementPNG renders the improvement bar chart as a PNG image.
func ImprovementPNG(w io.Writer, res *cohort.Result) error {
	p := plot.New()
	p.Title.Text = ChartTitle
	p.X.Label.Text = "Student ID"
	p.Y.Label.Text = "Improvement (%)"

	values := make(plotter.Values, len(res.Rows))
	names := make([]string, len(res.Rows))
	for i, row := range res.Rows {
		values[i] = row.Improvement
		names[i] = row.Student
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return fmt.Errorf("report: bar chart: %w", err)
	}
	bars.Color = royalBlue
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 4

	wt, err := p.WriterTo(10*vg.Inch, 5*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("report: render chart: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}
