// Package render prints run progress to the console.
package render

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"

	"github.com/davidvelascogarcia/hns-go/nav"
)

// Console draws every step of a run as text: the command chosen, the
// remaining distance and the grid itself.
type Console struct {
	out io.Writer
	au  aurora.Aurora
}

// NewConsole builds a console sink. Colors are disabled when colored is
// false, for plain log capture.
func NewConsole(out io.Writer, colored bool) *Console {
	return &Console{out: out, au: aurora.NewAurora(colored)}
}

// OnStep prints one step of the run.
func (c *Console) OnStep(e nav.StepEvent) {
	fmt.Fprintf(c.out, "Step: %d\n", e.Step)
	fmt.Fprintf(c.out, "Distance rows: %d, cols: %d\n", e.Distance.Rows, e.Distance.Cols)
	fmt.Fprintln(c.out, c.au.Blue(fmt.Sprintf("[INFO] Command: %s", e.Command)))
	fmt.Fprintln(c.out, e.Grid)
}

// OnFinish prints the run verdict.
func (c *Console) OnFinish(r nav.Report) {
	switch r.Outcome {
	case nav.GoalReached:
		fmt.Fprintln(c.out, c.au.Green("[INFO] Goal achieved"))
	case nav.StepLimitExceeded:
		// Brown is ANSI 33, the yellow of this aurora release.
		fmt.Fprintln(c.out, c.au.Brown("[WARN] Goal not achieved, limit steps"))
	}
	fmt.Fprintf(c.out, "Steps: %d, elapsed: %s\n", r.Steps, r.Elapsed)
}
