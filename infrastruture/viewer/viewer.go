// Package viewer draws the live run on a terminal screen.
package viewer

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/davidvelascogarcia/hns-go/nav"
	"github.com/davidvelascogarcia/hns-go/nav/grid"
)

// Cell colors follow the classic occupancy palette: grey for free
// space, blue for the visited trail, green for the start and orange
// for the goal.
var palette = map[grid.CellValue]tcell.Color{
	grid.Free:      tcell.NewRGBColor(200, 200, 200),
	grid.Wall:      tcell.ColorBlack,
	grid.Visited:   tcell.NewRGBColor(38, 166, 240),
	grid.StartMark: tcell.NewRGBColor(169, 240, 38),
	grid.GoalMark:  tcell.NewRGBColor(255, 87, 51),
}

// Viewer renders each step on a tcell screen, pacing frames with the
// configured simulation period.
type Viewer struct {
	screen tcell.Screen
	period time.Duration
}

// New initializes the terminal screen. Callers own no cleanup; the
// viewer finalizes the screen itself when the run ends.
func New(period time.Duration) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.Clear()

	return &Viewer{screen: screen, period: period}, nil
}

// OnStep draws the grid and holds the frame for the simulation period.
func (v *Viewer) OnStep(e nav.StepEvent) {
	v.draw(e.Grid)
	time.Sleep(v.period)
}

// OnFinish holds the last frame briefly, then releases the terminal.
func (v *Viewer) OnFinish(nav.Report) {
	time.Sleep(2 * time.Second)
	v.screen.Fini()
}

// draw paints every grid cell two runes wide so cells look square.
func (v *Viewer) draw(g *grid.Grid) {
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			style := tcell.StyleDefault.Background(palette[g.At(grid.Position{Row: row, Col: col})])
			v.screen.SetContent(col*2, row, ' ', nil, style)
			v.screen.SetContent(col*2+1, row, ' ', nil, style)
		}
	}
	v.screen.Show()
}
