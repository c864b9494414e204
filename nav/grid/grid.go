/*
Package grid owns the occupancy matrix a navigation run walks on.

It loads a rectangular integer matrix into the closed cell enum, stamps
the start and goal markers (falling back to the default coordinates when
a requested cell is out of bounds or occupied), answers neighbor and
distance queries, and applies moves while protecting the singular
markers from ever being overwritten.
*/
package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Default coordinates substituted when a requested start or goal fails
// validation.
var (
	DefaultStart = Position{Row: 2, Col: 2}
	DefaultGoal  = Position{Row: 7, Col: 2}
)

// Grid construction errors.
var (
	ErrEmptyMatrix      = errors.New("matrix has no cells")
	ErrRaggedMatrix     = errors.New("matrix rows differ in length")
	ErrInvalidCellValue = errors.New("cell value outside the known set")
	ErrDefaultUnusable  = errors.New("default coordinate outside the matrix")
)

// Grid is the single source of truth for occupancy and mutation rules.
// It is owned exclusively by one navigation loop for the duration of a
// run and is not safe for concurrent use.
type Grid struct {
	cells [][]CellValue
	rows  int
	cols  int
}

// New builds a grid from a loaded matrix. The matrix must be
// rectangular and may only contain free (0), wall (1) and visited (2)
// values; the singular markers are stamped later from the validated
// start and goal coordinates.
func New(matrix [][]int) (*Grid, error) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return nil, ErrEmptyMatrix
	}

	cols := len(matrix[0])
	cells := make([][]CellValue, len(matrix))
	for i, row := range matrix {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedMatrix, i, len(row), cols)
		}
		cells[i] = make([]CellValue, cols)
		for j, value := range row {
			if value < int(Free) || value > int(Visited) {
				return nil, fmt.Errorf("%w: %d at %d,%d", ErrInvalidCellValue, value, i, j)
			}
			cells[i][j] = CellValue(value)
		}
	}

	return &Grid{cells: cells, rows: len(matrix), cols: cols}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBound reports whether the position references a real cell.
func (g *Grid) InBound(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the value of the cell. Lookups beyond the border are
// absorbed as Wall instead of failing, so edge cells simply see an
// obstacle outside the matrix.
func (g *Grid) At(p Position) CellValue {
	if !g.InBound(p) {
		return Wall
	}
	return g.cells[p.Row][p.Col]
}

// Neighbors returns the four orthogonal cell values around p.
func (g *Grid) Neighbors(p Position) Occupancy {
	return Occupancy{
		Up:    g.At(Position{Row: p.Row - 1, Col: p.Col}),
		Down:  g.At(Position{Row: p.Row + 1, Col: p.Col}),
		Right: g.At(Position{Row: p.Row, Col: p.Col + 1}),
		Left:  g.At(Position{Row: p.Row, Col: p.Col - 1}),
	}
}

// DistanceBetween returns the signed and absolute displacement from a
// position to the goal.
func DistanceBetween(from, goal Position) Distance {
	d := Distance{
		Rows: goal.Row - from.Row,
		Cols: goal.Col - from.Col,
	}
	d.AbsRows = abs(d.Rows)
	d.AbsCols = abs(d.Cols)
	return d
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Advance applies one move delta. The cell being left and the cell
// being entered are both marked visited; singular markers are never
// overwritten. An out-of-bounds candidate leaves the agent in place, so
// repeated application is harmless.
func (g *Grid) Advance(from Position, dRow, dCol int) Position {
	g.mark(from)
	to := Position{Row: from.Row + dRow, Col: from.Col + dCol}
	if !g.InBound(to) {
		to = from
	}
	g.mark(to)
	return to
}

// mark sets p to Visited unless it holds a singular marker.
func (g *Grid) mark(p Position) {
	if !g.InBound(p) || g.cells[p.Row][p.Col].Singular() {
		return
	}
	g.cells[p.Row][p.Col] = Visited
}

// checkLocation reports whether the coordinate references an in-bounds,
// currently free cell.
func (g *Grid) checkLocation(p Position) bool {
	return g.InBound(p) && g.cells[p.Row][p.Col] == Free
}

// PlaceMarkers validates the requested start and goal against the
// freshly loaded matrix and stamps the two singular markers. A
// coordinate that is out of bounds or not free is replaced by its
// default; the run then navigates the returned coordinates. Both
// requests are validated before either marker is stamped, so a run
// whose start and goal name the same free cell keeps that cell for
// both and terminates immediately.
func (g *Grid) PlaceMarkers(start, goal Position) (Position, Position, error) {
	startOK := g.checkLocation(start)
	goalOK := g.checkLocation(goal)

	if !startOK {
		start = DefaultStart
		if !g.InBound(start) {
			return Position{}, Position{}, fmt.Errorf("start: %w", ErrDefaultUnusable)
		}
	}
	if !goalOK {
		goal = DefaultGoal
		if !g.InBound(goal) {
			return Position{}, Position{}, fmt.Errorf("goal: %w", ErrDefaultUnusable)
		}
	}

	g.stamp(start, StartMark)
	g.stamp(goal, GoalMark)
	return start, goal, nil
}

// stamp writes a singular marker, but only on a free cell: markers
// never overwrite each other or an obstacle.
func (g *Grid) stamp(p Position, mark CellValue) {
	if g.cells[p.Row][p.Col] != Free {
		return
	}
	g.cells[p.Row][p.Col] = mark
}

// String renders the matrix with the map symbol table: free blank,
// walls "||", visited ".", start "S", goal "E".
func (g *Grid) String() string {
	var b strings.Builder
	for _, row := range g.cells {
		for j, v := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(v.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
