package nav

import "github.com/davidvelascogarcia/hns-go/nav/grid"

// Decide maps the neighbor occupancy and the remaining distance to
// exactly one command. It is a pure function with no memory of prior
// steps.
//
// The preference order is fixed and evaluated first match wins:
//
//  1. primary    — reduce the dominant axis (vertical wins ties)
//  2. secondary  — reduce the other axis
//  3. tertiary   — retreat on the other axis
//  4. quaternary — retreat on the dominant axis
//  5. NONE       — fully boxed in for this step
//
// A direction is open only when the neighbor is free or holds the goal
// marker; walls, visited cells and the start marker are all closed.
// Excluding visited cells is what prevents oscillation between two free
// cells, at the price of dead ends being permanent.
func Decide(occ grid.Occupancy, dist grid.Distance) Direction {
	var primary, secondary Direction
	if dist.AbsRows >= dist.AbsCols {
		primary = Down
		if dist.Rows < 0 {
			primary = Up
		}
		secondary = Right
		if dist.Cols < 0 {
			secondary = Left
		}
	} else {
		primary = Right
		if dist.Cols < 0 {
			primary = Left
		}
		secondary = Down
		if dist.Rows < 0 {
			secondary = Up
		}
	}

	candidates := [4]Direction{primary, secondary, secondary.Opposite(), primary.Opposite()}
	for _, d := range candidates {
		if open(neighbor(occ, d)) {
			return d
		}
	}
	return None
}

// open reports whether a neighbor value can be stepped on.
func open(v grid.CellValue) bool {
	return v == grid.Free || v == grid.GoalMark
}

// neighbor selects the occupancy value in the given direction.
func neighbor(occ grid.Occupancy, d Direction) grid.CellValue {
	switch d {
	case Up:
		return occ.Up
	case Down:
		return occ.Down
	case Right:
		return occ.Right
	case Left:
		return occ.Left
	default:
		return grid.Wall
	}
}
