package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davidvelascogarcia/hns-go/nav/grid"
)

func allFree() grid.Occupancy {
	return grid.Occupancy{Up: grid.Free, Down: grid.Free, Right: grid.Free, Left: grid.Free}
}

func TestDecide(t *testing.T) {
	t.Run("Vertical dominant prefers the dominant axis", func(t *testing.T) {
		dist := grid.DistanceBetween(grid.Position{Row: 1, Col: 2}, grid.Position{Row: 5, Col: 3})
		assert.Equal(t, Down, Decide(allFree(), dist))

		dist = grid.DistanceBetween(grid.Position{Row: 5, Col: 3}, grid.Position{Row: 1, Col: 2})
		assert.Equal(t, Up, Decide(allFree(), dist))
	})

	t.Run("Horizontal dominant prefers the dominant axis", func(t *testing.T) {
		dist := grid.DistanceBetween(grid.Position{Row: 2, Col: 1}, grid.Position{Row: 3, Col: 6})
		assert.Equal(t, Right, Decide(allFree(), dist))

		dist = grid.DistanceBetween(grid.Position{Row: 3, Col: 6}, grid.Position{Row: 2, Col: 1})
		assert.Equal(t, Left, Decide(allFree(), dist))
	})

	t.Run("Tied axes go vertical", func(t *testing.T) {
		dist := grid.DistanceBetween(grid.Position{Row: 0, Col: 0}, grid.Position{Row: 3, Col: 3})
		assert.Equal(t, Down, Decide(allFree(), dist))
	})

	t.Run("Fallthrough order", func(t *testing.T) {
		// Goal below and to the right, rows dominant: DOWN, then RIGHT,
		// then LEFT, then UP.
		dist := grid.DistanceBetween(grid.Position{Row: 1, Col: 1}, grid.Position{Row: 5, Col: 2})

		occ := allFree()
		occ.Down = grid.Wall
		assert.Equal(t, Right, Decide(occ, dist))

		occ.Right = grid.Wall
		assert.Equal(t, Left, Decide(occ, dist))

		occ.Left = grid.Wall
		assert.Equal(t, Up, Decide(occ, dist))

		occ.Up = grid.Wall
		assert.Equal(t, None, Decide(occ, dist))
	})

	t.Run("Visited cells are closed", func(t *testing.T) {
		dist := grid.DistanceBetween(grid.Position{Row: 1, Col: 1}, grid.Position{Row: 5, Col: 2})

		occ := allFree()
		occ.Down = grid.Visited
		assert.Equal(t, Right, Decide(occ, dist))
	})

	t.Run("Start marker is closed", func(t *testing.T) {
		dist := grid.DistanceBetween(grid.Position{Row: 1, Col: 1}, grid.Position{Row: 5, Col: 2})

		occ := allFree()
		occ.Down = grid.StartMark
		assert.Equal(t, Right, Decide(occ, dist))
	})

	t.Run("Goal marker is open", func(t *testing.T) {
		dist := grid.DistanceBetween(grid.Position{Row: 4, Col: 2}, grid.Position{Row: 5, Col: 2})

		occ := grid.Occupancy{Up: grid.Wall, Down: grid.GoalMark, Right: grid.Wall, Left: grid.Wall}
		assert.Equal(t, Down, Decide(occ, dist))
	})

	t.Run("Fully boxed in yields none", func(t *testing.T) {
		dist := grid.DistanceBetween(grid.Position{Row: 1, Col: 1}, grid.Position{Row: 5, Col: 2})

		occ := grid.Occupancy{Up: grid.Wall, Down: grid.Visited, Right: grid.Wall, Left: grid.Visited}
		assert.Equal(t, None, Decide(occ, dist))
	})
}

func TestDirection(t *testing.T) {
	t.Run("Wire form", func(t *testing.T) {
		assert.Equal(t, "UP", Up.String())
		assert.Equal(t, "DOWN", Down.String())
		assert.Equal(t, "RIGHT", Right.String())
		assert.Equal(t, "LEFT", Left.String())
		assert.Equal(t, "NONE", None.String())
	})

	t.Run("Deltas undo through opposites", func(t *testing.T) {
		for _, d := range []Direction{Up, Down, Right, Left} {
			dRow, dCol := d.Delta()
			oRow, oCol := d.Opposite().Delta()
			assert.Equal(t, 0, dRow+oRow)
			assert.Equal(t, 0, dCol+oCol)
		}
	})

	t.Run("None stays in place", func(t *testing.T) {
		dRow, dCol := None.Delta()
		assert.Zero(t, dRow)
		assert.Zero(t, dCol)
		assert.Equal(t, None, None.Opposite())
	})
}
