package grid

// CellValue is the closed set of states an occupancy cell can hold.
type CellValue int

const (
	Free      CellValue = iota // unvisited, walkable
	Wall                       // obstacle
	Visited                    // previously occupied by the agent
	StartMark                  // singular start point, set once
	GoalMark                   // singular goal point, set once
)

// Singular reports whether the value is one of the two markers that are
// never overwritten once placed.
func (v CellValue) Singular() bool {
	return v == StartMark || v == GoalMark
}

// String returns the two-character map symbol of the value.
func (v CellValue) String() string {
	switch v {
	case Wall:
		return "||"
	case Visited:
		return " ."
	case StartMark:
		return " S"
	case GoalMark:
		return " E"
	default:
		return "  "
	}
}

// Position identifies a cell. Row grows downward, Col grows rightward.
type Position struct {
	Row int
	Col int
}

// Distance is the remaining displacement to the goal, signed and
// absolute, derived fresh every step and never stored.
type Distance struct {
	Rows    int // goal row minus agent row
	Cols    int // goal col minus agent col
	AbsRows int
	AbsCols int
}

// Zero reports whether the goal has been reached.
func (d Distance) Zero() bool {
	return d.AbsRows == 0 && d.AbsCols == 0
}

// Occupancy holds the values of the four orthogonal neighbors around
// the agent. Neighbors beyond the matrix border read as Wall.
type Occupancy struct {
	Up    CellValue
	Down  CellValue
	Right CellValue
	Left  CellValue
}
