/*
Package nav implements the greedy navigation engine: the command
vocabulary, the pure decision rule that picks one step toward the goal,
and the loop that drives a grid run to a terminal state.
*/
package nav

// Direction is the command vocabulary of the decision engine.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Right
	Left
)

// GoalCommand is the extra wire command sent once after arrival when an
// actuator channel is attached to the run.
const GoalCommand = "GOAL"

// String returns the wire form of the command.
func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Right:
		return "RIGHT"
	case Left:
		return "LEFT"
	default:
		return "NONE"
	}
}

// Delta returns the row/col displacement of one step in the direction.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Right:
		return 0, 1
	case Left:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the direction that undoes one step.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Right:
		return Left
	case Left:
		return Right
	default:
		return None
	}
}
