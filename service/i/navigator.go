package i

import (
	"github.com/google/uuid"

	dmn "github.com/davidvelascogarcia/hns-go/domain"
)

// RunParams describes one navigation run request.
type RunParams struct {
	MapFile  string // path of the map file to load
	StartRow int
	StartCol int
	GoalRow  int
	GoalCol  int
	Actuator bool // relay commands over the actuator channel
}

// NavigationService launches navigation runs and reports on them.
type NavigationService interface {
	// Launch starts a run asynchronously and returns its ID.
	Launch(params RunParams) (uuid.UUID, error)

	// Report returns the current record of a run.
	Report(id uuid.UUID) (*dmn.Run, error)
}
