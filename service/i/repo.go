package i

import (
	"github.com/google/uuid"

	dmn "github.com/davidvelascogarcia/hns-go/domain"
)

// RunRepo defines persistence for navigation run records.
type RunRepo interface {
	// Save inserts or updates a run record.
	// If the run already exists, it updates the record. Otherwise, it creates a new one.
	Save(run *dmn.Run) error

	// ByID retrieves a run record by its ID.
	// Returns an error if the run is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.Run, error)
}
