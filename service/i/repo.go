package i

import (
	dmn "github.com/beka-birhanu/micromouse/domain"
	"github.com/google/uuid"
)

// RunRepo defines the interface for run report persistence.
type RunRepo interface {
	// Save inserts or updates a run report.
	Save(run *dmn.Run) error

	// ByID retrieves a run report by its unique ID.
	// Returns an error if the run is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.Run, error)

	// Recent retrieves the most recent run reports, newest first.
	Recent(limit int64) ([]*dmn.Run, error)
}
