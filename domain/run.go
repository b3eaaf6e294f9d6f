// Package domain holds the records the service persists.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Maze sources for a run.
const (
	SourceGenerated = "generated"
	SourceUploaded  = "uploaded"
)

// Run is the report of one complete solver run against a maze.
type Run struct {
	ID        uuid.UUID `bson:"_id"`
	CreatedAt time.Time `bson:"createdAt"`

	Width  int    `bson:"width"`
	Height int    `bson:"height"`
	Seed   int64  `bson:"seed"`
	Source string `bson:"source"`

	Success bool   `bson:"success"`
	Reason  string `bson:"reason"`

	TotalSteps       int    `bson:"totalSteps"`
	ExplorationMoves int    `bson:"explorationMoves"`
	ReturnMoves      int    `bson:"returnMoves"`
	FastMoves        int    `bson:"fastMoves"`
	FastPath         string `bson:"fastPath"`

	Board string `bson:"board"`
}
