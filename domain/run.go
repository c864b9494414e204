// Package domain holds the persistent records of the system.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Run outcome values.
const (
	OutcomeRunning           = "running"
	OutcomeGoalReached       = "goal_reached"
	OutcomeStepLimitExceeded = "step_limit_exceeded"
	OutcomeFailed            = "failed"
)

// Run is the durable record of one navigation run.
type Run struct {
	ID         uuid.UUID `bson:"_id" json:"id"`
	MapFile    string    `bson:"mapFile" json:"mapFile"`
	Outcome    string    `bson:"outcome" json:"outcome"`
	Steps      int       `bson:"steps" json:"steps"`
	ElapsedMs  int64     `bson:"elapsedMs" json:"elapsedMs"`
	Commands   []string  `bson:"commands" json:"commands"`
	StartedAt  time.Time `bson:"startedAt" json:"startedAt"`
	FinishedAt time.Time `bson:"finishedAt" json:"finishedAt"`
}
