package nav

import "github.com/davidvelascogarcia/hns-go/nav/grid"

// StepEvent describes one completed decision+move cycle.
type StepEvent struct {
	Step     int           // 1-based step index
	Command  Direction     // command that was applied
	Position grid.Position // agent position after the move
	Distance grid.Distance // distance to goal measured before the move
	Grid     *grid.Grid    // updated grid, for rendering only
}

// ProgressSink receives step events and the final report. Sinks are
// invoked synchronously from the navigation loop and must not retain
// the grid beyond the call.
type ProgressSink interface {
	OnStep(StepEvent)
	OnFinish(Report)
}
