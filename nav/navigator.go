package nav

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/davidvelascogarcia/hns-go/nav/grid"
)

// Outcome is the state of the navigation loop.
type Outcome int

const (
	Running Outcome = iota
	GoalReached
	StepLimitExceeded
)

// String returns the report form of the outcome.
func (o Outcome) String() string {
	switch o {
	case GoalReached:
		return "goal_reached"
	case StepLimitExceeded:
		return "step_limit_exceeded"
	default:
		return "running"
	}
}

// DefaultStepLimit bounds a run that never reaches its goal.
const DefaultStepLimit = 100

var ErrNilGrid = errors.New("navigator needs a grid")

// Report summarizes a finished run.
type Report struct {
	Outcome  Outcome
	Steps    int
	Elapsed  time.Duration
	Final    grid.Position
	Commands []Direction
}

// Config assembles a navigator.
type Config struct {
	Grid      *grid.Grid
	Start     grid.Position  // requested start, validated against the grid
	Goal      grid.Position  // requested goal, validated against the grid
	StepLimit int            // zero means DefaultStepLimit
	Actuator  Actuator       // optional command/ack channel
	Sinks     []ProgressSink // optional progress consumers
}

// Navigator walks the grid one greedy step at a time until the goal is
// reached or the step budget runs out. It owns its grid exclusively for
// the duration of the run.
type Navigator struct {
	grid      *grid.Grid
	pos       grid.Position
	goal      grid.Position
	stepLimit int
	actuator  Actuator
	sinks     []ProgressSink
}

// New validates the configuration and stamps the start and goal markers
// on the grid. Invalid requested coordinates fall back to the grid
// defaults.
func New(cfg Config) (*Navigator, error) {
	if cfg.Grid == nil {
		return nil, ErrNilGrid
	}

	start, goal, err := cfg.Grid.PlaceMarkers(cfg.Start, cfg.Goal)
	if err != nil {
		return nil, err
	}

	limit := cfg.StepLimit
	if limit <= 0 {
		limit = DefaultStepLimit
	}

	return &Navigator{
		grid:      cfg.Grid,
		pos:       start,
		goal:      goal,
		stepLimit: limit,
		actuator:  cfg.Actuator,
		sinks:     cfg.Sinks,
	}, nil
}

// Position returns the agent's current coordinate.
func (n *Navigator) Position() grid.Position { return n.pos }

// Run drives the loop to one of its terminal states. Each step fully
// completes before the next begins: distance, neighbor scan, decision,
// move, events, actuator round trip. The context is consulted between
// steps only; a step waiting on an actuator acknowledgement blocks
// until the acknowledgement arrives (or its configured deadline fires).
// A send or receive failure on the actuator channel aborts the run.
// Sinks receive OnFinish on every exit path, aborts included, so they
// can release whatever they hold on the terminal.
func (n *Navigator) Run(ctx context.Context) (*Report, error) {
	started := time.Now()
	report := &Report{Outcome: Running}

	for report.Outcome == Running {
		if err := ctx.Err(); err != nil {
			n.finish(started, report)
			return nil, err
		}

		dist := grid.DistanceBetween(n.pos, n.goal)
		if dist.Zero() {
			report.Outcome = GoalReached
			break
		}

		cmd := Decide(n.grid.Neighbors(n.pos), dist)
		dRow, dCol := cmd.Delta()
		n.pos = n.grid.Advance(n.pos, dRow, dCol)

		report.Steps++
		report.Commands = append(report.Commands, cmd)

		event := StepEvent{
			Step:     report.Steps,
			Command:  cmd,
			Position: n.pos,
			Distance: dist,
			Grid:     n.grid,
		}
		for _, s := range n.sinks {
			s.OnStep(event)
		}

		if n.actuator != nil {
			if err := n.dispatch(cmd.String()); err != nil {
				n.finish(started, report)
				return nil, err
			}
		}

		if report.Steps > n.stepLimit {
			report.Outcome = StepLimitExceeded
		}
	}

	if report.Outcome == GoalReached && n.actuator != nil {
		if err := n.dispatch(GoalCommand); err != nil {
			n.finish(started, report)
			return nil, err
		}
	}

	n.finish(started, report)
	return report, nil
}

// finish stamps the elapsed time and final position on the report and
// hands it to every sink.
func (n *Navigator) finish(started time.Time, report *Report) {
	report.Elapsed = time.Since(started)
	report.Final = n.pos
	for _, s := range n.sinks {
		s.OnFinish(*report)
	}
}

// dispatch sends one command and blocks for its acknowledgement.
func (n *Navigator) dispatch(command string) error {
	if err := n.actuator.Send(command); err != nil {
		return fmt.Errorf("actuator send %q: %w", command, err)
	}
	if _, err := n.actuator.Ack(); err != nil {
		return fmt.Errorf("actuator ack for %q: %w", command, err)
	}
	return nil
}
