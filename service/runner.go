// Package service orchestrates navigation runs: it assembles grid,
// navigator, sinks and actuator for each request, executes runs on
// their own goroutines, and keeps their records queryable.
package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	dmn "github.com/davidvelascogarcia/hns-go/domain"
	"github.com/davidvelascogarcia/hns-go/nav"
	"github.com/davidvelascogarcia/hns-go/nav/grid"
	"github.com/davidvelascogarcia/hns-go/service/i"
)

// Runner configuration errors.
var (
	ErrNilMapLoader = errors.New("map loader is required")
	ErrNilLogger    = errors.New("logger is required")
	ErrNoActuator   = errors.New("no actuator channel is configured")
	ErrRunNotFound  = errors.New("run not found")
)

// Config carries the collaborators of the run service.
type Config struct {
	// MapLoader reads a map file into the integer matrix.
	MapLoader func(path string) ([][]int, error)

	// ActuatorFactory opens a fresh command/ack channel for a run that
	// requests one. Nil disables channel mode.
	ActuatorFactory func() (nav.Actuator, error)

	// SinkFactory builds the progress sinks attached to each run.
	SinkFactory func() []nav.ProgressSink

	// Repo persists finished records. Nil keeps history in memory only.
	Repo i.RunRepo

	Logger    i.Logger
	StepLimit int // zero means nav.DefaultStepLimit
}

// Runner launches navigation runs, tracks them in memory and persists
// finished records when a repository is configured.
type Runner struct {
	cfg  Config
	runs map[uuid.UUID]*dmn.Run
	sync.RWMutex
}

// NewRunner validates the collaborators and returns a ready runner.
func NewRunner(cfg Config) (*Runner, error) {
	if cfg.MapLoader == nil {
		return nil, ErrNilMapLoader
	}
	if cfg.Logger == nil {
		return nil, ErrNilLogger
	}
	if cfg.StepLimit <= 0 {
		cfg.StepLimit = nav.DefaultStepLimit
	}
	return &Runner{
		cfg:  cfg,
		runs: make(map[uuid.UUID]*dmn.Run),
	}, nil
}

// Launch starts a run on its own goroutine and returns its ID. The map
// and markers are prepared synchronously so configuration problems are
// reported to the caller instead of being lost in the background.
func (r *Runner) Launch(params i.RunParams) (uuid.UUID, error) {
	id, _, err := r.start(params)
	return id, err
}

// Run executes a run synchronously and returns its final record.
func (r *Runner) Run(params i.RunParams) (*dmn.Run, error) {
	id, done, err := r.start(params)
	if err != nil {
		return nil, err
	}
	<-done
	return r.Report(id)
}

func (r *Runner) start(params i.RunParams) (uuid.UUID, <-chan struct{}, error) {
	matrix, err := r.cfg.MapLoader(params.MapFile)
	if err != nil {
		return uuid.Nil, nil, err
	}

	g, err := grid.New(matrix)
	if err != nil {
		return uuid.Nil, nil, err
	}

	var act nav.Actuator
	if params.Actuator {
		if r.cfg.ActuatorFactory == nil {
			return uuid.Nil, nil, ErrNoActuator
		}
		act, err = r.cfg.ActuatorFactory()
		if err != nil {
			return uuid.Nil, nil, err
		}
	}

	var sinks []nav.ProgressSink
	if r.cfg.SinkFactory != nil {
		sinks = r.cfg.SinkFactory()
	}

	navigator, err := nav.New(nav.Config{
		Grid:      g,
		Start:     grid.Position{Row: params.StartRow, Col: params.StartCol},
		Goal:      grid.Position{Row: params.GoalRow, Col: params.GoalCol},
		StepLimit: r.cfg.StepLimit,
		Actuator:  act,
		Sinks:     sinks,
	})
	if err != nil {
		if act != nil {
			_ = act.Close()
		}
		return uuid.Nil, nil, err
	}

	id := uuid.New()
	record := &dmn.Run{
		ID:        id,
		MapFile:   filepath.Base(params.MapFile),
		Outcome:   dmn.OutcomeRunning,
		StartedAt: time.Now(),
	}

	r.Lock()
	r.runs[id] = record
	r.Unlock()

	r.cfg.Logger.Info(fmt.Sprintf("Run %s launched on %s", id, record.MapFile))

	done := make(chan struct{})
	go r.execute(id, navigator, act, done)
	return id, done, nil
}

// execute drives one navigator to completion and updates its record.
func (r *Runner) execute(id uuid.UUID, navigator *nav.Navigator, act nav.Actuator, done chan<- struct{}) {
	defer close(done)
	if act != nil {
		defer func() { _ = act.Close() }()
	}

	report, err := navigator.Run(context.Background())

	r.Lock()
	record := r.runs[id]
	record.FinishedAt = time.Now()
	if err != nil {
		record.Outcome = dmn.OutcomeFailed
		r.Unlock()
		r.cfg.Logger.Error(fmt.Sprintf("Run %s failed: %s", id, err))
		return
	}

	record.Outcome = report.Outcome.String()
	record.Steps = report.Steps
	record.ElapsedMs = report.Elapsed.Milliseconds()
	commands := make([]string, 0, len(report.Commands))
	for _, c := range report.Commands {
		commands = append(commands, c.String())
	}
	record.Commands = commands
	snapshot := *record
	r.Unlock()

	r.cfg.Logger.Info(fmt.Sprintf("Run %s finished: %s in %d steps (%dms)", id, snapshot.Outcome, snapshot.Steps, snapshot.ElapsedMs))

	if r.cfg.Repo != nil {
		if err := r.cfg.Repo.Save(&snapshot); err != nil {
			r.cfg.Logger.Error(fmt.Sprintf("Persisting run %s: %s", id, err))
		}
	}
}

// Report returns a copy of the run record, falling back to the
// repository for runs no longer held in memory.
func (r *Runner) Report(id uuid.UUID) (*dmn.Run, error) {
	r.RLock()
	record, ok := r.runs[id]
	if ok {
		snapshot := *record
		r.RUnlock()
		return &snapshot, nil
	}
	r.RUnlock()

	if r.cfg.Repo != nil {
		return r.cfg.Repo.ByID(id)
	}
	return nil, ErrRunNotFound
}
