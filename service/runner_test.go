package service

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dmn "github.com/davidvelascogarcia/hns-go/domain"
	"github.com/davidvelascogarcia/hns-go/service/i"
)

// nopLogger satisfies the logger interface without output.
type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

// memRepo stores records in a map.
type memRepo struct {
	sync.Mutex
	saved map[uuid.UUID]dmn.Run
}

func newMemRepo() *memRepo {
	return &memRepo{saved: make(map[uuid.UUID]dmn.Run)}
}

func (m *memRepo) Save(run *dmn.Run) error {
	m.Lock()
	defer m.Unlock()
	m.saved[run.ID] = *run
	return nil
}

func (m *memRepo) ByID(id uuid.UUID) (*dmn.Run, error) {
	m.Lock()
	defer m.Unlock()
	run, ok := m.saved[id]
	if !ok {
		return nil, errors.New("run not found")
	}
	return &run, nil
}

// openLoader returns a 10x10 bordered map regardless of the file name.
func openLoader(string) ([][]int, error) {
	matrix := make([][]int, 10)
	for r := range matrix {
		matrix[r] = make([]int, 10)
		for c := range matrix[r] {
			if r == 0 || r == 9 || c == 0 || c == 9 {
				matrix[r][c] = 1
			}
		}
	}
	return matrix, nil
}

func newTestRunner(t *testing.T, repo i.RunRepo) *Runner {
	t.Helper()
	runner, err := NewRunner(Config{
		MapLoader: openLoader,
		Repo:      repo,
		Logger:    nopLogger{},
	})
	require.NoError(t, err)
	return runner
}

func TestNewRunner(t *testing.T) {
	t.Run("Map loader is required", func(t *testing.T) {
		_, err := NewRunner(Config{Logger: nopLogger{}})
		assert.ErrorIs(t, err, ErrNilMapLoader)
	})

	t.Run("Logger is required", func(t *testing.T) {
		_, err := NewRunner(Config{MapLoader: openLoader})
		assert.ErrorIs(t, err, ErrNilLogger)
	})
}

func TestRunnerRun(t *testing.T) {
	t.Run("Synchronous run reaches the goal", func(t *testing.T) {
		runner := newTestRunner(t, nil)

		record, err := runner.Run(i.RunParams{
			MapFile:  "map3.csv",
			StartRow: 2, StartCol: 2,
			GoalRow: 7, GoalCol: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, dmn.OutcomeGoalReached, record.Outcome)
		assert.Equal(t, 5, record.Steps)
		assert.Len(t, record.Commands, 5)
		assert.Equal(t, "map3.csv", record.MapFile)
	})

	t.Run("Finished records are persisted", func(t *testing.T) {
		repo := newMemRepo()
		runner := newTestRunner(t, repo)

		record, err := runner.Run(i.RunParams{
			MapFile:  "map3.csv",
			StartRow: 2, StartCol: 2,
			GoalRow: 7, GoalCol: 2,
		})
		require.NoError(t, err)

		stored, err := repo.ByID(record.ID)
		require.NoError(t, err)
		assert.Equal(t, dmn.OutcomeGoalReached, stored.Outcome)
		assert.Equal(t, record.Steps, stored.Steps)
	})

	t.Run("Loader failure reports to the caller", func(t *testing.T) {
		boom := errors.New("boom")
		runner, err := NewRunner(Config{
			MapLoader: func(string) ([][]int, error) { return nil, boom },
			Logger:    nopLogger{},
		})
		require.NoError(t, err)

		_, err = runner.Run(i.RunParams{MapFile: "missing.csv"})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("Actuator request without a channel fails", func(t *testing.T) {
		runner := newTestRunner(t, nil)

		_, err := runner.Launch(i.RunParams{MapFile: "map3.csv", Actuator: true})
		assert.ErrorIs(t, err, ErrNoActuator)
	})
}

func TestRunnerLaunch(t *testing.T) {
	t.Run("Background run becomes reportable", func(t *testing.T) {
		runner := newTestRunner(t, nil)

		id, err := runner.Launch(i.RunParams{
			MapFile:  "map3.csv",
			StartRow: 2, StartCol: 2,
			GoalRow: 7, GoalCol: 2,
		})
		require.NoError(t, err)

		assert.Eventually(t, func() bool {
			record, err := runner.Report(id)
			return err == nil && record.Outcome == dmn.OutcomeGoalReached
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("Unknown run is not found", func(t *testing.T) {
		runner := newTestRunner(t, nil)

		_, err := runner.Report(uuid.New())
		assert.ErrorIs(t, err, ErrRunNotFound)
	})
}
