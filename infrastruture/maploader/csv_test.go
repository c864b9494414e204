package maploader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMap(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Valid map", func(t *testing.T) {
		matrix, err := Load(writeMap(t, "1,1,1\n1,0,1\n1,1,1\n"))
		require.NoError(t, err)
		assert.Equal(t, [][]int{
			{1, 1, 1},
			{1, 0, 1},
			{1, 1, 1},
		}, matrix)
	})

	t.Run("Whitespace around fields is tolerated", func(t *testing.T) {
		matrix, err := Load(writeMap(t, "0, 1\n1, 0\n"))
		require.NoError(t, err)
		assert.Equal(t, [][]int{{0, 1}, {1, 0}}, matrix)
	})

	t.Run("Ragged rows are rejected", func(t *testing.T) {
		_, err := Load(writeMap(t, "0,1,0\n0,1\n"))
		assert.Error(t, err)
	})

	t.Run("Non-integer cells are rejected", func(t *testing.T) {
		_, err := Load(writeMap(t, "0,x\n1,0\n"))
		assert.Error(t, err)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
		assert.Error(t, err)
	})
}
