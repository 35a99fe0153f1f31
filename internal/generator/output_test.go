package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dinesight/dinesight/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileOutputWritesOneNDJSONFilePerTopic(t *testing.T) {
	dir := t.TempDir()
	out := NewFileOutput(dir)

	require.NoError(t, out.WriteMessage("restaurants", []byte(`{"id":"r-1"}`)))
	require.NoError(t, out.WriteMessage("restaurants", []byte(`{"id":"r-2"}`)))
	require.NoError(t, out.WriteMessage("customers", []byte(`{"id":"c-1"}`)))
	require.NoError(t, out.Close())

	raw, err := os.ReadFile(filepath.Join(dir, "restaurants.json"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	assert.Equal(t, []string{`{"id":"r-1"}`, `{"id":"r-2"}`}, lines)

	raw, err = os.ReadFile(filepath.Join(dir, "customers.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"id":"c-1"}`, strings.TrimSpace(string(raw)))
}

func TestDetermineOutput(t *testing.T) {
	t.Run("none and empty disable the stream", func(t *testing.T) {
		for _, dest := range []string{"", "none"} {
			out, err := DetermineOutput(&models.Config{OutputDestination: dest})
			require.NoError(t, err)
			assert.Nil(t, out)
		}
	})

	t.Run("console", func(t *testing.T) {
		out, err := DetermineOutput(&models.Config{OutputDestination: "console"})
		require.NoError(t, err)
		assert.IsType(t, &ConsoleOutput{}, out)
	})

	t.Run("file", func(t *testing.T) {
		out, err := DetermineOutput(&models.Config{OutputDestination: "file", OutputPath: t.TempDir(), OutputFolder: "data"})
		require.NoError(t, err)
		assert.IsType(t, &FileOutput{}, out)
	})

	t.Run("unknown destination errors", func(t *testing.T) {
		_, err := DetermineOutput(&models.Config{OutputDestination: "carrier-pigeon"})
		assert.Error(t, err)
	})
}
