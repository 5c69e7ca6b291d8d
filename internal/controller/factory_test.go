package controller

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	assert.IsType(t, &TUI{}, NewUI(cmd, true))
	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
}

func TestIsTTY(t *testing.T) {
	t.Run("buffer", func(t *testing.T) {
		assert.False(t, IsTTY(&bytes.Buffer{}))
	})

	t.Run("regular file", func(t *testing.T) {
		file, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
		require.NoError(t, err)
		defer file.Close()

		assert.False(t, IsTTY(file))
	})

	t.Run("closed file", func(t *testing.T) {
		file, err := os.Create(filepath.Join(t.TempDir(), "closed.txt"))
		require.NoError(t, err)
		require.NoError(t, file.Close())

		assert.False(t, IsTTY(file))
	})

	t.Run("character device", func(t *testing.T) {
		file, err := os.Open(os.DevNull)
		if err != nil {
			t.Skip("null device not available")
		}
		defer file.Close()

		assert.True(t, IsTTY(file))
	})
}
