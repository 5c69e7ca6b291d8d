package adapter

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/sjavac/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProgram = "int a = 5;\nvoid f() {\nreturn;\n}\n"

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "main.sjava")
	writeTestFile(t, path, validProgram)

	got, err := adapter.ReadFile(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, validProgram, string(got))

	_, err = adapter.ReadFile(m.Path(filepath.Join(t.TempDir(), "missing.sjava")))
	assert.Error(t, err)
}

func TestLocalSourceFSAdapter_HashFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "main.sjava")
	writeTestFile(t, path, validProgram)

	got, err := adapter.HashFile(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, hashBytes([]byte(validProgram)), got)
}

func TestLocalSourceFSAdapter_Get(t *testing.T) {
	t.Run("no roots", func(t *testing.T) {
		sources, err := NewLocalSourceFSAdapter().Get(nil)
		require.NoError(t, err)
		assert.Empty(t, sources)
	})

	t.Run("directory keeps only sjava files sorted", func(t *testing.T) {
		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "b.sjava"), validProgram)
		writeTestFile(t, filepath.Join(root, "a.sjava"), "int x;\n")
		writeTestFile(t, filepath.Join(root, "notes.txt"), "ignored")
		writeTestFile(t, filepath.Join(root, "Main.java"), "ignored")

		sources, err := NewLocalSourceFSAdapter().Get([]m.Path{m.Path(root)})
		require.NoError(t, err)
		require.Len(t, sources, 2)

		assert.Equal(t, m.Path(filepath.Join(root, "a.sjava")), sources[0].Path())
		assert.Equal(t, hashBytes([]byte("int x;\n")), sources[0].Origin.Hash)
		assert.Equal(t, m.Path(filepath.Join(root, "b.sjava")), sources[1].Path())
	})

	t.Run("recursive suffix descends", func(t *testing.T) {
		root := t.TempDir()
		nested := filepath.Join(root, "pkg", "deep")
		mustMkdir(t, nested)
		writeTestFile(t, filepath.Join(root, "top.sjava"), validProgram)
		writeTestFile(t, filepath.Join(nested, "leaf.sjava"), validProgram)

		flat, err := NewLocalSourceFSAdapter().Get([]m.Path{m.Path(root)})
		require.NoError(t, err)
		assert.Len(t, flat, 1)

		all, err := NewLocalSourceFSAdapter().Get([]m.Path{m.Path(root + "/...")})
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, m.Path(filepath.Join(nested, "leaf.sjava")), all[0].Path())
	})

	t.Run("hidden directories are skipped", func(t *testing.T) {
		root := t.TempDir()
		hidden := filepath.Join(root, ".sjavac-reports")
		mustMkdir(t, hidden)
		writeTestFile(t, filepath.Join(hidden, "stale.sjava"), validProgram)
		writeTestFile(t, filepath.Join(root, "main.sjava"), validProgram)

		sources, err := NewLocalSourceFSAdapter().Get([]m.Path{m.Path(root + "/...")})
		require.NoError(t, err)
		require.Len(t, sources, 1)
		assert.Equal(t, m.Path(filepath.Join(root, "main.sjava")), sources[0].Path())
	})

	t.Run("single file and duplicates", func(t *testing.T) {
		root := t.TempDir()
		file := filepath.Join(root, "one.sjava")
		writeTestFile(t, file, validProgram)

		sources, err := NewLocalSourceFSAdapter().Get([]m.Path{m.Path(file), m.Path(root)})
		require.NoError(t, err)
		require.Len(t, sources, 1)
		assert.Equal(t, m.Path(file), sources[0].Path())
	})

	t.Run("single file with another extension is skipped", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "one.txt")
		writeTestFile(t, file, validProgram)

		sources, err := NewLocalSourceFSAdapter().Get([]m.Path{m.Path(file)})
		require.NoError(t, err)
		assert.Empty(t, sources)
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := NewLocalSourceFSAdapter().Get([]m.Path{m.Path(filepath.Join(t.TempDir(), "nope"))})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "root path error")
	})
}

func TestExpandRoot(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		in        string
		path      string
		recursive bool
	}{
		{"./...", wd, true},
		{"src/...", filepath.Join(wd, "src"), true},
		{"...", wd, true},
		{"src", filepath.Join(wd, "src"), false},
		{"a.sjava", filepath.Join(wd, "a.sjava"), false},
		{"", wd, false},
		{"~/code/...", filepath.Join(home, "code"), true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			spec, err := expandRoot(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.path, spec.path)
			assert.Equal(t, tt.recursive, spec.recursive)
		})
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o755))
}

func hashBytes(content []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(content))
}
