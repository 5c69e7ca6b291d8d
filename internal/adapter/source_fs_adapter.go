// Package adapter contains the infrastructure adapters used by the sjavac
// domain layer: filesystem access and report persistence.
package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	m "github.com/mouse-blink/sjavac/internal/model"
)

// SourceFSAdapter hides disk access from the domain layer so source
// collection and verification can be tested without touching the disk.
type SourceFSAdapter interface {
	// Get expands roots into .sjava sources. A root may be a file, a
	// directory, or a directory followed by /... for a recursive scan.
	Get(roots []m.Path) ([]m.Source, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// HashFile returns the hex SHA-256 of the file at path.
	HashFile(path m.Path) (string, error)
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// rootSpec is a root path after expansion of ~ and the /... suffix.
type rootSpec struct {
	path      string
	recursive bool
}

// sourceSet collects sources once per absolute path.
type sourceSet struct {
	seen    map[m.Path]struct{}
	sources []m.Source
}

func (s *sourceSet) add(source m.Source) {
	if _, ok := s.seen[source.Path()]; ok {
		return
	}

	s.seen[source.Path()] = struct{}{}
	s.sources = append(s.sources, source)
}

func (s *sourceSet) sorted() []m.Source {
	slices.SortFunc(s.sources, func(a, b m.Source) int {
		return strings.Compare(string(a.Path()), string(b.Path()))
	})

	return s.sources
}

// Get collects .sjava files for the provided roots, deduplicated and sorted
// by path. Hidden directories below a root are not visited.
func (a *LocalSourceFSAdapter) Get(roots []m.Path) ([]m.Source, error) {
	set := &sourceSet{seen: make(map[m.Path]struct{}), sources: []m.Source{}}

	for _, root := range roots {
		spec, err := expandRoot(string(root))
		if err != nil {
			return nil, err
		}

		info, err := os.Stat(spec.path)
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			if err := a.collect(set, spec.path); err != nil {
				return nil, err
			}

			continue
		}

		if err := a.walk(set, spec); err != nil {
			return nil, err
		}
	}

	return set.sorted(), nil
}

func (a *LocalSourceFSAdapter) walk(set *sourceSet, spec rootSpec) error {
	return filepath.WalkDir(spec.path, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			if path == spec.path {
				return nil
			}

			if !spec.recursive || strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}

			return nil
		}

		return a.collect(set, path)
	})
}

func (a *LocalSourceFSAdapter) collect(set *sourceSet, path string) error {
	if filepath.Ext(path) != m.SourceExt {
		return nil
	}

	hash, err := a.HashFile(m.Path(path))
	if err != nil {
		return fmt.Errorf("hash %s: %w", path, err)
	}

	set.add(m.Source{Origin: &m.File{Path: m.Path(path), Hash: hash}})

	return nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// expandRoot resolves a user supplied root to an absolute path.
func expandRoot(root string) (rootSpec, error) {
	spec := rootSpec{path: root}

	switch {
	case root == "...":
		spec = rootSpec{path: ".", recursive: true}
	case strings.HasSuffix(root, "/..."):
		spec = rootSpec{path: strings.TrimSuffix(root, "/..."), recursive: true}
	}

	if rest, ok := strings.CutPrefix(spec.path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return rootSpec{}, err
		}

		spec.path = filepath.Join(home, strings.TrimPrefix(rest, string(os.PathSeparator)))
	}

	if spec.path == "" {
		spec.path = "."
	}

	abs, err := filepath.Abs(spec.path)
	if err != nil {
		return rootSpec{}, err
	}

	spec.path = abs

	return spec, nil
}
