package maps

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader reads maps from a directory tree.
type Loader struct {
	Root string
}

func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans Root and loads every supported file.
// Files that fail to parse are skipped. Results are sorted by ID.
func (l *Loader) LoadAll() ([]*Map, error) {
	var out []*Map

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		m, err := l.LoadFile(path)
		if err != nil {
			return nil
		}
		out = append(out, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// LoadFile loads a single map file.
func (l *Loader) LoadFile(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	m, err := parseByExtension(data, path)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	m.FilePath = path
	return m, nil
}

// LoadByID finds a map in Root by its ID.
func (l *Loader) LoadByID(id string) (*Map, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, m := range all {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Resolve turns a user-supplied reference into a map. The reference may be
// an existing file path, an ID under dir, or a built-in ID. An empty
// reference means the classic maze.
func Resolve(ref, dir string) (*Map, error) {
	if ref == "" {
		return Classic(), nil
	}

	if isSupportedExtension(filepath.Ext(ref)) {
		if _, err := os.Stat(ref); err == nil {
			return NewLoader(filepath.Dir(ref)).LoadFile(ref)
		}
	}

	if dir != "" {
		if _, err := os.Stat(dir); err == nil {
			m, err := NewLoader(dir).LoadByID(ref)
			if err == nil {
				return m, nil
			}
			if !errors.Is(err, ErrNotFound) {
				return nil, err
			}
		}
	}

	return BuiltinByID(strings.ToLower(ref))
}
