package maps

import (
	"bufio"
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLMap is the on-disk structure of a .yaml map.
type YAMLMap struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Layout   string            `yaml:"layout"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// FormatExtensions returns the supported file extensions.
func FormatExtensions() []string {
	return []string{".map", ".txt", ".yaml", ".yml"}
}

// ParseText parses a plain text layout, one grid row per line. Every line is
// a row: unknown characters and space-only lines are floor. Only empty
// lines at the end are dropped.
func ParseText(id string, data []byte) (*Map, error) {
	var rows []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan layout: %w", err)
	}
	rows = trimTrailingEmpty(rows)
	if len(rows) == 0 {
		return nil, fmt.Errorf("map %s: empty layout", id)
	}
	return &Map{ID: id, Name: id, Rows: rows}, nil
}

// ParseYAML parses a YAML map file. The layout is a literal block scalar.
func ParseYAML(data []byte) (*Map, error) {
	var ym YAMLMap
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if ym.ID == "" {
		return nil, fmt.Errorf("yaml map: missing id")
	}

	m, err := ParseText(ym.ID, []byte(ym.Layout))
	if err != nil {
		return nil, err
	}
	if ym.Name != "" {
		m.Name = ym.Name
	}
	m.Metadata = ym.Metadata
	return m, nil
}

func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the parser for the file name's extension.
// Text maps take their ID from the base name.
func parseByExtension(data []byte, name string) (*Map, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".map", ".txt":
		id := strings.ToLower(strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)))
		return ParseText(id, data)
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
}

func trimTrailingEmpty(rows []string) []string {
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return rows
}
