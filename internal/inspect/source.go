// Package inspect loads app source files and answers substring questions about them.
package inspect

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Source is the content of one file
type Source struct {
	Path    string
	Content string
}

// Load reads the file at path
func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &Source{Path: path, Content: string(data)}, nil
}

// fromString builds a Source without touching the filesystem
func fromString(path, content string) *Source {
	return &Source{Path: path, Content: content}
}

// Len returns the content length in bytes
func (s *Source) Len() int {
	return len(s.Content)
}

// Contains reports whether the content contains needle
func (s *Source) Contains(needle string) bool {
	return strings.Contains(s.Content, needle)
}

// ContainsAll reports whether every needle is present
func (s *Source) ContainsAll(needles ...string) bool {
	for _, n := range needles {
		if !s.Contains(n) {
			return false
		}
	}
	return true
}

// Found returns the needles present, in the order given
func (s *Source) Found(needles []string) []string {
	var out []string
	for _, n := range needles {
		if s.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// Missing returns the needles absent, in the order given
func (s *Source) Missing(needles []string) []string {
	var out []string
	for _, n := range needles {
		if !s.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// LoadJSON decodes the JSON document at path into v
func LoadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Exists reports whether path exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}

// PackageManifest is the subset of package.json the checks read
type PackageManifest struct {
	Name            string            `json:"name"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// MissingDependencies returns the names absent from dependencies, in order
func (m *PackageManifest) MissingDependencies(names []string) []string {
	var out []string
	for _, n := range names {
		if _, ok := m.Dependencies[n]; !ok {
			out = append(out, n)
		}
	}
	return out
}
