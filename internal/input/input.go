// Package input resolves the text sources the screener reads: the job description
// and the resume directory.
package input

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const resumeExtension = ".txt"

// ErrNotConfigured is returned by Load when a source has neither a file nor a value.
var ErrNotConfigured = errors.New("not configured")

// SourceError describes a failed file system access.
type SourceError struct {
	Op   string
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Source describes where a text comes from.
type Source struct {
	// Name is used in error messages.
	Name string
	// Value is inline text provided via configuration or flags.
	Value string
	// File points to a file holding the text. When set it takes precedence over Value.
	File string
}

// Load returns the text of src. Empty content is valid.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "source"
	}

	file := strings.TrimSpace(src.File)
	if file != "" {
		text, err := ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("loading %s: %w", name, err)
		}
		return text, nil
	}

	if src.Value == "" {
		return "", fmt.Errorf("%s: %w", name, ErrNotConfigured)
	}

	return src.Value, nil
}

// ReadFile returns the content of path as text.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &SourceError{Op: "read", Path: path, Err: err}
	}
	return string(data), nil
}

// ListResumes returns the paths of regular files in dir whose extension is exactly
// ".txt", sorted by name. Subdirectories are not descended into.
func ListResumes(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &SourceError{Op: "list", Path: dir, Err: err}
	}

	var paths []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if filepath.Ext(entry.Name()) != resumeExtension {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	sort.Strings(paths)
	return paths, nil
}
