// Package store persists solve times as a plain text file, one per line.
package store

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/verte-zerg/tuicube/internal/history"
)

// Store reads and rewrites a solve times file.
type Store struct {
	path string
}

// Open returns a store for path, creating the file and its directory when
// they do not exist.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("history path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open history file: %w", err)
	}
	if cerr := file.Close(); cerr != nil {
		return nil, fmt.Errorf("failed to close history file: %w", cerr)
	}
	return &Store{path: path}, nil
}

// Path returns the file location.
func (s *Store) Path() string {
	return s.path
}

// LoadTimes reads every line that parses as a finite number. Other lines are
// skipped.
func (s *Store) LoadTimes() ([]float64, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for a read-only file.
			_ = cerr
		}
	}()

	var times []float64
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		v, err := strconv.ParseFloat(strings.TrimSpace(scanner.Text()), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		times = append(times, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}
	return times, nil
}

// Load replays the stored times into a new history.
func (s *Store) Load() (*history.History, error) {
	times, err := s.LoadTimes()
	if err != nil {
		return nil, err
	}
	return history.FromTimes(times), nil
}

// Save rewrites the file with the history's raw times, oldest first.
func (s *Store) Save(h *history.History) error {
	return s.SaveTimes(h.Times())
}

// SaveTimes rewrites the file with one time per line.
func (s *Store) SaveTimes(times []float64) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(s.path), "times-*.txt")
	if err != nil {
		return fmt.Errorf("failed to create temp history file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	mode := os.FileMode(0o644)
	if info, err := os.Stat(s.path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := tmpFile.Chmod(mode); err != nil {
		return fmt.Errorf("failed to set history file mode: %w", err)
	}

	writer := bufio.NewWriter(tmpFile)
	for _, t := range times {
		if _, err := writer.WriteString(strconv.FormatFloat(t, 'g', -1, 64) + "\n"); err != nil {
			return fmt.Errorf("failed to write history file: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush history file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close history file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("failed to replace history file: %w", err)
	}
	return nil
}
