// Package jsonstore persists the whole courierdesk database as one
// pretty-printed JSON document and implements the repository ports and the
// unit of work on top of it.
//
// Every read-modify-write cycle runs under the store mutex. A unit of work
// holds that mutex from Begin until Commit or Rollback, so its changes are
// written at once or not at all. Writes go to a temporary file in the same
// directory which is then renamed over the target. Writers in other processes
// are not coordinated.
package jsonstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

var (
	// ErrSnapshotIO is returned when the document cannot be read or written.
	ErrSnapshotIO = errors.New("snapshot i/o failed")

	// ErrSnapshotMalformed is returned when the document is not valid JSON or
	// holds a value that cannot be decoded, such as a badly formatted date.
	ErrSnapshotMalformed = errors.New("snapshot is malformed")
)

// Store reads and writes the snapshot file.
type Store struct {
	path   string
	mu     sync.Mutex
	logger *slog.Logger
}

// NewStore creates a store for the document at path. The file does not need
// to exist yet; its directory is created on the first save.
func NewStore(path string, logger *slog.Logger) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty snapshot path", ErrSnapshotIO)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		path:   path,
		logger: logger.With("component", "jsonstore"),
	}, nil
}

// Path returns the location of the document.
func (s *Store) Path() string { return s.path }

// Load reads the whole snapshot. A missing file is an empty snapshot.
func (s *Store) Load(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Save replaces the document with snap.
func (s *Store) Save(ctx context.Context, snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, snap)
}

// Update loads the snapshot, applies fn and saves the result, all under the
// store mutex. Nothing is written when fn fails.
func (s *Store) Update(ctx context.Context, fn func(*Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return err
	}
	if err = fn(&snap); err != nil {
		return err
	}
	return s.save(ctx, snap)
}

func (s *Store) load(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.InfoContext(ctx, "snapshot file not found, starting empty", "path", s.path)
		return emptySnapshot(), nil
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to read snapshot", "path", s.path, "error", err)
		return Snapshot{}, fmt.Errorf("%w: %w", ErrSnapshotIO, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return emptySnapshot(), nil
	}

	var snap Snapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		s.logger.ErrorContext(ctx, "failed to decode snapshot", "path", s.path, "error", err)
		return Snapshot{}, fmt.Errorf("%w: %w", ErrSnapshotMalformed, err)
	}

	snap.normalize()
	return snap, nil
}

func (s *Store) save(ctx context.Context, snap Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	snap.normalize()
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to encode snapshot", "error", err)
		return fmt.Errorf("%w: %w", ErrSnapshotMalformed, err)
	}

	if err = writeFileAtomic(s.path, data); err != nil {
		s.logger.ErrorContext(ctx, "failed to write snapshot", "path", s.path, "error", err)
		return fmt.Errorf("%w: %w", ErrSnapshotIO, err)
	}

	s.logger.DebugContext(ctx, "snapshot saved", "path", s.path, "bytes", len(data))
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err = os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
