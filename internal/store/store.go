// Package store persists the seat ledger to a flat text file guarded by an
// OS-level advisory lock.
//
// Both reads and writes take an exclusive whole-file lock: the read lock
// guards against observing a partial write from a concurrent process. Lock
// acquisition blocks indefinitely; there is no timeout and no retry. The
// lock serializes file access only, not in-memory decisions, so two
// processes racing for the same seat can still both succeed with the last
// writer winning silently.
package store

import (
	"fmt"
	"os"

	"github.com/hallward/usher/internal/ledger"
	"github.com/hallward/usher/internal/logging"
)

// DefaultStatePath is the state file used when configuration does not
// override it, relative to the working directory.
const DefaultStatePath = "reservations.txt"

// Store reads and writes ledger state at a fixed file path.
type Store struct {
	path   string
	layout ledger.Layout
	logger *logging.Logger
}

// New creates a Store for the given path and theater layout.
// A nil logger is replaced with a no-op logger.
func New(path string, layout ledger.Layout, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Store{path: path, layout: layout, logger: logger}
}

// Path returns the state file path this store operates on.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted ledger from the state file.
//
// A missing file yields a fully initialized ledger with every layout row
// free. An existing file yields exactly the rows it validly encodes; rows
// missing from the file stay missing from the ledger. Read errors degrade
// to an empty ledger with a warning rather than failing the invocation.
func (s *Store) Load() (*ledger.Ledger, error) {
	f, err := os.OpenFile(s.path, os.O_RDWR, 0644)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("state file absent, initializing all rows free", "path", s.path)
			return ledger.NewFull(s.layout), nil
		}
		s.logger.Warn("failed to open state file, treating as empty", "path", s.path, "error", err)
		return ledger.New(s.layout), nil
	}
	defer func() { _ = f.Close() }()

	if err := acquireLock(f); err != nil {
		return nil, fmt.Errorf("lock state file for read: %w", err)
	}
	defer func() {
		if err := releaseLock(f); err != nil {
			s.logger.Warn("failed to release state file lock", "path", s.path, "error", err)
		}
	}()

	l, err := ledger.Decode(f, s.layout)
	if err != nil {
		s.logger.Warn("failed to read state file, treating as empty", "path", s.path, "error", err)
		return ledger.New(s.layout), nil
	}

	s.logger.Debug("state loaded", "path", s.path, "rows", len(l.Rows()))
	return l, nil
}

// Save writes the full ledger state to the state file, replacing its
// previous contents. The file is created if absent. The whole write happens
// under the exclusive lock.
func (s *Store) Save(l *ledger.Ledger) error {
	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("open state file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := acquireLock(f); err != nil {
		return fmt.Errorf("lock state file for write: %w", err)
	}
	defer func() {
		if err := releaseLock(f); err != nil {
			s.logger.Warn("failed to release state file lock", "path", s.path, "error", err)
		}
	}()

	if err := f.Truncate(0); err != nil {
		return fmt.Errorf("truncate state file: %w", err)
	}
	if _, err := f.Seek(0, 0); err != nil {
		return fmt.Errorf("rewind state file: %w", err)
	}
	if err := ledger.Encode(f, l); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync state file: %w", err)
	}

	s.logger.Debug("state saved", "path", s.path, "rows", len(l.Rows()))
	return nil
}
