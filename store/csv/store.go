// Package csv implements the feedback backend of last resort: an
// append-only CSV file on local disk. It has no configuration requirements
// beyond a writable data directory and no network dependence.
package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/enecpp/financial-news-analyzer/types"
)

// Header is the fixed header row written once when the file is created.
var Header = []string{"Timestamp", "Name", "Email", "Message"}

// Store appends feedback records to a single CSV file. Row writes are
// serialized so concurrent submissions cannot interleave.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store writing to baseDir/filename. The directory is
// created lazily on first append.
func NewStore(baseDir, filename string) *Store {
	return &Store{
		path: filepath.Join(baseDir, filename),
	}
}

// Path returns the full path of the CSV file.
func (s *Store) Path() string {
	return s.path
}

// Append writes one record as a single CSV row, creating the parent
// directory and the header row if the file does not exist yet.
func (s *Store) Append(record *types.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open feedback file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to stat feedback file: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(Header); err != nil {
			f.Close()
			return fmt.Errorf("failed to write header row: %w", err)
		}
	}

	row := []string{record.Timestamp, record.Name, record.Email, record.Message}
	if err := w.Write(row); err != nil {
		f.Close()
		return fmt.Errorf("failed to write feedback row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush feedback row: %w", err)
	}

	// A close-time error still means the row may not have reached disk.
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close feedback file: %w", err)
	}

	return nil
}

// CheckWritable verifies the data directory can be created and written,
// without touching the feedback file itself. Used by the health service.
func (s *Store) CheckWritable() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("data directory not creatable: %w", err)
	}

	probe, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return fmt.Errorf("data directory not writable: %w", err)
	}
	name := probe.Name()
	probe.Close()
	return os.Remove(name)
}
