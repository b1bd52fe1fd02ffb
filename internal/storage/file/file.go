package file

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/MikhailRaia/shortlink/internal/model"
	"github.com/MikhailRaia/shortlink/internal/storage"
)

// Storage implements storage.Backend on top of an append-only JSON-lines file.
// Every record is on disk before it becomes visible to lookups.
type Storage struct {
	filePath string
	byShort  map[string]model.URLMapping
	lastID   int64
	mu       sync.RWMutex
}

var _ storage.Backend = (*Storage)(nil)

// NewStorage creates a file-backed storage at the provided path. The file
// is created and loaded by EnsureSchema.
func NewStorage(filePath string) *Storage {
	return &Storage{
		filePath: filePath,
		byShort:  make(map[string]model.URLMapping),
	}
}

// EnsureSchema creates the directory and file if needed and loads the
// records already present.
func (s *Storage) EnsureSchema(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadFromFile()
}

// Create appends mapping to the file unless its short code is taken.
func (s *Storage) Create(ctx context.Context, mapping model.URLMapping) (model.URLMapping, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byShort[mapping.Short]; exists {
		return model.URLMapping{}, storage.ErrDuplicateCode
	}

	mapping.ID = s.lastID + 1
	if err := s.appendRecord(mapping); err != nil {
		return model.URLMapping{}, err
	}

	s.lastID = mapping.ID
	s.byShort[mapping.Short] = mapping

	return mapping, nil
}

// FindByShort returns the mapping stored under short.
func (s *Storage) FindByShort(ctx context.Context, short string) (model.URLMapping, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	mapping, found := s.byShort[short]
	if !found {
		return model.URLMapping{}, storage.ErrNotFound
	}

	return mapping, nil
}

// Ping reports whether the storage file is accessible.
func (s *Storage) Ping(ctx context.Context) error {
	if _, err := os.Stat(s.filePath); err != nil {
		return fmt.Errorf("storage file unavailable: %w", err)
	}
	return nil
}

// Close is a no-op; the file is opened per write.
func (s *Storage) Close() error {
	return nil
}

func (s *Storage) loadFromFile() error {
	file, err := os.OpenFile(s.filePath, os.O_RDONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	byShort := make(map[string]model.URLMapping)
	var lastID int64

	// Records are as long as the URL they hold, so no line limit applies.
	decoder := json.NewDecoder(file)
	for decoder.More() {
		var record model.URLMapping
		if err := decoder.Decode(&record); err != nil {
			return fmt.Errorf("failed to decode record: %w", err)
		}

		byShort[record.Short] = record
		if record.ID > lastID {
			lastID = record.ID
		}
	}

	s.byShort = byShort
	s.lastID = lastID
	return nil
}

func (s *Storage) appendRecord(record model.URLMapping) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	file, err := os.OpenFile(s.filePath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file for writing: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	return writeRecord(file, info.Size(), append(data, '\n'))
}

type recordFile interface {
	io.Writer
	Sync() error
	Truncate(size int64) error
}

// writeRecord appends line at offset and syncs it. On failure the file is
// cut back to offset so a torn line never precedes later records.
func writeRecord(f recordFile, offset int64, line []byte) error {
	_, err := f.Write(line)
	if err != nil {
		err = fmt.Errorf("failed to write to file: %w", err)
	} else if err = f.Sync(); err != nil {
		err = fmt.Errorf("failed to sync file: %w", err)
	}

	if err != nil {
		if truncErr := f.Truncate(offset); truncErr != nil {
			return fmt.Errorf("%w (truncate: %v)", err, truncErr)
		}
		return err
	}

	return nil
}
