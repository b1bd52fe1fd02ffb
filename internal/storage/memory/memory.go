package memory

import (
	"context"
	"sync"

	"github.com/MikhailRaia/shortlink/internal/model"
	"github.com/MikhailRaia/shortlink/internal/storage"
)

// Storage is a non-durable Backend for tests and development.
type Storage struct {
	byShort map[string]model.URLMapping
	lastID  int64
	mutex   sync.RWMutex
}

var _ storage.Backend = (*Storage)(nil)

// NewStorage creates a new in-memory storage instance.
func NewStorage() *Storage {
	return &Storage{
		byShort: make(map[string]model.URLMapping),
	}
}

// EnsureSchema is a no-op; the map exists from construction.
func (s *Storage) EnsureSchema(ctx context.Context) error {
	return nil
}

// Create stores mapping unless its short code is taken.
func (s *Storage) Create(ctx context.Context, mapping model.URLMapping) (model.URLMapping, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.byShort[mapping.Short]; exists {
		return model.URLMapping{}, storage.ErrDuplicateCode
	}

	s.lastID++
	mapping.ID = s.lastID
	s.byShort[mapping.Short] = mapping

	return mapping, nil
}

// FindByShort returns the mapping stored under short.
func (s *Storage) FindByShort(ctx context.Context, short string) (model.URLMapping, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	mapping, found := s.byShort[short]
	if !found {
		return model.URLMapping{}, storage.ErrNotFound
	}

	return mapping, nil
}

// Ping always succeeds.
func (s *Storage) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op.
func (s *Storage) Close() error {
	return nil
}

// Len returns the number of stored mappings.
func (s *Storage) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.byShort)
}
