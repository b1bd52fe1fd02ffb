package storage

import (
	"context"
	"errors"

	"github.com/MikhailRaia/shortlink/internal/model"
)

// MaxCodeLength is the longest short code every backend can store.
const MaxCodeLength = 32

var (
	// ErrNotFound is returned when no mapping exists for a short code.
	ErrNotFound = errors.New("short code not found")

	// ErrDuplicateCode is returned by a Backend when the short code is
	// already taken. URLStore recovers from it by retrying.
	ErrDuplicateCode = errors.New("short code already exists")

	// ErrExhaustedRetries is returned when every generated code collided.
	ErrExhaustedRetries = errors.New("exhausted retries generating a unique short code")
)

//go:generate mockgen -source=storage.go -destination=mocks/backend_mock.go -package=mocks

// Backend persists URL mappings. Create must enforce uniqueness of the
// short code atomically and report collisions as ErrDuplicateCode.
type Backend interface {
	EnsureSchema(ctx context.Context) error
	Create(ctx context.Context, mapping model.URLMapping) (model.URLMapping, error)
	FindByShort(ctx context.Context, short string) (model.URLMapping, error)
	Ping(ctx context.Context) error
	Close() error
}
