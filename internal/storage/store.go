package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/MikhailRaia/shortlink/internal/generator"
	"github.com/MikhailRaia/shortlink/internal/model"
	"github.com/rs/zerolog/log"
)

// DefaultMaxRetries bounds the number of insert attempts per URL.
const DefaultMaxRetries = 5

// URLStore inserts and resolves short codes on top of a Backend.
type URLStore struct {
	backend    Backend
	generate   generator.Func
	codeLength int
	maxRetries int
	reserved   map[string]struct{}
}

// Option configures a URLStore.
type Option func(*URLStore)

// WithGenerator replaces the random code generator.
func WithGenerator(fn generator.Func) Option {
	return func(s *URLStore) {
		s.generate = fn
	}
}

// WithCodeLength sets the length of generated codes.
func WithCodeLength(length int) Option {
	return func(s *URLStore) {
		if length > 0 {
			s.codeLength = length
		}
	}
}

// WithMaxRetries sets how many codes are tried before giving up.
func WithMaxRetries(n int) Option {
	return func(s *URLStore) {
		if n > 0 {
			s.maxRetries = n
		}
	}
}

// WithReservedCodes keeps codes from being issued, for example names that
// collide with fixed routes. A generated reserved code counts as a collision.
func WithReservedCodes(codes ...string) Option {
	return func(s *URLStore) {
		for _, code := range codes {
			s.reserved[code] = struct{}{}
		}
	}
}

// NewURLStore creates a URLStore owning the given backend.
func NewURLStore(backend Backend, opts ...Option) *URLStore {
	s := &URLStore{
		backend:    backend,
		generate:   generator.GenerateCode,
		codeLength: generator.DefaultLength,
		maxRetries: DefaultMaxRetries,
		reserved:   make(map[string]struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// EnsureSchema creates the backing table or file if it does not exist.
// It is safe to call on every startup.
func (s *URLStore) EnsureSchema(ctx context.Context) error {
	if err := s.backend.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("error ensuring schema: %w", err)
	}
	return nil
}

// Insert stores originalURL under a freshly generated code and returns
// the code. Collisions are retried with a new code up to the configured
// limit; any other backend error is returned as is.
func (s *URLStore) Insert(ctx context.Context, originalURL string) (string, error) {
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		code, err := s.generate(s.codeLength)
		if err != nil {
			return "", fmt.Errorf("error generating short code: %w", err)
		}

		if _, ok := s.reserved[code]; ok {
			log.Debug().Str("code", code).Int("attempt", attempt).Msg("Reserved short code generated, retrying")
			continue
		}

		_, err = s.backend.Create(ctx, model.URLMapping{
			Original: originalURL,
			Short:    code,
		})
		if err == nil {
			return code, nil
		}

		if !errors.Is(err, ErrDuplicateCode) {
			return "", fmt.Errorf("error inserting URL: %w", err)
		}

		log.Debug().
			Str("code", code).
			Int("attempt", attempt).
			Msg("Short code collision, retrying")
	}

	return "", fmt.Errorf("%w: %d attempts", ErrExhaustedRetries, s.maxRetries)
}

// Lookup returns the original URL stored for code.
func (s *URLStore) Lookup(ctx context.Context, code string) (string, error) {
	mapping, err := s.backend.FindByShort(ctx, code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("error looking up short code: %w", err)
	}

	return mapping.Original, nil
}

// Ping checks that the backend is reachable.
func (s *URLStore) Ping(ctx context.Context) error {
	return s.backend.Ping(ctx)
}

// Close releases the backend.
func (s *URLStore) Close() error {
	return s.backend.Close()
}
