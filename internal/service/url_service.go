package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// ErrMissingURL is returned when a shorten request carries no URL.
var ErrMissingURL = errors.New("no URL provided")

// URLStore is the persistence the service needs.
type URLStore interface {
	Insert(ctx context.Context, originalURL string) (string, error)
	Lookup(ctx context.Context, code string) (string, error)
	Ping(ctx context.Context) error
}

// URLService provides business logic for creating and resolving short URLs.
type URLService struct {
	store   URLStore
	baseURL string
}

// NewURLService constructs a URLService with the given store and base URL.
// An empty baseURL makes short URLs relative to the host of each request.
func NewURLService(store URLStore, baseURL string) *URLService {
	return &URLService{
		store:   store,
		baseURL: baseURL,
	}
}

// ShortenURL stores originalURL and returns its absolute short URL.
// requestBase is used only when no base URL is configured.
func (s *URLService) ShortenURL(ctx context.Context, originalURL, requestBase string) (string, error) {
	if originalURL == "" {
		return "", ErrMissingURL
	}

	code, err := s.store.Insert(ctx, originalURL)
	if err != nil {
		return "", err
	}

	base := s.baseURL
	if base == "" {
		base = requestBase
	}

	shortURL, err := url.JoinPath(base, code)
	if err != nil {
		return "", fmt.Errorf("error composing short URL: %w", err)
	}

	return shortURL, nil
}

// GetOriginalURL resolves a short code to the original URL.
func (s *URLService) GetOriginalURL(ctx context.Context, code string) (string, error) {
	return s.store.Lookup(ctx, code)
}

// Ping checks that the storage is reachable.
func (s *URLService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
