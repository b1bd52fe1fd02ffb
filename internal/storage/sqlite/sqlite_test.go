package sqlite

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MikhailRaia/shortlink/internal/model"
	"github.com/MikhailRaia/shortlink/internal/storage"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileStorage(t *testing.T) (*Storage, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "urls.db")
	s, err := NewStorage(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.EnsureSchema(context.Background()))
	return s, path
}

func TestStorage_CreateAndFind(t *testing.T) {
	s, _ := newFileStorage(t)
	ctx := context.Background()

	created, err := s.Create(ctx, model.URLMapping{Original: "https://example.com", Short: "abc123"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := s.FindByShort(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = s.FindByShort(ctx, "doesnotexist")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStorage_DuplicateCode(t *testing.T) {
	s, _ := newFileStorage(t)
	ctx := context.Background()

	_, err := s.Create(ctx, model.URLMapping{Original: "https://example.com", Short: "abc123"})
	require.NoError(t, err)

	_, err = s.Create(ctx, model.URLMapping{Original: "https://other.com", Short: "abc123"})
	assert.ErrorIs(t, err, storage.ErrDuplicateCode)

	got, err := s.FindByShort(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", got.Original)
}

func TestStorage_EnsureSchemaIsIdempotent(t *testing.T) {
	s, path := newFileStorage(t)
	ctx := context.Background()

	_, err := s.Create(ctx, model.URLMapping{Original: "https://example.com", Short: "abc123"})
	require.NoError(t, err)

	require.NoError(t, s.EnsureSchema(ctx))
	require.NoError(t, s.EnsureSchema(ctx))
	require.NoError(t, s.Close())

	reopened, err := NewStorage(path)
	require.NoError(t, err)
	defer reopened.Close()
	require.NoError(t, reopened.EnsureSchema(ctx))

	got, err := reopened.FindByShort(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", got.Original)

	next, err := reopened.Create(ctx, model.URLMapping{Original: "https://example.org", Short: "def456"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.ID)
}

func TestStorage_ConcurrentSameCode(t *testing.T) {
	s, _ := newFileStorage(t)
	ctx := context.Background()

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		dupes     int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Create(ctx, model.URLMapping{
				Original: fmt.Sprintf("https://example.com/%d", i),
				Short:    "samecd",
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, storage.ErrDuplicateCode):
				dupes++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, dupes)
}

func TestStorage_EmptyPath(t *testing.T) {
	_, err := NewStorage("")
	assert.Error(t, err)
}

func TestStorage_MockedErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		call    func(s *Storage) error
		wantErr error
	}{
		{
			name: "Unique violation maps to duplicate code",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO urls`).
					WithArgs("https://example.com", "abc123").
					WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})
			},
			call: func(s *Storage) error {
				_, err := s.Create(ctx, model.URLMapping{Original: "https://example.com", Short: "abc123"})
				return err
			},
			wantErr: storage.ErrDuplicateCode,
		},
		{
			name: "I/O error is propagated",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO urls`).
					WithArgs("https://example.com", "abc123").
					WillReturnError(sqlite3.Error{Code: sqlite3.ErrIoErr})
			},
			call: func(s *Storage) error {
				_, err := s.Create(ctx, model.URLMapping{Original: "https://example.com", Short: "abc123"})
				return err
			},
		},
		{
			name: "Lookup failure is not reported as not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, original, short FROM urls`).
					WithArgs("abc123").
					WillReturnError(sqlite3.Error{Code: sqlite3.ErrCorrupt})
			},
			call: func(s *Storage) error {
				_, err := s.FindByShort(ctx, "abc123")
				return err
			},
		},
		{
			name: "Schema creation failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`CREATE TABLE IF NOT EXISTS urls`).
					WillReturnError(sqlite3.Error{Code: sqlite3.ErrCantOpen})
			},
			call: func(s *Storage) error {
				return s.EnsureSchema(ctx)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)

			err = tt.call(NewStorageFromDB(db))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NotErrorIs(t, err, storage.ErrDuplicateCode)
				assert.NotErrorIs(t, err, storage.ErrNotFound)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStorage_MockedInsertReturnsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO urls`).
		WithArgs("https://example.com", "abc123").
		WillReturnResult(sqlmock.NewResult(42, 1))

	got, err := NewStorageFromDB(db).Create(context.Background(), model.URLMapping{Original: "https://example.com", Short: "abc123"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
