package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MikhailRaia/shortlink/internal/model"
	"github.com/MikhailRaia/shortlink/internal/storage"
	"github.com/mattn/go-sqlite3"
)

const createTableQuery = `
	CREATE TABLE IF NOT EXISTS urls (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		original TEXT NOT NULL,
		short TEXT NOT NULL UNIQUE
	);
`

// Storage implements storage.Backend on a SQLite database file.
type Storage struct {
	db *sql.DB
}

var _ storage.Backend = (*Storage)(nil)

// NewStorage opens (or creates) the SQLite database at path.
func NewStorage(path string) (*Storage, error) {
	if path == "" {
		return nil, errors.New("sqlite path is empty")
	}

	db, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("could not open SQLite database: %w", err)
	}

	// SQLite allows a single writer; one connection also keeps ":memory:"
	// databases shared between queries.
	db.SetMaxOpenConns(1)

	return NewStorageFromDB(db), nil
}

// NewStorageFromDB wraps an already opened database handle.
func NewStorageFromDB(db *sql.DB) *Storage {
	return &Storage{db: db}
}

func dsn(path string) string {
	if path == ":memory:" || strings.Contains(path, "?") {
		return path
	}
	return "file:" + path + "?_busy_timeout=5000&_journal_mode=WAL"
}

// EnsureSchema creates the urls table if it does not exist.
func (s *Storage) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableQuery); err != nil {
		return fmt.Errorf("error creating urls table: %w", err)
	}
	return nil
}

// Create inserts mapping. The UNIQUE constraint on short rejects taken codes.
func (s *Storage) Create(ctx context.Context, mapping model.URLMapping) (model.URLMapping, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO urls (original, short) VALUES (?, ?)",
		mapping.Original, mapping.Short,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.URLMapping{}, storage.ErrDuplicateCode
		}
		return model.URLMapping{}, fmt.Errorf("error inserting URL into database: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.URLMapping{}, fmt.Errorf("error reading inserted id: %w", err)
	}

	mapping.ID = id
	return mapping, nil
}

// FindByShort returns the mapping stored under short.
func (s *Storage) FindByShort(ctx context.Context, short string) (model.URLMapping, error) {
	var mapping model.URLMapping

	err := s.db.QueryRowContext(ctx,
		"SELECT id, original, short FROM urls WHERE short = ?", short,
	).Scan(&mapping.ID, &mapping.Original, &mapping.Short)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.URLMapping{}, storage.ErrNotFound
		}
		return model.URLMapping{}, fmt.Errorf("error resolving short code %s: %w", short, err)
	}

	return mapping, nil
}

// Ping verifies the database connection.
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database handle.
func (s *Storage) Close() error {
	return s.db.Close()
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}
