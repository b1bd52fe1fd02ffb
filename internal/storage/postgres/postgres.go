package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/MikhailRaia/shortlink/internal/model"
	"github.com/MikhailRaia/shortlink/internal/storage"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Storage struct {
	pool *pgxpool.Pool
}

var _ storage.Backend = (*Storage)(nil)

func NewStorage(ctx context.Context, dsn string) (*Storage, error) {
	if dsn == "" {
		return nil, errors.New("database connection string is empty")
	}

	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &Storage{
		pool: pool,
	}, nil
}

// EnsureSchema creates the urls table if it does not exist.
func (s *Storage) EnsureSchema(ctx context.Context) error {
	createTableQuery := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS urls (
			id BIGSERIAL PRIMARY KEY,
			original TEXT NOT NULL,
			short VARCHAR(%d) NOT NULL UNIQUE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		);
	`, storage.MaxCodeLength)

	if _, err := s.pool.Exec(ctx, createTableQuery); err != nil {
		return fmt.Errorf("error creating urls table: %w", err)
	}

	return nil
}

// Create inserts mapping; the UNIQUE constraint on short rejects taken codes.
func (s *Storage) Create(ctx context.Context, mapping model.URLMapping) (model.URLMapping, error) {
	err := s.pool.QueryRow(ctx,
		"INSERT INTO urls (original, short) VALUES ($1, $2) RETURNING id",
		mapping.Original, mapping.Short,
	).Scan(&mapping.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return model.URLMapping{}, storage.ErrDuplicateCode
		}
		return model.URLMapping{}, fmt.Errorf("error inserting URL into database: %w", err)
	}

	return mapping, nil
}

func (s *Storage) FindByShort(ctx context.Context, short string) (model.URLMapping, error) {
	var mapping model.URLMapping

	err := s.pool.QueryRow(ctx,
		"SELECT id, original, short FROM urls WHERE short = $1", short,
	).Scan(&mapping.ID, &mapping.Original, &mapping.Short)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.URLMapping{}, storage.ErrNotFound
		}
		return model.URLMapping{}, fmt.Errorf("error querying database: %w", err)
	}

	return mapping, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Storage) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
