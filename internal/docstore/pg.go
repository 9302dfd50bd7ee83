package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/folio/backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool creates a PostgreSQL connection pool and verifies connectivity.
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}
	return pool, nil
}

// PgStore is the PostgreSQL implementation of Store. Documents live in a
// single table keyed by collection path, with the open field map in a JSONB
// column. The database assigns creation timestamps so document ordering does
// not depend on client clocks.
type PgStore struct {
	pool *pgxpool.Pool
}

// NewPgStore creates a PgStore backed by the given pool.
func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

var _ Store = (*PgStore)(nil)

// Ping reports store reachability for the health endpoint.
func (s *PgStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// List returns all documents under the collection path, newest first, with
// id and created_at merged into each field map.
func (s *PgStore) List(ctx context.Context, collection string) ([]model.Document, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, fields, created_at
		 FROM documents
		 WHERE collection = $1
		 ORDER BY created_at DESC`,
		collection,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	var docs []model.Document
	for rows.Next() {
		var (
			id        string
			fields    map[string]any
			createdAt time.Time
		)
		if err := rows.Scan(&id, &fields, &createdAt); err != nil {
			return nil, fmt.Errorf("docstore: scan: %w", err)
		}
		doc := model.Document{}
		for k, v := range fields {
			doc[k] = v
		}
		doc["id"] = id
		doc["created_at"] = createdAt
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return docs, nil
}

// Append inserts one document and returns its store-assigned identifier.
// created_at is assigned by the database clock via the column default.
func (s *PgStore) Append(ctx context.Context, collection string, fields model.Document) (string, error) {
	id := uuid.NewString()
	var returned string
	err := s.pool.QueryRow(ctx,
		`INSERT INTO documents (id, collection, fields)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		id, collection, fields,
	).Scan(&returned)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			return "", fmt.Errorf("%w: %s", ErrWriteRejected, pgErr.Message)
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return returned, nil
}
