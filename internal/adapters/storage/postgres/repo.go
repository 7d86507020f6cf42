package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"pet-wellness/internal/ports/storage"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// Repo guarda cada entidad como JSONB en la tabla records.
// kind distingue entidades ("pet", "reminder", ...).
type Repo[T storage.Record] struct {
	db   *sql.DB
	kind string
}

func NewRepo[T storage.Record](db *sql.DB, kind string) *Repo[T] {
	return &Repo[T]{db: db, kind: kind}
}

func (r *Repo[T]) Create(ctx context.Context, v T) error {
	id := strings.TrimSpace(v.RecordID())
	if id == "" {
		return errors.New("record id required")
	}

	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("postgres: marshal %s: %w", r.kind, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO records (kind, id, scope, body)
		VALUES ($1, $2, $3, $4)
	`, r.kind, id, v.RecordScope(), body)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return storage.ErrConflict
		}
		return err
	}
	return nil
}

func (r *Repo[T]) Update(ctx context.Context, v T) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("postgres: marshal %s: %w", r.kind, err)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE records
		SET scope = $3, body = $4
		WHERE kind = $1 AND id = $2
	`, r.kind, v.RecordID(), v.RecordScope(), body)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *Repo[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T

	id = strings.TrimSpace(id)
	if id == "" {
		return zero, storage.ErrNotFound
	}

	var body []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT body FROM records WHERE kind = $1 AND id = $2
	`, r.kind, id).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, storage.ErrNotFound
		}
		return zero, err
	}

	return r.decode(body)
}

func (r *Repo[T]) ListByScope(ctx context.Context, scope string) ([]T, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT body FROM records
		WHERE kind = $1 AND scope = $2
		ORDER BY seq ASC
	`, r.kind, scope)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		v, err := r.decode(body)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, rows.Err()
}

func (r *Repo[T]) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM records WHERE kind = $1 AND id = $2
	`, r.kind, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *Repo[T]) decode(body []byte) (T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return v, fmt.Errorf("postgres: decode %s: %w", r.kind, err)
	}
	return v, nil
}
