package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// DBExecutor - общий интерфейс *sql.DB и *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type kvRepository struct {
	executor DBExecutor
}

func NewKVRepository(db *sql.DB) *kvRepository {
	return &kvRepository{executor: db}
}

func NewKVRepositoryWithTx(tx *sql.Tx) *kvRepository {
	return &kvRepository{executor: tx}
}

// EnsureSchema создает таблицу состояния, если ее нет
func (r *kvRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS app_state (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := r.executor.ExecContext(ctx, query)
	return err
}

func (r *kvRepository) Get(ctx context.Context, key string) (string, bool, error) {
	query := `
		SELECT value
		FROM app_state
		WHERE key = $1
	`

	var value string
	err := r.executor.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}

	return value, true, nil
}

func (r *kvRepository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO app_state (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	_, err := r.executor.ExecContext(ctx, query, key, value, time.Now())
	return err
}
