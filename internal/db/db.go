package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bagdasarian/devteam-dashboard/internal/config"
	"github.com/bagdasarian/devteam-dashboard/internal/repository"
	"github.com/bagdasarian/devteam-dashboard/internal/repository/boltkv"
	"github.com/bagdasarian/devteam-dashboard/internal/repository/memory"
	"github.com/bagdasarian/devteam-dashboard/internal/repository/postgres"
	"github.com/bagdasarian/devteam-dashboard/internal/repository/sqlite"
	_ "github.com/jackc/pgx/v5/stdlib"
	bolt "go.etcd.io/bbolt"
	_ "modernc.org/sqlite"
)

func NewPostgres(cfg *config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.DBName,
		cfg.Database.SSLMode,
	)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func NewSQLite(path string) (*sql.DB, error) {
	if err := ensureDir(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite: %w", err)
	}

	return db, nil
}

func NewBolt(path string) (*bolt.DB, error) {
	if err := ensureDir(path); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt: %w", err)
	}
	return db, nil
}

func ensureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create dirs: %w", err)
	}
	return nil
}

// OpenKV открывает хранилище состояния согласно конфигурации.
// Возвращаемая функция закрывает соединение.
func OpenKV(ctx context.Context, cfg *config.Config) (repository.KVStore, func() error, error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		database, err := NewPostgres(cfg)
		if err != nil {
			return nil, nil, err
		}
		repo := postgres.NewKVRepository(database)
		if err := repo.EnsureSchema(ctx); err != nil {
			database.Close()
			return nil, nil, fmt.Errorf("failed to create schema: %w", err)
		}
		return repo, database.Close, nil

	case config.BackendSQLite:
		database, err := NewSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		repo := sqlite.NewKVRepository(database)
		if err := repo.EnsureSchema(ctx); err != nil {
			database.Close()
			return nil, nil, fmt.Errorf("failed to create schema: %w", err)
		}
		return repo, database.Close, nil

	case config.BackendBolt:
		database, err := NewBolt(cfg.Storage.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		repo, err := boltkv.NewKVRepository(database)
		if err != nil {
			database.Close()
			return nil, nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		return repo, database.Close, nil

	case config.BackendMemory:
		return memory.NewKVRepository(), func() error { return nil }, nil
	}

	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}

func MustOpenKV(ctx context.Context, cfg *config.Config) (repository.KVStore, func() error) {
	kv, closeFn, err := OpenKV(ctx, cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to open storage: %v", err))
	}
	return kv, closeFn
}
