package boltkv

import (
	"context"

	bolt "go.etcd.io/bbolt"
)

const bucketState = "state"

type kvRepository struct {
	db *bolt.DB
}

// NewKVRepository создает bucket состояния, если его нет
func NewKVRepository(db *bolt.DB) (*kvRepository, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketState))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &kvRepository{db: db}, nil
}

func (r *kvRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	var (
		value string
		found bool
	)
	err := r.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(bucketState)).Get([]byte(key)); v != nil {
			value = string(v)
			found = true
		}
		return nil
	})
	return value, found, err
}

func (r *kvRepository) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketState)).Put([]byte(key), []byte(value))
	})
}
