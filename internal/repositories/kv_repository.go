package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// KVRepository stores named records in the kv_store table
type KVRepository struct {
	db *sql.DB
}

// NewKVRepository creates a new KVRepository
func NewKVRepository(db *sql.DB) *KVRepository {
	return &KVRepository{db: db}
}

// Get retrieves the value stored under key. found is false when the key has never been written.
func (r *KVRepository) Get(key string) (value []byte, found bool, err error) {
	query := `SELECT value FROM kv_store WHERE key = ?`

	var raw string
	err = r.db.QueryRow(query, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}

	return []byte(raw), true, nil
}

// Set writes value under key, replacing any previous value
func (r *KVRepository) Set(key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`

	if _, err := r.db.Exec(query, key, string(value)); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}
