package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coursetrail/coursetrail/internal/storage"
)

// KVStore implements the storage.KV contract on the kv table, with JSON
// document bodies.
type KVStore struct {
	db *DB
}

var _ storage.KV = (*KVStore)(nil)

// NewKVStore creates a new SQLite-backed key-value store.
func NewKVStore(db *DB) *KVStore {
	return &KVStore{db: db}
}

// Save persists a value (insert or update).
func (s *KVStore) Save(collection, id string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal body: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO kv (collection, id, body, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(collection, id) DO UPDATE SET
			body=excluded.body,
			updated_at=excluded.updated_at`,
		collection, id, string(body), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("upsert record: %w", err)
	}
	return nil
}

// Load reads a value. Missing records yield storage.ErrNotFound; bodies that
// fail to decode yield storage.ErrCorrupt.
func (s *KVStore) Load(collection, id string, v any) error {
	var body string
	err := s.db.QueryRow(
		"SELECT body FROM kv WHERE collection = ? AND id = ?",
		collection, id,
	).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("query record: %w", err)
	}

	if err := json.Unmarshal([]byte(body), v); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrCorrupt, err)
	}
	return nil
}

// Delete removes a record.
func (s *KVStore) Delete(collection, id string) error {
	result, err := s.db.Exec(
		"DELETE FROM kv WHERE collection = ? AND id = ?",
		collection, id,
	)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// List returns all IDs in a collection.
func (s *KVStore) List(collection string) ([]string, error) {
	rows, err := s.db.Query(
		"SELECT id FROM kv WHERE collection = ? ORDER BY id",
		collection,
	)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Exists checks if a record exists.
func (s *KVStore) Exists(collection, id string) bool {
	var one int
	err := s.db.QueryRow(
		"SELECT 1 FROM kv WHERE collection = ? AND id = ?",
		collection, id,
	).Scan(&one)
	return err == nil
}
