package store

import (
	"database/sql"
	"fmt"
	"time"
)

// Blob is the key-value persistence boundary. The event store writes the
// whole serialized collection under one key; the widget binary reads it back.
type Blob interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
}

// BlobStore persists named byte blobs in SQLite.
type BlobStore struct {
	db *sql.DB
}

func NewBlobStore(db *sql.DB) *BlobStore {
	return &BlobStore{db: db}
}

// Load returns the blob stored under key, or (nil, nil) when absent.
func (s *BlobStore) Load(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM blobs WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load blob %q: %w", key, err)
	}
	return value, nil
}

// Save stores value under key, replacing any previous blob.
func (s *BlobStore) Save(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save blob %q: %w", key, err)
	}
	return nil
}
