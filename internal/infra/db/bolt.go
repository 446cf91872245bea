package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	bolt "go.etcd.io/bbolt"
)

// BoltDatabase wraps an embedded bbolt file.
type BoltDatabase struct {
	db *bolt.DB
}

// NewBoltConnection opens the bbolt file at path, creating it if needed.
func NewBoltConnection(path string) (*BoltDatabase, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database %s: %w", path, err)
	}

	slog.Info("Bolt database opened", "path", path)
	return &BoltDatabase{db: db}, nil
}

// DB returns the underlying bbolt handle.
func (d *BoltDatabase) DB() *bolt.DB {
	return d.db
}

// Ping checks that a read transaction can be opened.
func (d *BoltDatabase) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return d.db.View(func(*bolt.Tx) error { return nil })
}

// Close closes the bbolt file.
func (d *BoltDatabase) Close() error {
	if err := d.db.Close(); err != nil {
		return fmt.Errorf("failed to close bolt database: %w", err)
	}
	slog.Info("Bolt database closed")
	return nil
}
