// Package store keeps command history in a bbolt database.
package store

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"src.repoman.dev/pkg/cli/histutil"
	"src.repoman.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[store] ")

// Functions run when the database is opened, keyed by description.
var initDB = map[string](func(*bolt.Tx) error){}

// DBStore is the permanent storage backend for command history.
type DBStore struct {
	db *bolt.DB
}

var (
	_ histutil.Store    = (*DBStore)(nil)
	_ histutil.Appender = (*DBStore)(nil)
)

// NewStore opens the database at the given path, creating it if needed. The
// database file is locked while it is open; if another process holds the
// lock, NewStore gives up after one second.
func NewStore(dbname string) (*DBStore, error) {
	db, err := bolt.Open(dbname, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dbname, err)
	}
	return NewStoreFromDB(db)
}

// NewStoreFromDB creates a new Store from a bolt DB.
func NewStoreFromDB(db *bolt.DB) (*DBStore, error) {
	logger.Println("initializing store")
	st := &DBStore{db}

	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

// Close closes the database.
func (s *DBStore) Close() error {
	return s.db.Close()
}
