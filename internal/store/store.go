// Package store handles all database interactions. It is the data access
// layer, keeping SQL queries separate from business logic.
package store

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an item with the same name and version
// already exists.
var ErrDuplicate = errors.New("software already in inventory")

// Store provides all functions to interact with the database.
type Store struct {
	db *sql.DB
}

// New creates a new Store instance.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Ping checks that the database is reachable.
func (s *Store) Ping() error {
	return s.db.Ping()
}
