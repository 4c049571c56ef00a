// Package store persists contacts and notes in a SQLite database. It
// implements the domain.ContactStore and domain.NoteStore interfaces.
package store

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rolo-tools/cli/internal/store/migrations"
)

// Store wraps the SQLite connection shared by the contact and note stores.
type Store struct {
	db   *sql.DB
	path string
}

// New opens (or creates) the database at path and runs pending migrations.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// DB returns the underlying database connection. Use sparingly; prefer the
// store methods.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Contacts returns the contact store view.
func (s *Store) Contacts() *ContactStore {
	return &ContactStore{db: s.db}
}

// Notes returns the note store view.
func (s *Store) Notes() *NoteStore {
	return &NoteStore{db: s.db}
}

// dsn appends the connection parameters every pooled connection must
// carry. PRAGMAs issued with Exec would only reach the connection that
// happened to run them, leaving cascade deletes off elsewhere.
func dsn(path string) string {
	return path + "?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000"
}

// setDBPermissions restricts access to the database and its WAL/SHM files.
func setDBPermissions(path string) {
	if path == ":memory:" {
		return
	}
	for _, p := range []string{path, path + "-wal", path + "-shm"} {
		if _, err := os.Stat(p); err == nil {
			_ = os.Chmod(p, 0600)
		}
	}
}
