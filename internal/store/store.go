package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const (
	topicsTable    = "topics"
	questionsTable = "questions"
)

// Store is the SQLite question bank.
type Store struct {
	db *sql.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One connection keeps per-connection pragmas in effect.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// TopicRepo returns a TopicRepo backed by this store.
func (s *Store) TopicRepo() TopicRepo {
	return &topicRepo{db: s.db}
}

// builder returns an SQL builder for the SQLite dialect.
func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// Bank tables. Questions keep their bank position so Load returns them in
// import order.
const (
	createTopicsTable = `CREATE TABLE IF NOT EXISTS ` + topicsTable + ` (
	name        TEXT    NOT NULL PRIMARY KEY,
	label       TEXT    NOT NULL,
	source      TEXT    NOT NULL,
	imported_at INTEGER NOT NULL
)`

	createQuestionsTable = `CREATE TABLE IF NOT EXISTS ` + questionsTable + ` (
	topic    TEXT    NOT NULL REFERENCES ` + topicsTable + `(name) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	qid      TEXT    NOT NULL,
	data     TEXT    NOT NULL,
	PRIMARY KEY (topic, position)
)`
)

// migrate creates the bank tables if they do not exist yet.
func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range []string{createTopicsTable, createQuestionsTable} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", stmt, err)
		}
	}
	return nil
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the bank file path in priority order:
// 1. QUIZDECK_BANK environment variable
// 2. $XDG_DATA_HOME/quizdeck/bank.db
// 3. ~/.local/share/quizdeck/bank.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("QUIZDECK_BANK"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "quizdeck", "bank.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
