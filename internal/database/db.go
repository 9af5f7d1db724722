package database

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/codescope/codescope/internal/utils"
)

// DB wraps the index database connection. The store is single-writer:
// one connection, sequential access.
type DB struct {
	conn   *sql.DB
	path   string
	logger *utils.Logger
}

// Open opens or creates the index database at dbPath and applies the
// schema.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := utils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("failed to create index directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)", dbPath)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single-writer discipline: no connection pooling.
	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(time.Hour)

	db := &DB{
		conn:   conn,
		path:   dbPath,
		logger: utils.NewLogger("database"),
	}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	db.logger.Debugf("opened database: %s", dbPath)
	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

func (db *DB) migrate() error {
	_, err := db.conn.Exec(Schema)
	if err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// Transaction executes fn within a transaction, rolling back on error
// or panic so the prior state is preserved.
func (db *DB) Transaction(fn func(*sql.Tx) error) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// Ping checks database connectivity
func (db *DB) Ping() error {
	return db.conn.Ping()
}

// Stats returns per-table row counts.
func (db *DB) Stats() (map[string]int, error) {
	stats := make(map[string]int)

	queries := map[string]string{
		"files":             "SELECT COUNT(*) FROM files",
		"symbols":           "SELECT COUNT(*) FROM symbols",
		"parents":           "SELECT COUNT(*) FROM parents",
		"refs":              "SELECT COUNT(*) FROM refs",
		"xml_usages":        "SELECT COUNT(*) FROM xml_usages",
		"storyboard_usages": "SELECT COUNT(*) FROM storyboard_usages",
	}

	for name, query := range queries {
		var count int
		if err := db.conn.QueryRow(query).Scan(&count); err != nil {
			return nil, err
		}
		stats[name] = count
	}

	return stats, nil
}
