// Package testsupport holds helpers shared by integration tests.
package testsupport

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// NewSQLiteMemoryDB opens a process-shared in-memory SQLite database. Callers
// should cap the pool at one connection so every query sees the same memory.
func NewSQLiteMemoryDB() (*sql.DB, error) {
	return sql.Open("sqlite3", "file::memory:?cache=shared")
}
