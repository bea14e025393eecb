package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// OpenDB opens a SQLite database at the given path.
// If path is ":memory:", uses an in-memory database.
// Sets WAL mode, a busy timeout, and enables foreign keys.
// Runs migrations automatically.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	// Pragmas are passed in the DSN so the driver applies them to every
	// connection in the database/sql pool, not just the one a bare Exec
	// would run on.
	//
	// WAL keeps summary reads running concurrently with clock commands.
	// Concurrent clock commands from separate terminals contend for the
	// single writer; busy_timeout waits briefly instead of surfacing
	// SQLITE_BUSY.
	// _txlock=immediate makes transactions take the write lock at BEGIN; a
	// deferred transaction upgrading from read to write under WAL would get
	// SQLITE_BUSY immediately, bypassing busy_timeout.
	dsn := path + "?_txlock=immediate&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}
