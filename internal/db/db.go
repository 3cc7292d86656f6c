package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SchemaVersion is the logical layout version stamped into PRAGMA user_version.
// Version 4 keys applications by created_at; anything older is incompatible
// and can only be rebuilt destructively.
const SchemaVersion = 4

// RebuildConfirm asks the user before an incompatible old layout is dropped.
// Returning false aborts Open without touching the existing data.
type RebuildConfirm func(message string) (bool, error)

// ErrRebuildDeclined is returned by Open when the user refuses the
// destructive schema rebuild.
var ErrRebuildDeclined = errors.New("schema rebuild declined, database left untouched")

const schema = `
CREATE TABLE IF NOT EXISTS applications (
	created_at      TEXT PRIMARY KEY,
	title           TEXT NOT NULL,
	description     TEXT NOT NULL DEFAULT '',
	location        TEXT NOT NULL DEFAULT '',
	tags            TEXT NOT NULL DEFAULT '',
	url             TEXT NOT NULL DEFAULT '',
	url2            TEXT,
	applied_at      TEXT,
	rejected_at     TEXT,
	rejected_reason TEXT,
	archived_at     TEXT,
	favorite_at     TEXT
);
CREATE INDEX IF NOT EXISTS idx_applications_title ON applications(title);
CREATE INDEX IF NOT EXISTS idx_applications_archived ON applications(archived_at);
`

func appDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	base := filepath.Join(home, ".local", "share", "jobtrack")
	if err := os.MkdirAll(base, 0o755); err != nil {
		return "", err
	}
	return base, nil
}

// Open opens the application database, creating or migrating the schema as
// needed. confirm gates the one destructive migration path; it may be nil,
// in which case an incompatible layout fails Open instead of being dropped.
func Open(confirm RebuildConfirm) (*sql.DB, error) {
	dir, err := appDataDir()
	if err != nil {
		return nil, err
	}
	return OpenPath(filepath.Join(dir, "jobtrack.db"), confirm)
}

// OpenPath is Open against an explicit database file path.
func OpenPath(path string, confirm RebuildConfirm) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)",
		path,
	)

	dbh, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := migrate(dbh, confirm); err != nil {
		_ = dbh.Close()
		return nil, err
	}

	return dbh, nil
}

func migrate(dbh *sql.DB, confirm RebuildConfirm) error {
	var version int
	if err := dbh.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		return err
	}

	if version == SchemaVersion {
		return ensureIndexes(dbh)
	}

	var tables int
	err := dbh.QueryRow(
		`SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='applications'`,
	).Scan(&tables)
	if err != nil {
		return err
	}

	// Any pre-existing applications table below the current version uses the
	// old physical layout and cannot be migrated in place.
	if tables > 0 {
		if confirm == nil {
			return fmt.Errorf("database has incompatible schema version %d, rebuild required", version)
		}
		ok, err := confirm("The stored applications use an old incompatible layout. Drop old data and rebuild?")
		if err != nil {
			return err
		}
		if !ok {
			return ErrRebuildDeclined
		}
		if _, err := dbh.Exec(`DROP TABLE applications`); err != nil {
			return fmt.Errorf("drop old layout: %w", err)
		}
	}

	if _, err := dbh.Exec(schema); err != nil {
		return fmt.Errorf("schema apply failed: %w", err)
	}
	if _, err := dbh.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, SchemaVersion)); err != nil {
		return err
	}
	return nil
}

// ensureIndexes is an idempotent upgrader so index additions within the same
// schema version do not force a rebuild.
func ensureIndexes(dbh *sql.DB) error {
	if _, err := dbh.Exec(`CREATE INDEX IF NOT EXISTS idx_applications_title ON applications(title)`); err != nil {
		return err
	}
	if _, err := dbh.Exec(`CREATE INDEX IF NOT EXISTS idx_applications_archived ON applications(archived_at)`); err != nil {
		return err
	}
	return nil
}
