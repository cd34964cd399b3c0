// Package migration applies the numbered SQL files for a backend and tracks the
// applied version in a one-row schema_version table.
package migration

import (
	"cmp"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/dayjournal/migrations"
)

// ErrNewerSchema means the database was migrated by a newer dayjournal binary.
var ErrNewerSchema = errors.New("database schema is newer than this binary supports")

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Migration is one NNN_name.sql file.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

type Runner struct {
	db     *sql.DB
	files  fs.FS
	driver Driver
}

// NewRunner reads NNN_name.sql files from the root of files.
func NewRunner(db *sql.DB, files fs.FS, driver Driver) *Runner {
	return &Runner{db: db, files: files, driver: driver}
}

// Embedded returns a runner over the schema files compiled into the binary for driver.
func Embedded(db *sql.DB, driver Driver) (*Runner, error) {
	sub, err := fs.Sub(migrations.FS, string(driver))
	if err != nil {
		return nil, fmt.Errorf("failed to access %s migrations: %w", driver, err)
	}
	return NewRunner(db, sub, driver), nil
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func (r *Runner) insertVersionSQL() string {
	if r.driver == DriverPostgres {
		return "INSERT INTO schema_version (version) VALUES ($1)"
	}
	return "INSERT INTO schema_version (version) VALUES (?)"
}

func (r *Runner) writeVersion(db execer, version int) error {
	if _, err := db.Exec("DELETE FROM schema_version"); err != nil {
		return fmt.Errorf("failed to clear schema version: %w", err)
	}
	if _, err := db.Exec(r.insertVersionSQL(), version); err != nil {
		return fmt.Errorf("failed to record schema version %d: %w", version, err)
	}
	return nil
}

func (r *Runner) ensureVersionTable() error {
	_, err := r.db.Exec("CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY)")
	if err != nil {
		return fmt.Errorf("failed to ensure schema_version table: %w", err)
	}
	return nil
}

// GetCurrentVersion returns the applied version, 0 for a fresh database.
func (r *Runner) GetCurrentVersion() (int, error) {
	if err := r.ensureVersionTable(); err != nil {
		return 0, err
	}
	var version int
	err := r.db.QueryRow("SELECT version FROM schema_version").Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

func (r *Runner) SetVersion(version int) error {
	if err := r.ensureVersionTable(); err != nil {
		return err
	}
	return r.writeVersion(r.db, version)
}

// parseName splits "001_init.sql" into 1 and "init".
func parseName(filename string) (int, string, error) {
	prefix, rest, ok := strings.Cut(filename, "_")
	if !ok {
		return 0, "", fmt.Errorf("invalid migration filename format: %s (expected NNN_name.sql)", filename)
	}
	version, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, "", fmt.Errorf("invalid version number in filename %s: %w", filename, err)
	}
	if version < 1 {
		return 0, "", fmt.Errorf("invalid version number in filename %s: version must be at least 1", filename)
	}
	return version, strings.TrimSuffix(rest, ".sql"), nil
}

// ReadMigrationFiles returns every migration ordered by version. Non-.sql files are ignored.
func (r *Runner) ReadMigrationFiles() ([]Migration, error) {
	entries, err := fs.ReadDir(r.files, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var list []Migration
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		version, name, err := parseName(entry.Name())
		if err != nil {
			return nil, err
		}
		content, err := fs.ReadFile(r.files, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}
		list = append(list, Migration{Version: version, Name: name, SQL: string(content)})
	}

	slices.SortFunc(list, func(a, b Migration) int { return cmp.Compare(a.Version, b.Version) })
	for i := 1; i < len(list); i++ {
		if list[i].Version == list[i-1].Version {
			return nil, fmt.Errorf("duplicate migration version %d", list[i].Version)
		}
	}
	return list, nil
}

func latestOf(list []Migration) int {
	if len(list) == 0 {
		return 0
	}
	return list[len(list)-1].Version
}

func (r *Runner) GetLatestVersion() (int, error) {
	list, err := r.ReadMigrationFiles()
	if err != nil {
		return 0, err
	}
	return latestOf(list), nil
}

// Status reports the applied and the latest available versions.
func (r *Runner) Status() (current, latest int, err error) {
	if current, err = r.GetCurrentVersion(); err != nil {
		return 0, 0, err
	}
	if latest, err = r.GetLatestVersion(); err != nil {
		return 0, 0, err
	}
	return current, latest, nil
}

// pending returns the migrations above the applied version.
func (r *Runner) pending() (current int, todo []Migration, err error) {
	current, err = r.GetCurrentVersion()
	if err != nil {
		return 0, nil, err
	}
	list, err := r.ReadMigrationFiles()
	if err != nil {
		return 0, nil, err
	}
	if latest := latestOf(list); current > latest {
		return current, nil, fmt.Errorf("%w: database is at version %d, latest known is %d; upgrade dayjournal", ErrNewerSchema, current, latest)
	}
	for _, m := range list {
		if m.Version > current {
			todo = append(todo, m)
		}
	}
	return current, todo, nil
}

func (r *Runner) Pending() (int, error) {
	_, todo, err := r.pending()
	return len(todo), err
}

// ValidateVersion fails with ErrNewerSchema when the database is ahead of the embedded files.
func (r *Runner) ValidateVersion() error {
	_, _, err := r.pending()
	return err
}

// apply runs one file and bumps the version in the same transaction.
func (r *Runner) apply(m Migration) (err error) {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for migration %d: %w", m.Version, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(m.SQL); err != nil {
		return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
	}
	if err = r.writeVersion(tx, m.Version); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
	}
	return nil
}

// ApplyMigrations applies everything pending and returns how many files ran.
// logFn receives progress lines and may be nil.
func (r *Runner) ApplyMigrations(logFn func(string)) (int, error) {
	if logFn == nil {
		logFn = func(string) {}
	}

	current, todo, err := r.pending()
	if err != nil {
		return 0, err
	}
	if len(todo) == 0 {
		logFn(fmt.Sprintf("Database schema is up to date (version %d)", current))
		return 0, nil
	}

	logFn(fmt.Sprintf("Migrating schema from version %d to %d (%d file(s))", current, todo[len(todo)-1].Version, len(todo)))
	start := time.Now()
	for i, m := range todo {
		logFn(fmt.Sprintf("  Applying migration %d: %s", m.Version, m.Name))
		if err := r.apply(m); err != nil {
			return i, err
		}
	}
	logFn(fmt.Sprintf("Applied %d migration(s) in %v", len(todo), time.Since(start).Round(time.Millisecond)))
	return len(todo), nil
}
