package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// 001_description.up.sql or 001_description.down.sql
var migrationName = regexp.MustCompile(`^(\d+)_(.+)\.(up|down)\.sql$`)

// Migration is one versioned schema change. Each up script records itself
// in schema_migrations; each down script removes that record.
type Migration struct {
	Version     int
	Description string
	UpSQL       string
	DownSQL     string
}

// Migrator applies the embedded migrations.
type Migrator struct {
	db *sql.DB
}

// NewMigrator creates a new migration handler.
func NewMigrator(db *sql.DB) *Migrator {
	return &Migrator{db: db}
}

// LoadMigrations returns the embedded migrations ordered by version.
func LoadMigrations() ([]Migration, error) {
	byVersion := make(map[int]*Migration)

	err := fs.WalkDir(migrationsFS, "migrations", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		m := migrationName.FindStringSubmatch(path.Base(p))
		if m == nil {
			return nil
		}

		version, _ := strconv.Atoi(m[1])

		content, err := migrationsFS.ReadFile(p)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", p, err)
		}

		mig, ok := byVersion[version]
		if !ok {
			mig = &Migration{Version: version, Description: strings.ReplaceAll(m[2], "_", " ")}
			byVersion[version] = mig
		}

		if m[3] == "up" {
			mig.UpSQL = string(content)
		} else {
			mig.DownSQL = string(content)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking migrations: %w", err)
	}

	out := make([]Migration, 0, len(byVersion))
	for _, mig := range byVersion {
		out = append(out, *mig)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })

	return out, nil
}

// CurrentVersion returns the highest applied version, 0 on a fresh database.
func (m *Migrator) CurrentVersion() (int, error) {
	var name string

	err := m.db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='schema_migrations'`).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("checking schema_migrations table: %w", err)
	}

	var version int
	if err := m.db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&version); err != nil {
		return 0, fmt.Errorf("getting current version: %w", err)
	}

	return version, nil
}

// PendingMigrations returns migrations newer than the current version.
func (m *Migrator) PendingMigrations() ([]Migration, error) {
	all, err := LoadMigrations()
	if err != nil {
		return nil, err
	}

	current, err := m.CurrentVersion()
	if err != nil {
		return nil, err
	}

	var pending []Migration

	for _, mig := range all {
		if mig.Version > current {
			pending = append(pending, mig)
		}
	}

	return pending, nil
}

// MigrateUp applies all pending migrations in order.
func (m *Migrator) MigrateUp() error {
	pending, err := m.PendingMigrations()
	if err != nil {
		return err
	}

	for _, mig := range pending {
		if mig.UpSQL == "" {
			return fmt.Errorf("migration %d has no up SQL", mig.Version)
		}

		if err := m.exec(mig.UpSQL); err != nil {
			return fmt.Errorf("applying migration %d (%s): %w", mig.Version, mig.Description, err)
		}
	}

	return nil
}

// MigrateDown rolls back the most recent migration.
func (m *Migrator) MigrateDown() error {
	current, err := m.CurrentVersion()
	if err != nil {
		return err
	}

	if current == 0 {
		return errors.New("no migrations to rollback")
	}

	all, err := LoadMigrations()
	if err != nil {
		return err
	}

	for _, mig := range all {
		if mig.Version != current {
			continue
		}

		if mig.DownSQL == "" {
			return fmt.Errorf("migration %d has no down SQL", current)
		}

		if err := m.exec(mig.DownSQL); err != nil {
			return fmt.Errorf("rolling back migration %d (%s): %w", current, mig.Description, err)
		}

		return nil
	}

	return fmt.Errorf("migration %d not found", current)
}

func (m *Migrator) exec(script string) (err error) {
	tx, err := m.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(script); err != nil {
		return fmt.Errorf("executing migration: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
