package settings

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3" // Required by the library implementation.
)

// SQLiteStore keeps settings in a database table, mirroring a
// database-resident configuration source. Unlike the other stores it is also
// writable so operators can manage settings with plain SQL or Set.
type SQLiteStore struct {
	db *sql.DB
}

//go:embed migrations/*.sql
var migrationsFS embed.FS

func NewSQLiteStore(ctx context.Context, dbPath string, log *slog.Logger) (*SQLiteStore, error) {
	dbFile, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open DB file: %w", err)
	}

	dbInstance, err := sqlite3.WithInstance(dbFile, &sqlite3.Config{})
	if err != nil {
		return nil, fmt.Errorf("create DB instance: %w", err)
	}

	srcInstance, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("create source instance: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", srcInstance, "sqlite3", dbInstance)
	if err != nil {
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}

	if migrateErr := m.Up(); migrateErr != nil {
		if !errors.Is(migrateErr, migrate.ErrNoChange) {
			return nil, fmt.Errorf("apply migrations: %w", migrateErr)
		}

		log.InfoContext(ctx, "No migrations to apply",
			"dbPath", dbPath)
	} else {
		log.InfoContext(ctx, "Settings DB is migrated",
			"dbPath", dbPath)
	}

	return &SQLiteStore{db: dbFile}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, name string) (string, error) {
	query := "select value from settings where name = ?"

	var value string
	if err := s.db.QueryRowContext(ctx, query, name).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("db setting %s: %w", name, ErrNotSet)
		}

		return "", fmt.Errorf("failed to execute query: %w", err)
	}

	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, name string, value string) error {
	query := "insert into settings (name, value) values (?, ?) " +
		"on conflict (name) do update set value = excluded.value"

	_, err := s.db.ExecContext(ctx, query, name, value)

	return err
}

func (s *SQLiteStore) Delete(ctx context.Context, name string) error {
	query := "delete from settings where name = ?"

	_, err := s.db.ExecContext(ctx, query, name)

	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
