package db

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"adledger/db/migrations"
)

// ErrDirtySchema is returned when a previous migration failed halfway and
// the schema needs manual repair before the ledger can start.
var ErrDirtySchema = errors.New("database is in dirty state")

// Migrate brings the database at addr to migrations.Version and returns the
// version it found before migrating (0 for an empty database).
func Migrate(addr string, logger *slog.Logger) (uint, error) {
	if logger == nil {
		logger = slog.Default()
	}
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, fmt.Errorf("open embedded migrations: %w", err)
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return 0, fmt.Errorf("open migration target: %w", err)
	}
	defer mg.Close()
	mg.Log = migrateLogger{logger: logger}

	from, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return from, fmt.Errorf("%w at version %d", ErrDirtySchema, from)
	}

	switch err = mg.Migrate(migrations.Version); {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("schema up to date", slog.Uint64("version", uint64(from)))
	case err != nil:
		return from, fmt.Errorf("migrate %d -> %d: %w", from, migrations.Version, err)
	default:
		logger.Info("schema migrated",
			slog.Uint64("from", uint64(from)),
			slog.Uint64("to", uint64(migrations.Version)))
	}
	return from, nil
}

// migrateLogger routes golang-migrate progress lines into slog at debug.
type migrateLogger struct {
	logger *slog.Logger
}

func (l migrateLogger) Printf(format string, v ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), slog.String("component", "migrate"))
}

func (l migrateLogger) Verbose() bool {
	return false
}
