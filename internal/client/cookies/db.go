package cookies

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
	"github.com/rosdobro/dobrodela-cli/internal/client/migrations"
	cookierepo "github.com/rosdobro/dobrodela-cli/internal/client/repositories/cookies"
	"github.com/rosdobro/dobrodela-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// RunMigrations applies the embedded goose migrations to the cookie database.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

// OpenRepository opens the SQLite-backed cookie repository at dsn and applies
// migrations. When the database cannot be opened or migrated, it falls back
// to an in-memory repository: the session then simply does not survive the
// process, which matches a browser with cookie storage disabled.
func OpenRepository(ctx context.Context, log logging.Logger, dsn string) cookierepo.Repository {
	db, err := sql.Open("sqlite", dsn)
	if err == nil {
		err = RunMigrations(ctx, db)
	}
	if err != nil {
		log.Warn(ctx, "cookie storage unavailable, falling back to memory", "dsn", dsn, "error", err)
		return cookierepo.NewMemoryRepository()
	}
	return cookierepo.NewSQLiteRepository(db)
}
