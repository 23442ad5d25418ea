package sqlite

import (
	"database/sql"
	"embed"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

// SqlFiles holds the profile and hour bucket schema, applied in file name order.
//
//go:embed sql/*.sql
var SqlFiles embed.FS

// Migrate brings db up to the latest schema. Already-applied files are skipped.
func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	return migrator.Migrate(SqlFiles, "sql")
}
