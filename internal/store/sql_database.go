package store

import (
	"database/sql"

	"github.com/MKhiriev/taskflow/internal/logger"
	"github.com/MKhiriev/taskflow/migrations"
)

// DB wraps the standard *sql.DB with the application's error classification
// and logging facilities. Repositories operate on this type only.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all embedded schema migrations to the connected database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
