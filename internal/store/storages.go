package store

import (
	"context"

	"github.com/MKhiriev/taskflow/internal/config"
	"github.com/MKhiriev/taskflow/internal/logger"
)

// Storages aggregates every repository backed by the shared database
// connection. It is constructed once at startup and injected into the
// service layer, which keeps all data access behind explicit handles and
// makes every repository replaceable by a test double.
type Storages struct {
	UserRepository UserRepository
	TaskRepository TaskRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// all repositories to the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		TaskRepository: NewTaskRepository(db, logger),
	}, nil
}
