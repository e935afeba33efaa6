package service

import (
	"github.com/MKhiriev/taskflow/internal/config"
	"github.com/MKhiriev/taskflow/internal/logger"
	"github.com/MKhiriev/taskflow/internal/store"
	"github.com/MKhiriev/taskflow/internal/validators"
)

type Services struct {
	AuthService AuthService
	TaskService TaskService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewRequestValidator()

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		TaskService: NewTaskService(storages.TaskRepository, validator, logger),
	}
}
