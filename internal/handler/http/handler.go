package http

import (
	"github.com/MKhiriev/taskflow/internal/config"
	"github.com/MKhiriev/taskflow/internal/logger"
	"github.com/MKhiriev/taskflow/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      *config.StructuredConfig

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}
