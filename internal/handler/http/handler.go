package http

import (
	"time"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/metrics"
	"github.com/MKhiriev/go-portfolio/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	// uploadsDir is served under /uploads/ when not empty.
	uploadsDir     string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, m *metrics.Metrics, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        m,
		uploadsDir:     cfg.Storage.Files.UploadsDir,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
