package http

import (
	"time"

	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/metrics"
	"github.com/MKhiriev/go-posts/internal/service"
	"github.com/MKhiriev/go-posts/internal/state"
	"github.com/MKhiriev/go-posts/internal/validators"
)

type Handler struct {
	states    *state.States
	services  *service.Services
	validator validators.Validator

	// metrics is nil when the endpoint is disabled.
	metrics        *metrics.Metrics
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(
	states *state.States,
	services *service.Services,
	validator validators.Validator,
	m *metrics.Metrics,
	cfg config.Server,
	logger *logger.Logger,
) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		states:         states,
		services:       services,
		validator:      validator,
		metrics:        m,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
