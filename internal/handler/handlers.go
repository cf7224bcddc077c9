package handler

import (
	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/handler/http"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/metrics"
	"github.com/MKhiriev/go-posts/internal/service"
	"github.com/MKhiriev/go-posts/internal/state"
	"github.com/MKhiriev/go-posts/internal/validators"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(
	states *state.States,
	services *service.Services,
	validator validators.Validator,
	m *metrics.Metrics,
	cfg config.Server,
	logger *logger.Logger,
) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if states == nil {
		return nil, errNoStates
	}

	handlers := &Handlers{}
	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(states, services, validator, m, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
