// Package app assembles the Care Pal services from configuration. Both the
// HTTP server and the CLI start from here.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/carepal/backend/internal/config"
	"github.com/carepal/backend/internal/model/persona"
	"github.com/carepal/backend/internal/service/advice"
	"github.com/carepal/backend/internal/service/ai"
	"github.com/carepal/backend/internal/service/assistant"
	"github.com/carepal/backend/internal/service/chat"
)

// App holds the wired services.
type App struct {
	Personas  persona.Store
	Sessions  *chat.Service
	Assistant *assistant.Service
}

// New wires the services. A provider that cannot be initialised is logged
// and the assistant runs offline.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) *App {
	personas := persona.NewMemoryStore(persona.Seed())
	sessions := chat.NewService()
	responder := advice.NewResponder(
		advice.WithEmergencyNumber(cfg.CarePal.EmergencyNumber),
		advice.WithLocation(cfg.CarePal.Location()),
	)

	var model assistant.Model
	aiSvc, err := ai.NewService(ctx, cfg.AI, logger)
	switch {
	case errors.Is(err, ai.ErrNotConfigured):
		logger.Info("no AI provider configured, running offline")
	case err != nil:
		logger.Warn("failed to initialize AI service, running offline", "error", err)
	default:
		logger.Info("AI service initialized", "provider", aiSvc.Provider())
		model = aiSvc
	}

	return &App{
		Personas:  personas,
		Sessions:  sessions,
		Assistant: assistant.NewService(sessions, personas, responder, model, logger),
	}
}
