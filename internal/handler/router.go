package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/carepal/backend/internal/handler/chat"
	"github.com/carepal/backend/internal/handler/persona"
	"github.com/carepal/backend/internal/handler/stream"
	"github.com/carepal/backend/internal/handler/transcript"
	"github.com/carepal/backend/internal/handler/ws"
	middlewarePkg "github.com/carepal/backend/internal/middleware"
	personaModel "github.com/carepal/backend/internal/model/persona"
	"github.com/carepal/backend/internal/service/assistant"
	"github.com/carepal/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(personas personaModel.Store, assistantSvc *assistant.Service, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	personaHandler := persona.New(personas)
	chatHandler := chat.New(assistantSvc, logger)
	streamHandler := stream.New(assistantSvc, logger)
	wsHandler := ws.New(assistantSvc, logger)

	r.Route("/api", func(api chi.Router) {
		personaHandler.RegisterRoutes(api)
		chatHandler.RegisterRoutes(api)
		wsHandler.RegisterRoutes(api)

		api.Get("/stream/{sessionID}", func(w http.ResponseWriter, r *http.Request) {
			sessionID := chi.URLParam(r, "sessionID")
			userMessage := r.URL.Query().Get("message")

			if userMessage == "" {
				utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
				return
			}

			if err := streamHandler.HandleStreamRequest(r.Context(), w, sessionID, userMessage); err != nil {
				status := chat.StatusFor(err)
				if errors.Is(err, stream.ErrStreamingUnsupported) {
					status = http.StatusInternalServerError
				}
				logger.Warn("stream request failed", "session", sessionID, "error", err)
				utils.RespondError(w, status, err.Error())
			}
		})
	})

	transcript.New(assistantSvc, personas, logger).RegisterRoutes(r)

	return r
}
