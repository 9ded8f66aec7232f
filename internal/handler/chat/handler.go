package chat

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carepal/backend/internal/service/advice"
	"github.com/carepal/backend/internal/service/assistant"
	chatService "github.com/carepal/backend/internal/service/chat"
	"github.com/carepal/backend/pkg/utils"
)

// Handler 聊天服务的HTTP处理器
type Handler struct {
	assistant *assistant.Service
	logger    *slog.Logger
}

// New 创建聊天处理器
func New(assistantSvc *assistant.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		assistant: assistantSvc,
		logger:    logger.With("component", "chat-handler"),
	}
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/status", h.handleStatus)
	r.Post("/session", h.handleCreateSession)
	r.Route("/sessions/{sessionID}", func(r chi.Router) {
		r.Get("/", h.handleGetSession)
		r.Get("/messages", h.handleListMessages)
		r.Post("/messages", h.handleSendMessage)
		r.Put("/persona", h.handleSwitchPersona)
		r.Post("/reset", h.handleReset)
	})
}

type statusResponse struct {
	Mode            string   `json:"mode"`
	Disclaimer      string   `json:"disclaimer"`
	EmergencyNumber string   `json:"emergencyNumber"`
	ExamplePrompts  []string `json:"examplePrompts"`
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, statusResponse{
		Mode:            h.assistant.Mode(),
		Disclaimer:      advice.Disclaimer,
		EmergencyNumber: h.assistant.EmergencyNumber(),
		ExamplePrompts:  advice.ExamplePrompts,
	})
}

// handleCreateSession 创建会话，personaId为空时使用默认persona
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		PersonaID string `json:"personaId"`
	}

	if err := utils.DecodeJSON(r, &payload); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.assistant.StartSession(r.Context(), payload.PersonaID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, session)
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.assistant.Session(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, session)
}

func (h *Handler) handleListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.assistant.Transcript(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, messages)
}

// handleSendMessage 发送用户消息并返回助手回复
func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message string `json:"message"`
	}

	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	turn, err := h.assistant.Reply(r.Context(), chi.URLParam(r, "sessionID"), payload.Message)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, turn)
}

func (h *Handler) handleSwitchPersona(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		PersonaID string `json:"personaId"`
	}

	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.assistant.SwitchPersona(r.Context(), chi.URLParam(r, "sessionID"), payload.PersonaID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, session)
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	session, err := h.assistant.Reset(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, session)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "error", err)
	}
	utils.RespondError(w, status, err.Error())
}

// StatusFor maps service errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, chatService.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, assistant.ErrPersonaNotFound),
		errors.Is(err, assistant.ErrEmptyMessage),
		errors.Is(err, chatService.ErrPersonaRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
