// Package handlers provides HTTP handlers for the concierge API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/forgelight-studio/concierge/internal/observability"
	"github.com/forgelight-studio/concierge/internal/rag"
	"github.com/forgelight-studio/concierge/internal/session"
)

// ChatHandler serves the chat widget endpoints.
type ChatHandler struct {
	logger   *observability.Logger
	engine   *rag.Engine
	sessions session.Store
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(logger *observability.Logger, engine *rag.Engine, sessions session.Store) *ChatHandler {
	return &ChatHandler{
		logger:   logger.WithComponent("handlers"),
		engine:   engine,
		sessions: sessions,
	}
}

// SearchRequestDTO is the stateless search request body.
type SearchRequestDTO struct {
	Query   string        `json:"query"`
	History []rag.Message `json:"history,omitempty"`
}

// SearchResponseDTO is the stateless search response body.
type SearchResponseDTO struct {
	Results []rag.SearchResult `json:"results"`
}

// RespondRequestDTO is the stateless respond request body.
type RespondRequestDTO struct {
	Query   string             `json:"query"`
	Results []rag.SearchResult `json:"results"`
	History []rag.Message      `json:"history,omitempty"`
}

// ChatRequestDTO is the session-aware chat request body.
type ChatRequestDTO struct {
	SessionID string `json:"sessionId,omitempty"`
	Message   string `json:"message"`
}

// ChatResponseDTO is the session-aware chat response body.
type ChatResponseDTO struct {
	SessionID string       `json:"sessionId"`
	Response  rag.Response `json:"response"`
}

// Search handles POST /api/search: the engine's raw search entry point.
func (h *ChatHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	results := h.engine.Search(req.Query, req.History)
	if results == nil {
		results = []rag.SearchResult{}
	}

	writeJSON(w, http.StatusOK, SearchResponseDTO{Results: results})
}

// Respond handles POST /api/respond: composes a response from caller-supplied
// search results.
func (h *ChatHandler) Respond(w http.ResponseWriter, r *http.Request) {
	var req RespondRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	resp := h.engine.GenerateResponse(req.Query, req.Results, req.History)
	writeJSON(w, http.StatusOK, resp)
}

// Chat handles POST /api/chat: loads session history, runs the full
// search-and-respond pipeline, and persists both turns. Store failures
// degrade to stateless handling rather than failing the request.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ChatRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	history, err := h.sessions.History(ctx, sessionID)
	if err != nil && !errors.Is(err, session.ErrNotFound) {
		h.logger.Warn().Err(err).Str("session_id", sessionID).Msg("Session load failed, continuing stateless")
		history = nil
	}

	resp := h.engine.Respond(req.Message, history)

	if err := h.sessions.Append(ctx, sessionID, rag.Message{Role: rag.RoleUser, Content: req.Message}); err != nil {
		h.logger.Warn().Err(err).Str("session_id", sessionID).Msg("Failed to persist user turn")
	} else if err := h.sessions.Append(ctx, sessionID, rag.Message{Role: rag.RoleModel, Content: resp.Answer}); err != nil {
		h.logger.Warn().Err(err).Str("session_id", sessionID).Msg("Failed to persist model turn")
	}

	writeJSON(w, http.StatusOK, ChatResponseDTO{SessionID: sessionID, Response: resp})
}

// EndSession handles DELETE /api/chat/{sessionID}.
func (h *ChatHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "session id is required")
		return
	}

	if err := h.sessions.Clear(r.Context(), sessionID); err != nil {
		h.logger.Error().Err(err).Str("session_id", sessionID).Msg("Failed to clear session")
		writeError(w, http.StatusInternalServerError, "failed to clear session")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
