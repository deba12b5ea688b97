package rpc

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/leagueops/league-management/internal"
	"github.com/leagueops/league-management/pkg/logger"
)

const maxBodyBytes = 1 << 20

// HTTPHandler mounts the registry on an HTTP router. Every procedure is
// invoked as POST /api/rpc/{path} and answers {"result": ...} or
// {"error": {...}}.
type HTTPHandler struct {
	registry *Registry
}

func NewHTTPHandler(registry *Registry) *HTTPHandler {
	return &HTTPHandler{registry: registry}
}

func (h *HTTPHandler) Mount(r chi.Router) {
	r.Post("/api/rpc/{path}", h.serve)
}

type resultResponse struct {
	Result interface{} `json:"result"`
}

func (h *HTTPHandler) serve(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "path")

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		h.writeError(w, r, internal.NewValidationError("failed to read request body", internal.ErrCodeInvalidInput).WithCause(err))
		return
	}

	result, err := h.registry.Dispatch(r.Context(), path, body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, resultResponse{Result: result})
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := internal.IsAppError(err)
	if !ok {
		logger.From(r.Context()).Error("procedure failed", "error", err)
		appErr = internal.NewInternalError("internal server error", err)
	}

	status, payload := appErr.ToHTTPResponse()
	h.writeJSON(w, r, status, payload)
}

func (h *HTTPHandler) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.From(r.Context()).Error("failed to encode response", "error", err)
	}
}
