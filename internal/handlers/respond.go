package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/poetree/internal/logger"
	"github.com/sbilibin2017/poetree/internal/middlewares"
	"github.com/sbilibin2017/poetree/internal/models"
	"github.com/sbilibin2017/poetree/internal/services"
)

const (
	msgInternal     = "internal server error"
	msgUnauthorized = "unauthorized"
	msgInvalidBody  = "invalid request body"
)

// ErrorResponse is the envelope of every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: false
	Success bool `json:"success"`
	// example: poem not found
	Message string `json:"message"`
	// example: null
	Data any `json:"data" swaggertype:"object"`
}

func writeJSON[T any](w http.ResponseWriter, code int, message string, data T) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(models.Response[T]{Success: code < 400, Message: message, Data: data}); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeFail(w http.ResponseWriter, code int, message string) {
	writeJSON[any](w, code, message, nil)
}

// writeError renders a service error. Errors without a known kind become a bare 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		writeFail(w, statusOf(svcErr.Kind), svcErr.Message)
		return
	}
	logger.Log.Errorw("internal server error",
		"request_id", middlewares.RequestIDFromContext(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	writeFail(w, http.StatusInternalServerError, msgInternal)
}

func statusOf(kind error) int {
	switch {
	case errors.Is(kind, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(kind, services.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(kind, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(kind, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(kind, services.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// decode reads a JSON body into dst, writing a 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Log.Infow("invalid request body", "path", r.URL.Path, "error", err)
		writeFail(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	return true
}

// currentUser returns the id placed in the context by the auth middleware.
func currentUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := middlewares.UserIDFromContext(r.Context())
	if !ok {
		writeFail(w, http.StatusUnauthorized, msgUnauthorized)
	}
	return id, ok
}

func pathUUID(w http.ResponseWriter, r *http.Request, name, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeFail(w, http.StatusBadRequest, message)
		return uuid.Nil, false
	}
	return id, true
}

func pathInt(w http.ResponseWriter, r *http.Request, name, message string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		writeFail(w, http.StatusBadRequest, message)
		return 0, false
	}
	return id, true
}

// queryPage parses ?page=, defaulting to 1. Values below 1 are clamped by the services.
func queryPage(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("page"))
	if raw == "" {
		return 1, true
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		writeFail(w, http.StatusBadRequest, "invalid page")
		return 0, false
	}
	return page, true
}

func queryString(r *http.Request, name string) *string {
	if !r.URL.Query().Has(name) {
		return nil
	}
	v := r.URL.Query().Get(name)
	return &v
}
