package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"jobmatch-engine/internal/domain"
	"jobmatch-engine/internal/logger"
)

type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	WriteJSON(w, status, e)
}

// writeErr maps a domain error to its status and code. Anything unclassified
// is logged and reported as a 500 without detail.
func writeErr(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	var ce *domain.ConflictError
	switch {
	case errors.As(err, &ve):
		WriteError(w, r, http.StatusBadRequest, "validation_error", ve.Error())
	case errors.As(err, &ce):
		WriteError(w, r, http.StatusConflict, "conflict", ce.Error())
	case errors.Is(err, domain.ErrNotFound):
		WriteError(w, r, http.StatusNotFound, "not_found", err.Error())
	default:
		logger.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		WriteError(w, r, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
