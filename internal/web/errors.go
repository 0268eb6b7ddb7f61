package web

// errors.go provides unified error response handling for the API.
//
// The flow: a handler hits an error, calls respondError, the error is
// mapped via core.MapError to a user-friendly message, the technical
// error is logged with the request id, and the client gets a JSON body
// with message, action and code.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/jlavigne/epicerie/internal/core"
)

// ErrorResponse is the JSON structure for API error responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// respondError logs the technical error server-side and writes the mapped
// user message with the given status code.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	userMsg := core.MapError(err)

	slog.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", userMsg.Code,
		"request_id", middleware.GetReqID(r.Context()),
	)

	writeJSON(w, statusCode, ErrorResponse{
		Error:   userMsg.Message,
		Message: userMsg.Message,
		Action:  userMsg.Action,
		Code:    userMsg.Code,
	})
}

// respondStoreError maps known store sentinels to their HTTP status.
func (s *Server) respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	s.respondError(w, r, err, statusFor(err))
}

// statusFor picks the HTTP status for a store error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrProductNotFound),
		errors.Is(err, core.ErrSupplierNotFound),
		errors.Is(err, core.ErrRecipientNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrDuplicateID),
		errors.Is(err, core.ErrConfirmRequired):
		return http.StatusConflict
	case errors.Is(err, core.ErrUnknownMode),
		errors.Is(err, core.ErrUnknownImportKind),
		errors.Is(err, core.ErrUnknownChannel):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response failed", "error", err)
	}
}

// decodeJSON decodes the request body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
