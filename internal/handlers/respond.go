// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/graphexplorer/core/internal/ctxlog"
	"github.com/graphexplorer/core/internal/graph"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// writeJSON encodes v with the given status. Edge ids keep their literal "->";
// ?pretty=true indents the output.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if r.URL.Query().Get("pretty") == "true" {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(v); err != nil {
		ctxlog.FromContext(r.Context()).Error("error encoding response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, r, status, ErrorResponse{Error: message, Code: code})
}

// writeDomainError maps graph sentinel errors onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, graph.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, graph.ErrInvalidInput):
		writeError(w, r, http.StatusUnprocessableEntity, "invalid_input", err.Error())
	default:
		ctxlog.FromContext(r.Context()).Error("unexpected handler error", "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal", "internal server error")
	}
}
