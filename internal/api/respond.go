package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alexanderramin/peak/internal/contract"
)

const (
	msgNoData   = "No data provided"
	msgInternal = "An error occurred processing your request"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg, details string) {
	writeJSON(w, status, errorResponse{Error: msg, Details: details})
}

// writePlanError maps service errors onto HTTP statuses. Anything that is
// not a client-side PlanError is a 500. Only PlanError messages reach the
// client; other errors are logged by the caller.
func writePlanError(w http.ResponseWriter, err error) {
	var pe *contract.PlanError
	if !errors.As(err, &pe) {
		writeError(w, http.StatusInternalServerError, msgInternal, "")
		return
	}
	if pe.IsClientError() {
		writeError(w, http.StatusBadRequest, string(pe.Code), pe.Message)
		return
	}
	writeError(w, http.StatusInternalServerError, msgInternal, pe.Message)
}
