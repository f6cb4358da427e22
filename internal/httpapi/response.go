package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github-profile-analyzer/internal/profile"
)

// JSON writes data as a JSON response with the given status code.
func JSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding response failed", "error", err)
	}
}

type errorResponse struct {
	Detail  string `json:"detail"`
	ResetAt string `json:"reset_at,omitempty"`
}

// Error maps an analysis error to its HTTP status and writes the detail
// body. Causes of internal errors stay in the logs, never in responses.
func Error(w http.ResponseWriter, err error) {
	var pe *profile.Error
	if !errors.As(err, &pe) {
		slog.Error("unclassified error reached the HTTP layer", "error", err)
		JSON(w, http.StatusInternalServerError, errorResponse{Detail: "internal error"})
		return
	}

	resp := errorResponse{Detail: pe.Reason}
	if pe.Kind == profile.KindRateLimited && !pe.ResetAt.IsZero() {
		resp.ResetAt = pe.ResetAt.UTC().Format("2006-01-02T15:04:05Z")
	}
	if pe.Kind == profile.KindInternal || pe.Kind == profile.KindUpstream {
		slog.Error("analysis failed", "kind", pe.Kind, "reason", pe.Reason, "error", pe.Err)
	}
	JSON(w, statusFor(pe.Kind), resp)
}

func statusFor(kind profile.ErrorKind) int {
	switch kind {
	case profile.KindInvalidInput:
		return http.StatusBadRequest
	case profile.KindNotFound:
		return http.StatusNotFound
	case profile.KindRateLimited:
		return http.StatusTooManyRequests
	case profile.KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
