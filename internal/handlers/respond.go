package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/roster/internal/roster"
)

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// statusFor maps an engine error to its HTTP status.
func statusFor(err error) int {
	if errors.Is(err, roster.ErrLobbyClosed) {
		return http.StatusConflict
	}
	switch roster.Kind(err) {
	case roster.KindInvalidInput, roster.KindConflict:
		return http.StatusBadRequest
	case roster.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError reports a named outcome with its message. Storage failures are
// logged and hidden behind a generic message.
func writeError(w http.ResponseWriter, r *http.Request, log *logrus.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Error("request failed")
		writeJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// decodeBody reads a JSON request body into dst. A missing or malformed body
// is invalid input.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is required", roster.ErrInvalidInput)
		}
		return fmt.Errorf("%w: malformed request body", roster.ErrInvalidInput)
	}
	return nil
}
