package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/MrSnakeDoc/keepdash/internal/apperr"
	"github.com/MrSnakeDoc/keepdash/internal/logger"
)

// maxBody caps JSON request bodies.
const maxBody = 1 << 20

type errorResponse struct {
	Error   apperr.Code       `json:"error"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func statusFor(code apperr.Code) int {
	switch code {
	case apperr.CodeValidation:
		return http.StatusBadRequest
	case apperr.CodeUnauthorized:
		return http.StatusUnauthorized
	case apperr.CodeTransport:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err to its HTTP status. Internal errors are logged and
// answered with a generic message.
func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	code := apperr.CodeOf(err)
	status := statusFor(code)

	resp := errorResponse{Error: code, Message: "internal error"}
	var ae *apperr.Error
	if errors.As(err, &ae) && code != apperr.CodeInternal {
		resp.Message = ae.Message
		resp.Details = ae.Details
	}

	if status >= http.StatusInternalServerError {
		log.Error("request failed", logger.Int("status", status), logger.Error(err))
	}
	writeJSON(w, status, resp)
}

// decodeJSON reads a single JSON object from the request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperr.Validation("invalid JSON body", map[string]string{"body": err.Error()})
	}
	return nil
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, key string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperr.Validation("invalid query parameter", map[string]string{key: "must be an integer"})
	}
	return &n, nil
}

// queryBool parses an optional boolean query parameter.
func queryBool(r *http.Request, key string) (*bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperr.Validation("invalid query parameter", map[string]string{key: "must be a boolean"})
	}
	return &b, nil
}

// queryString returns a pointer to a non-empty query parameter.
func queryString(r *http.Request, key string) *string {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return nil
	}
	return &v
}

// queryList splits a comma separated or repeated query parameter.
func queryList(r *http.Request, key string) []string {
	var out []string
	for _, raw := range r.URL.Query()[key] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}
