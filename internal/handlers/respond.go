// Package handlers contains the HTTP glue between the intake form and the
// submission pipeline.
package handlers

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"kleos-intake/internal/kleos"
	"kleos-intake/pkg/errors"
)

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sendError maps a pipeline error onto its ServiceError status and code,
// attaching the raw upstream payload when one was captured.
func sendError(w http.ResponseWriter, err error) {
	svcErr := errors.ErrInternalServer
	var se *errors.ServiceError
	var apiErr *kleos.APIError
	if stderrors.As(err, &se) {
		svcErr = se
	} else if stderrors.As(err, &apiErr) {
		svcErr = errors.ErrUpstreamCall
	}

	body := map[string]interface{}{
		"error":             svcErr.Code,
		"error_description": svcErr.Message,
	}

	if stderrors.As(err, &apiErr) && len(apiErr.Body) > 0 && json.Valid(apiErr.Body) {
		body["details"] = json.RawMessage(apiErr.Body)
	} else if svcErr.Err != nil {
		body["details"] = svcErr.Err.Error()
	}

	sendJSON(w, svcErr.Status, body)
}
