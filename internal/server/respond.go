package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"runlet/internal/route"
	"runlet/internal/runner"
)

// Content types are always explicit, per the agent's HTTP contract.
const (
	contentTypeText = "text/plain; charset=UTF-8"
	contentTypeJSON = "application/json; charset=UTF-8"
)

// writeText writes a plain-text response with the given status code.
func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", contentTypeText)
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondResolveError maps a resolution failure onto the response table:
// missing identifier and unknown script are 404, an identifier outside the
// allowed character set is 403.
func respondResolveError(w http.ResponseWriter, sc route.Script, err error) {
	switch {
	case errors.Is(err, route.ErrNoScript):
		writeText(w, http.StatusNotFound, "No script specified")
	case errors.Is(err, route.ErrInvalidName):
		writeText(w, http.StatusForbidden, "Invalid script name")
	case errors.Is(err, route.ErrNotFound):
		writeText(w, http.StatusNotFound, fmt.Sprintf("Script '%s' not found", sc.Name))
	default:
		writeText(w, http.StatusInternalServerError, fmt.Sprintf("Execution failed: %v", err))
	}
}

// respondResult maps an execution outcome onto the response table: success
// returns the script's trimmed output, failure and timeout return the error
// text as 422.
func respondResult(w http.ResponseWriter, res runner.Result) {
	if res.Status == runner.StatusSuccess {
		writeText(w, http.StatusOK, res.Output)
		return
	}
	writeText(w, http.StatusUnprocessableEntity, res.Err)
}
