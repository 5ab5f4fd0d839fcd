package handlers

import (
	"cost-intelligence-service/internal/domain"
	"cost-intelligence-service/internal/platform/obs"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().
			Str("req_id", obs.RequestID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Err(err).
			Msg("encode failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeInternal logs the cause and hides it from the client.
func writeInternal(w http.ResponseWriter, r *http.Request, op string, err error) {
	log.Error().
		Str("req_id", obs.RequestID(r.Context())).
		Str("op", op).
		Err(err).
		Msg("request failed")
	writeError(w, r, http.StatusInternalServerError, "internal server error")
}

// parseFilter reads the priority and category selections. Each parameter may
// repeat (priority=High&priority=Low) or carry a comma-separated list.
func parseFilter(r *http.Request) domain.Filter {
	q := r.URL.Query()
	return domain.NewFilter(q["priority"], q["category"])
}
