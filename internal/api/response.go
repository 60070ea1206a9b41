package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

const notFoundMessage = "Endpoint not found. Use /config or /"

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

func respondNotFound(w http.ResponseWriter) {
	respondError(w, http.StatusNotFound, notFoundMessage)
}
