package api

import (
	"log/slog"
	"net/http"

	"github.com/alexis/glassbudget/internal/clientconfig"
)

// configFailure is returned by /config when the source cannot be read.
type configFailure struct {
	HasKeys bool   `json:"hasKeys"`
	Error   string `json:"error"`
}

// Config serves the client config, masked unless exposure is enabled.
func (s *Server) Config(w http.ResponseWriter, r *http.Request) {
	payload, err := clientconfig.Resolve(s.source)
	if err != nil {
		slog.Error("config endpoint failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, configFailure{Error: err.Error()})
		return
	}
	respondJSON(w, http.StatusOK, payload)
}
