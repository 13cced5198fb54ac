package httpapi

import (
	"encoding/json"
	"net/http"

	"log/slog"
)

type errResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("can't encode response", slog.String("err", err.Error()))
	}
}

func respondError(w http.ResponseWriter, status int, err error) {
	respondJSON(w, status, errResponse{Error: err.Error()})
}
