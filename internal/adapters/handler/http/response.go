package http

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, errorResponse{Detail: detail})
}
