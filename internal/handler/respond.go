package handler

import (
	"encoding/json"
	"net/http"

	"github.com/probox/probox-api/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func failure(msg string) model.Response {
	return model.Response{Message: msg}
}

// upstreamFailure carries the store's error text in the error field.
func upstreamFailure(prefix string, err error) model.Response {
	return model.Response{Error: prefix + err.Error()}
}
