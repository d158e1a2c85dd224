package httpx

import (
	"encoding/json"
	"net/http"
)

// Envelope is the {success, message, data} response body shared by the
// registration and delete endpoints and by generic failures.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteEnvelope(w http.ResponseWriter, status int, success bool, message string) {
	WriteJSON(w, status, Envelope{Success: success, Message: message})
}
