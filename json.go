package main

import (
	"encoding/json"
	"net/http"
)

// Helpers for sending standardized JSON responses.

// successResponse is the envelope for mutating endpoints that confirm an
// action alongside the affected data.
type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Count   int    `json:"count,omitempty"`
}

// respondWithError logs an error (if one is provided) and sends a JSON error
// response to the client with a given message and status code.
func (cfg *apiConfig) respondWithError(w http.ResponseWriter, code int, msg string, err error) {
	if err != nil {
		cfg.logger.Error(msg, "error", err)
	}
	type errorResponse struct {
		Error string `json:"error"`
	}
	cfg.respondWithJSON(w, code, errorResponse{
		Error: msg,
	})
}

// respondWithJSON marshals a payload to JSON, sets the appropriate content-type header,
// writes the HTTP status code, and sends the JSON response to the client.
func (cfg *apiConfig) respondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	data, err := json.Marshal(payload)
	if err != nil {
		cfg.logger.Error("error marshalling JSON", "error", err)
		w.WriteHeader(500)
		return
	}
	w.WriteHeader(code)
	_, err = w.Write(data)
	if err != nil {
		cfg.logger.Error("error writing response", "error", err)
	}
}
