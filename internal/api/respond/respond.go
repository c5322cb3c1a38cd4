// Package respond writes the JSON envelope shared by every HTTP endpoint.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

// Envelope is the body of every response.
type Envelope struct {
	Success bool   `json:"success"`
	Result  any    `json:"result,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to encode response")
	}
}

// OK writes a 200 success envelope around result.
func OK(w http.ResponseWriter, result any) {
	JSON(w, http.StatusOK, Envelope{Success: true, Result: result})
}

// Created writes a 201 success envelope around result.
func Created(w http.ResponseWriter, result any) {
	JSON(w, http.StatusCreated, Envelope{Success: true, Result: result})
}

// Message writes a 200 envelope carrying only a human readable message.
func Message(w http.ResponseWriter, success bool, message string) {
	JSON(w, http.StatusOK, Envelope{Success: success, Message: message})
}

// Fail writes an error envelope with the given status code.
func Fail(w http.ResponseWriter, status int, err error) {
	JSON(w, status, Envelope{Success: false, Error: err.Error()})
}
