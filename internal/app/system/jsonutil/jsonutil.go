// Package jsonutil provides helper functions for JSON API responses.
//
// Reads return plain resource JSON. Mutations with workflow meaning (approve,
// ratings, recovery codes, favorites) return the envelope
// {statusCode, message, data}. Failures always use the error shape
// {statusCode, message, error}, with the status derived from the apperr kind.
package jsonutil

import (
	"encoding/json"
	"net/http"

	"recetario/internal/domain/apperr"
)

// Envelope is the response shape for mutation endpoints.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
}

// ErrorBody is the response shape for failures.
type ErrorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// OK writes a 200 OK plain-resource JSON response.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// Created writes a 201 Created plain-resource JSON response.
func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, data)
}

// Enveloped writes an envelope response with the given status and message.
func Enveloped(w http.ResponseWriter, status int, message string, data any) {
	JSON(w, status, Envelope{StatusCode: status, Message: message, Data: data})
}

// Fail maps err's apperr kind to an HTTP status and writes the error shape.
// Untagged errors become 500 with a generic message so internal details never
// reach clients.
func Fail(w http.ResponseWriter, err error) {
	kind := apperr.KindOf(err)
	msg := err.Error()
	if kind == apperr.KindInternal {
		msg = "internal server error"
	}
	status := kind.HTTPStatus()
	JSON(w, status, ErrorBody{StatusCode: status, Message: msg, Error: kind.String()})
}

// BadRequest writes a 400 error response with the given message.
func BadRequest(w http.ResponseWriter, message string) {
	Fail(w, apperr.BadRequest("%s", message))
}

// Decode reads and decodes JSON from the request body into v.
func Decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
