// Package jsonresp writes JSON success responses.
package jsonresp

import (
	"encoding/json"
	"net/http"
)

// Write sets the JSON content type, writes status, and encodes v.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes v with status 200.
func OK(w http.ResponseWriter, v any) {
	Write(w, http.StatusOK, v)
}

// Created writes v with status 201.
func Created(w http.ResponseWriter, v any) {
	Write(w, http.StatusCreated, v)
}
