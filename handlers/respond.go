package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"mentrex/services"
)

func writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// handleServiceError maps service failures onto the API's error taxonomy:
// validation → 400 with the first failing rule, bad credentials → 401,
// anything else → 500 with a generic message (details stay server-side).
func handleServiceError(w http.ResponseWriter, err error, internalMessage string) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		writeErrorResponse(w, http.StatusBadRequest, validationErr.Message)
		return
	}
	if errors.Is(err, services.ErrInvalidCredentials) {
		writeErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	log.Printf("[ERROR] %s: %v", internalMessage, err)
	writeErrorResponse(w, http.StatusInternalServerError, internalMessage)
}
