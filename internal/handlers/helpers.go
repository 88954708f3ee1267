package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ADARSH-E404/diet-eco-plan/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeValidation answers 400 for local precondition failures and defers to
// the fallback status otherwise.
func writeValidation(w http.ResponseWriter, err error, fallbackStatus int, fallbackMessage string) {
	if models.IsValidation(err) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, fallbackStatus, fallbackMessage)
}
