package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"cloud.google.com/go/firestore"

	"aichef_backend/models"
	"aichef_backend/preferences"
)

func GetPreferences(client *firestore.Client, w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	// Get the "user" query parameter from the URL
	userID := r.URL.Query().Get("user")
	if userID == "" {
		http.Error(w, "Missing 'user' query parameter", http.StatusBadRequest)
		return
	}

	// Load never fails; missing or broken preferences come back as defaults
	prefs := preferences.Load(ctx, client, userID)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(prefs); err != nil {
		http.Error(w, "Failed to encode preferences", http.StatusInternalServerError)
	}
}

func UpdatePreferences(client *firestore.Client, w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	// Get the "user" query parameter from the URL
	userID := r.URL.Query().Get("user")
	if userID == "" {
		http.Error(w, "Missing 'user' query parameter", http.StatusBadRequest)
		return
	}

	var prefs models.UserPreferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		log.Printf("Failed to decode request body: %v", err)
		return
	}

	if err := preferences.Save(ctx, client, userID, prefs); err != nil {
		http.Error(w, "Failed to save preferences", http.StatusInternalServerError)
		log.Printf("Failed to save preferences for user %s: %v", userID, err)
		return
	}

	// Read back so the response reflects normalization
	saved := preferences.Load(ctx, client, userID)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(saved); err != nil {
		http.Error(w, "Failed to encode preferences", http.StatusInternalServerError)
	}
}
