package handler

import "net/http"

// Plain-text bodies returned on failure. Clients treat any non-2xx as total
// failure, so the wording is informational only.
const (
	msgSourceRead    = "Error reading CSV file"
	msgMissingParams = "Access token or page ID is missing"
	msgPhotos        = "Error fetching Facebook photos"
	msgInternal      = "Internal server error"
)

// writeText writes a plain-text error body with the given status.
func writeText(w http.ResponseWriter, status int, message string) {
	http.Error(w, message, status)
}
