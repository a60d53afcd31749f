package handlers

import "net/http"

// Health responds with a plain "ok".
func Health(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "ok")
}
