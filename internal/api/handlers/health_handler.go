package handlers

import (
	"net/http"

	"github.com/oviedoj/userbase-be/internal/api/envelope"
)

// Health reports service liveness.
func Health(w http.ResponseWriter, _ *http.Request) {
	envelope.WriteSuccess(w, http.StatusOK, "API is live", nil)
}

// RouterHealth reports liveness of the mounted route tree.
func RouterHealth(w http.ResponseWriter, _ *http.Request) {
	envelope.WriteSuccess(w, http.StatusOK, "Router is live", nil)
}
