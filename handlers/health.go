package handlers

import (
	"net/http"
	"time"
)

// Version is stamped by main at startup.
var Version = "dev"

type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Version:   Version,
		Timestamp: time.Now(),
	})
}
