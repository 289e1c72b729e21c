package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Axios-AI-Innovations/cloud/internal/logger"
	"github.com/Axios-AI-Innovations/cloud/internal/validation"
	"github.com/Axios-AI-Innovations/cloud/models"
)

type SubscribeRequest struct {
	Email  string `json:"email"`
	Source string `json:"source"`
}

type SubscribeResponse struct {
	Success bool                      `json:"success"`
	Message string                    `json:"message"`
	Data    *models.EarlyAccessRecord `json:"data"`
}

// Subscribe records an early-access signup. Repeat signups with the same
// email update the tracking source in place; the caller cannot tell a create
// from an update, which is the intended UX.
func (s *Server) Subscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":   "Invalid request body",
			"success": false,
		})
		return
	}

	if !validation.ValidEmail(req.Email) {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":   "Valid email required",
			"success": false,
		})
		return
	}

	source := req.Source
	if source == "" {
		source = models.SourceUnknown
	}

	record, err := s.Storage.UpsertEarlyAccess(ctx, req.Email, source)
	if err != nil {
		logger.Error("Early access upsert failed", map[string]interface{}{
			"error": err.Error(),
			"email": req.Email,
		})
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error":   "Failed to subscribe",
			"success": false,
		})
		return
	}

	logger.Info("Early access subscription recorded", map[string]interface{}{
		"email":  record.Email,
		"source": record.Source,
		"id":     record.ID,
	})

	writeJSON(w, http.StatusOK, SubscribeResponse{
		Success: true,
		Message: "Successfully subscribed to early access",
		Data:    record,
	})
}
