package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/Axios-AI-Innovations/cloud/internal/logger"
	"github.com/Axios-AI-Innovations/cloud/internal/validation"
	"github.com/Axios-AI-Innovations/cloud/models"
)

type ContactRequest struct {
	Type           string `json:"type"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Company        string `json:"company"`
	Message        string `json:"message"`
	ProjectDetails string `json:"projectDetails"`
	Budget         string `json:"budget"`
	Timeline       string `json:"timeline"`
}

type ContactResponse struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference"`
}

// Required-field schemas per form variant. The consultation form collects
// company on the site, so it stays required here too.
var contactSchemas = map[models.SubmissionType][]string{
	models.TypeContact:            {"name", "email", "message"},
	models.TypePainPointDiscovery: {"name", "email", "company", "message"},
	models.TypeCustomProject:      {"name", "email", "projectDetails"},
}

// Contact accepts a lead form submission, validates it against the variant's
// schema, and dispatches it to the email provider. Nothing is persisted; a
// failed dispatch means the user resubmits.
func (s *Server) Contact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":   "Invalid request body",
			"success": false,
		})
		return
	}

	kind := models.SubmissionType(req.Type)
	schema, known := contactSchemas[kind]
	if !known {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":   "Unknown submission type",
			"success": false,
		})
		return
	}

	fields := map[string]string{
		"name":           req.Name,
		"email":          req.Email,
		"company":        req.Company,
		"message":        req.Message,
		"projectDetails": req.ProjectDetails,
		"budget":         req.Budget,
		"timeline":       req.Timeline,
	}

	if errors := validation.Check(fields, schema); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"errors":  errors,
		})
		return
	}

	var sub models.Submission
	if kind == models.TypeCustomProject {
		sub = models.ProjectSubmission{
			Name:           req.Name,
			Email:          req.Email,
			Company:        req.Company,
			ProjectDetails: req.ProjectDetails,
			Budget:         req.Budget,
			Timeline:       req.Timeline,
		}
	} else {
		sub = models.ContactSubmission{
			Kind:    kind,
			Name:    req.Name,
			Email:   req.Email,
			Company: req.Company,
			Message: req.Message,
		}
	}

	if err := s.Mailer.SendSubmission(ctx, sub); err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]interface{}{
			"error":   "Failed to send message",
			"success": false,
		})
		return
	}

	reference := newReference()
	logger.Info("Lead submission dispatched", map[string]interface{}{
		"type":      req.Type,
		"email":     req.Email,
		"reference": reference,
	})

	writeJSON(w, http.StatusOK, ContactResponse{
		Success:   true,
		Reference: reference,
	})
}

// newReference tags a submission for support follow-up; it is returned to the
// user but never stored.
func newReference() string {
	return fmt.Sprintf("AX-%s", uuid.Must(uuid.NewRandom()).String()[:8])
}
