package email

import (
	"context"
	"fmt"
	"time"

	"github.com/Axios-AI-Innovations/cloud/internal/config"
	"github.com/Axios-AI-Innovations/cloud/internal/emailjs"
	"github.com/Axios-AI-Innovations/cloud/internal/logger"
	"github.com/Axios-AI-Innovations/cloud/models"
)

const (
	// recipientLabel is the static to_name every template expects.
	recipientLabel = "Axios Innovations Team"
	// companyFallback is stored when the sender left the company blank.
	companyFallback = "Not specified"
)

// Dispatcher maps lead submissions onto EmailJS templates and fires the send.
// One attempt per submission; a failure is surfaced to the caller, who asks
// the user to resubmit.
type Dispatcher struct {
	cfg    config.EmailJS
	client emailjs.Client
	now    func() time.Time
}

// NewDispatcher fails fast, naming every missing provider credential, so a
// misconfigured deploy dies at startup instead of on the first lead.
func NewDispatcher(cfg config.EmailJS) (*Dispatcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Dispatcher{
		cfg:    cfg,
		client: emailjs.NewClient(cfg.ServiceID, cfg.PublicKey),
		now:    time.Now,
	}, nil
}

// SendSubmission dispatches one submission to the template matching its
// discriminant. contact and pain-point-discovery share the contact template;
// custom-project uses the project template.
func (d *Dispatcher) SendSubmission(ctx context.Context, sub models.Submission) error {
	templateID, err := d.templateFor(sub.Type())
	if err != nil {
		return err
	}

	params := d.templateParams(sub)

	if err := d.client.Send(ctx, templateID, params); err != nil {
		logger.Error("Email dispatch failed", map[string]interface{}{
			"error":       err.Error(),
			"type":        string(sub.Type()),
			"template_id": templateID,
		})
		return fmt.Errorf("failed to send submission email: %w", err)
	}

	logger.Info("Email dispatched", map[string]interface{}{
		"type":        string(sub.Type()),
		"template_id": templateID,
		"from_email":  sub.SenderEmail(),
	})
	return nil
}

func (d *Dispatcher) templateFor(t models.SubmissionType) (string, error) {
	switch t {
	case models.TypeContact, models.TypePainPointDiscovery:
		return d.cfg.ContactTemplateID, nil
	case models.TypeCustomProject:
		return d.cfg.ProjectTemplateID, nil
	default:
		return "", fmt.Errorf("unknown submission type %q", t)
	}
}

func (d *Dispatcher) templateParams(sub models.Submission) map[string]interface{} {
	company := sub.CompanyName()
	if company == "" {
		company = companyFallback
	}

	params := map[string]interface{}{
		"from_name":  sub.SenderName(),
		"from_email": sub.SenderEmail(),
		"reply_to":   sub.SenderEmail(),
		"to_name":    recipientLabel,
		"company":    company,
		"submitDate": d.now().UTC().Format(time.RFC3339),
	}

	switch s := sub.(type) {
	case models.ContactSubmission:
		params["message"] = s.Message
	case models.ProjectSubmission:
		params["projectDetails"] = s.ProjectDetails
		params["budget"] = s.Budget
		params["timeline"] = s.Timeline
	}

	return params
}
