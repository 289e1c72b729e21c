package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.emailjs.com/api/v1.0"

// requestTimeout bounds the provider call; the API has no streaming responses
// so a hung request is never worth waiting out.
const requestTimeout = 10 * time.Second

// Client defines the interface for sending templated email through EmailJS.
type Client interface {
	Send(ctx context.Context, templateID string, params map[string]interface{}) error
}

type clientImpl struct {
	serviceID string
	publicKey string
	baseURL   string
	http      *http.Client
}

// NewClient creates a new EmailJS client bound to one service id.
func NewClient(serviceID, publicKey string) Client {
	return &clientImpl{
		serviceID: serviceID,
		publicKey: publicKey,
		baseURL:   defaultBaseURL,
		http:      &http.Client{Timeout: requestTimeout},
	}
}

// Send fires one template send. Only an HTTP 200 counts as delivered; any
// other status is returned as an error with the provider's body attached.
func (c *clientImpl) Send(ctx context.Context, templateID string, params map[string]interface{}) error {
	payload := map[string]interface{}{
		"service_id":      c.serviceID,
		"template_id":     templateID,
		"user_id":         c.publicKey,
		"template_params": params,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error encoding payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/email/send", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("error from EmailJS API (status %d): %s", resp.StatusCode, string(respBody))
	}

	return nil
}
