package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Axios-AI-Innovations/cloud/internal/config"
)

// NewTestConfig returns a config with every integration present so no
// endpoint comes up disabled.
func NewTestConfig() *config.Config {
	return &config.Config{
		Port:            "8080",
		DatabaseURL:     "postgres://localhost/axios_test",
		StripeSecretKey: "sk_test_123",
		EmailJS: config.EmailJS{
			ServiceID:         "service_test",
			ContactTemplateID: "template_contact",
			ProjectTemplateID: "template_project",
			PublicKey:         "public_test",
		},
		SiteURL: "https://axiosinnovations.com",
	}
}

// PostJSON sends body as a JSON POST through h and returns the recorder.
func PostJSON(t *testing.T, h http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// PostRaw sends a raw body, for malformed-JSON cases.
func PostRaw(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// DecodeJSON unmarshals the recorded response body into v.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}
