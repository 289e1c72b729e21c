package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/Axios-AI-Innovations/cloud/internal/testutil"
	"github.com/Axios-AI-Innovations/cloud/models"
	"github.com/Axios-AI-Innovations/cloud/storage"
)

func newContactServer(mailer *stubMailer) *Server {
	return NewServer(testutil.NewTestConfig(), storage.NewMemoryStorage(), mailer, &stubSessions{})
}

func TestContact_GeneralInquiry(t *testing.T) {
	mailer := &stubMailer{}
	server := newContactServer(mailer)

	w := testutil.PostJSON(t, server.Router, "/api/contact", map[string]interface{}{
		"type":    "contact",
		"name":    "Ada",
		"email":   "ada@example.com",
		"message": "Tell me more",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp ContactResponse
	testutil.DecodeJSON(t, w, &resp)
	if !resp.Success {
		t.Errorf("expected success true")
	}
	if !strings.HasPrefix(resp.Reference, "AX-") {
		t.Errorf("expected AX- reference, got %q", resp.Reference)
	}

	sub, ok := mailer.sub.(models.ContactSubmission)
	if !ok {
		t.Fatalf("expected ContactSubmission, got %T", mailer.sub)
	}
	if sub.Kind != models.TypeContact || sub.Name != "Ada" || sub.Message != "Tell me more" {
		t.Errorf("unexpected submission %+v", sub)
	}
}

func TestContact_ConsultationRequest(t *testing.T) {
	mailer := &stubMailer{}
	server := newContactServer(mailer)

	w := testutil.PostJSON(t, server.Router, "/api/contact", map[string]interface{}{
		"type":    "pain-point-discovery",
		"name":    "Ada",
		"email":   "ada@example.com",
		"company": "Acme",
		"message": "We lose 10 hours a week on reports",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	sub, ok := mailer.sub.(models.ContactSubmission)
	if !ok {
		t.Fatalf("expected ContactSubmission, got %T", mailer.sub)
	}
	if sub.Kind != models.TypePainPointDiscovery {
		t.Errorf("expected pain-point-discovery discriminant, got %q", sub.Kind)
	}
}

func TestContact_ProjectRequest(t *testing.T) {
	mailer := &stubMailer{}
	server := newContactServer(mailer)

	w := testutil.PostJSON(t, server.Router, "/api/contact", map[string]interface{}{
		"type":           "custom-project",
		"name":           "Ada",
		"email":          "ada@example.com",
		"projectDetails": "Internal dashboard",
		"budget":         "2000",
		"timeline":       "3 months",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	sub, ok := mailer.sub.(models.ProjectSubmission)
	if !ok {
		t.Fatalf("expected ProjectSubmission, got %T", mailer.sub)
	}
	if sub.ProjectDetails != "Internal dashboard" || sub.Budget != "2000" || sub.Timeline != "3 months" {
		t.Errorf("unexpected submission %+v", sub)
	}
}

func TestContact_ValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]interface{}
		wantFields []string
	}{
		{
			name:       "missing everything",
			body:       map[string]interface{}{"type": "contact"},
			wantFields: []string{"name", "email", "message"},
		},
		{
			name: "bad email",
			body: map[string]interface{}{
				"type": "contact", "name": "Ada", "email": "nope", "message": "hi",
			},
			wantFields: []string{"email"},
		},
		{
			name: "consultation requires company",
			body: map[string]interface{}{
				"type": "pain-point-discovery", "name": "Ada",
				"email": "ada@example.com", "message": "hi",
			},
			wantFields: []string{"company"},
		},
		{
			name: "project requires details",
			body: map[string]interface{}{
				"type": "custom-project", "name": "Ada", "email": "ada@example.com",
			},
			wantFields: []string{"projectDetails"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := &stubMailer{}
			server := newContactServer(mailer)

			w := testutil.PostJSON(t, server.Router, "/api/contact", tt.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}

			var resp struct {
				Success bool              `json:"success"`
				Errors  map[string]string `json:"errors"`
			}
			testutil.DecodeJSON(t, w, &resp)

			if resp.Success {
				t.Errorf("expected success false")
			}
			for _, field := range tt.wantFields {
				if resp.Errors[field] == "" {
					t.Errorf("expected an error for field %q, got %v", field, resp.Errors)
				}
			}
			if mailer.calls != 0 {
				t.Errorf("dispatch must be blocked while errors exist")
			}
		})
	}
}

func TestContact_UnknownType(t *testing.T) {
	mailer := &stubMailer{}
	server := newContactServer(mailer)

	w := testutil.PostJSON(t, server.Router, "/api/contact", map[string]interface{}{
		"type":  "newsletter",
		"name":  "Ada",
		"email": "ada@example.com",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if mailer.calls != 0 {
		t.Errorf("unknown type must not dispatch")
	}
}

func TestContact_DispatchFailure(t *testing.T) {
	mailer := &stubMailer{err: errors.New("status 500")}
	server := newContactServer(mailer)

	w := testutil.PostJSON(t, server.Router, "/api/contact", map[string]interface{}{
		"type":    "contact",
		"name":    "Ada",
		"email":   "ada@example.com",
		"message": "hi",
	})

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}

	var resp map[string]interface{}
	testutil.DecodeJSON(t, w, &resp)
	if resp["error"] != "Failed to send message" {
		t.Errorf("error = %v, want generic retry message", resp["error"])
	}
}

func TestContact_MalformedBody(t *testing.T) {
	server := newContactServer(&stubMailer{})

	w := testutil.PostRaw(t, server.Router, "/api/contact", "{not json")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
