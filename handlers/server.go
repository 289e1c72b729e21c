package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/stripe/stripe-go/v82"

	"github.com/Axios-AI-Innovations/cloud/internal/config"
	"github.com/Axios-AI-Innovations/cloud/internal/logger"
	"github.com/Axios-AI-Innovations/cloud/internal/ratelimit"
	"github.com/Axios-AI-Innovations/cloud/models"
	"github.com/Axios-AI-Innovations/cloud/storage"
)

// Mailer dispatches a lead submission to the transactional email provider.
type Mailer interface {
	SendSubmission(ctx context.Context, sub models.Submission) error
}

// SessionCreator requests a hosted checkout session from the payment
// processor.
type SessionCreator interface {
	CreateSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type Server struct {
	Router   chi.Router
	Config   *config.Config
	Storage  storage.Storage
	Mailer   Mailer
	Sessions SessionCreator
}

// NewServer wires the routes. Endpoints whose integration is unconfigured get
// a fixed disabled handler at construction time instead of nil-checks inside
// the request path.
func NewServer(cfg *config.Config, store storage.Storage, mailer Mailer, sessions SessionCreator) *Server {
	s := &Server{
		Config:   cfg,
		Storage:  store,
		Mailer:   mailer,
		Sessions: sessions,
	}

	subscribe := s.Subscribe
	if store == nil {
		subscribe = disabled(map[string]interface{}{
			"error":   "Database not configured",
			"success": false,
		})
	}

	checkout := s.Checkout
	if sessions == nil {
		checkout = disabled(map[string]interface{}{
			"error": "Stripe is not configured",
		})
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.BaseURL()},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.Health)

	limiter := ratelimit.New(20, time.Minute)
	r.Route("/api", func(r chi.Router) {
		r.Use(ratelimit.Middleware(limiter))
		r.Post("/subscribe", subscribe)
		r.Post("/checkout", checkout)
		r.Post("/contact", s.Contact)
	})

	s.Router = r
	return s
}

// disabled returns a handler that always answers with the same server error.
// Used when a required credential was absent at startup.
func disabled(body map[string]interface{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, body)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
