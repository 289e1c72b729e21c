package handlers

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"

	"github.com/Axios-AI-Innovations/cloud/internal/logger"
)

// minimumUnitAmount is the price floor in minor units: no subscription below
// $999.00/month regardless of the budget the form submitted.
const minimumUnitAmount = 99900

type CheckoutRequest struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	ProjectDetails string  `json:"projectDetails"`
	Budget         float64 `json:"budget"`
}

type CheckoutResponse struct {
	SessionID string `json:"sessionId"`
}

// StripeSessions is the live SessionCreator. The stripe-go client reads the
// package-level key.
type StripeSessions struct{}

func NewStripeSessions(secretKey string) StripeSessions {
	stripe.Key = secretKey
	return StripeSessions{}
}

func (StripeSessions) CreateSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return session.New(params)
}

// UnitAmount converts a budget in whole currency units to minor units,
// truncating fractional cents and clamping to the price floor.
func UnitAmount(budget float64) int64 {
	amount := int64(math.Floor(budget * 100))
	if amount < minimumUnitAmount {
		return minimumUnitAmount
	}
	return amount
}

// Checkout creates a hosted monthly subscription checkout session and returns
// its id for the client-side redirect.
func (s *Server) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	if req.Email == "" || req.Budget == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Email and budget are required"})
		return
	}

	projectDetails := req.ProjectDetails
	if projectDetails == "" {
		projectDetails = "Custom project inquiry"
	}
	name := req.Name
	if name == "" {
		name = "Unknown"
	}

	baseURL := s.Config.BaseURL()
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		CustomerEmail:      stripe.String(req.Email),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String("Custom Project Subscription"),
						Description: stripe.String("Monthly subscription for custom project development"),
					},
					UnitAmount: stripe.Int64(UnitAmount(req.Budget)),
					Recurring: &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
						Interval: stripe.String("month"),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(baseURL + "/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(baseURL + "/custom-project"),
	}
	params.AddMetadata("projectDetails", projectDetails)
	params.AddMetadata("name", name)

	checkoutSession, err := s.Sessions.CreateSession(params)
	if err != nil {
		logger.Error("Stripe checkout session creation failed", map[string]interface{}{
			"error": err.Error(),
			"email": req.Email,
		})
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to create checkout session"})
		return
	}

	logger.Info("Checkout session created", map[string]interface{}{
		"session_id":  checkoutSession.ID,
		"email":       req.Email,
		"unit_amount": UnitAmount(req.Budget),
	})

	writeJSON(w, http.StatusOK, CheckoutResponse{SessionID: checkoutSession.ID})
}
