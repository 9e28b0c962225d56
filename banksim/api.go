// Package banksim simulates the acquiring bank for development and tests.
// Authorization is driven by the last digit of the card number: odd digits
// authorize, even digits decline, and 0 simulates an outage.
package banksim

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type paymentRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	CVV        string `json:"cvv"`
}

type paymentResponse struct {
	Authorized        bool   `json:"authorized"`
	AuthorizationCode string `json:"authorization_code,omitempty"`
}

// API is the HTTP API for the simulated bank.
type API struct{}

func NewAPI() *API {
	return &API{}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Post("/payments", a.processPayment)
}

func (a *API) processPayment(w http.ResponseWriter, r *http.Request) {
	req := paymentRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.CardNumber == "" || req.ExpiryDate == "" {
		http.Error(w, "card_number and expiry_date are required", http.StatusBadRequest)
		return
	}

	last := req.CardNumber[len(req.CardNumber)-1]
	switch {
	case last < '0' || last > '9':
		http.Error(w, "card_number must be numeric", http.StatusBadRequest)
	case last == '0':
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	case (last-'0')%2 == 1:
		writeJSON(w, paymentResponse{Authorized: true, AuthorizationCode: uuid.New().String()})
	default:
		writeJSON(w, paymentResponse{Authorized: false})
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(v)
}
