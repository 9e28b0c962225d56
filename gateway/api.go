package gateway

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cardstream/payment-gateway/gateway/models"
)

// API is the HTTP API for the payment gateway.
type API struct {
	gateway *Service
}

func NewAPI(gateway *Service) *API {
	return &API{
		gateway: gateway,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Route("/payments", func(r chi.Router) {
		r.Post("/", a.processPayment)
		r.Get("/{paymentID}", a.getPayment)
	})
}

type errorResponse struct {
	Message string `json:"message"`
}

func (a *API) processPayment(w http.ResponseWriter, r *http.Request) {
	req := models.PaymentRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	payment, err := a.gateway.ProcessPayment(r.Context(), req)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			writeError(w, http.StatusBadRequest, verr.Reason())
		case errors.Is(err, ErrBankUnavailable):
			writeError(w, http.StatusServiceUnavailable, ErrBankUnavailable.Error())
		case errors.Is(err, ErrBankProcessing):
			writeError(w, http.StatusBadGateway, ErrBankProcessing.Error())
		default:
			writeError(w, http.StatusInternalServerError, "an unexpected error occurred")
		}
		return
	}

	writeJSON(w, http.StatusCreated, payment)
}

func (a *API) getPayment(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "paymentID")

	payment, err := a.gateway.GetPayment(r.Context(), paymentID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, ErrNotFound.Error())
		} else {
			writeError(w, http.StatusInternalServerError, "an unexpected error occurred")
		}
		return
	}

	writeJSON(w, http.StatusOK, payment)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}
