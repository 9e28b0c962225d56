package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"golang.org/x/exp/slog"
)

// Status classifies the transport result of a bank submission. It is derived
// once from the raw response and never reinterpreted downstream.
type Status string

const (
	// StatusSuccess means the bank answered with an authorization decision;
	// Authorized tells whether it approved.
	StatusSuccess Status = "success"
	// StatusUnavailable covers every unreachable or overloaded bank
	// condition: a 503, a refused connection, a timeout, a DNS failure.
	// Collapsing them gives the orchestrator a single retry-later signal.
	StatusUnavailable Status = "unavailable"
	// StatusError means the bank answered with something the gateway cannot
	// trust: an unexpected status code or an unparseable body.
	StatusError Status = "error"
)

// Request is the wire format the acquiring bank expects. ExpiryDate is
// "MM/YYYY"; Amount is in minor units.
type Request struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	CVV        string `json:"cvv"`
}

// Outcome is the normalized result of a single bank submission.
type Outcome struct {
	Status            Status
	Authorized        bool
	AuthorizationCode string
}

type response struct {
	Authorized        bool   `json:"authorized"`
	AuthorizationCode string `json:"authorization_code"`
}

// Doer issues a single HTTP request. The injected implementation owns the
// transport concerns: TLS, pooling and the per-call timeout.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client submits payments to the acquiring bank.
type Client struct {
	httpClient Doer
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger, httpClient Doer, baseURL string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger.With(slog.String("component", "bank-client")),
	}
}

// Submit posts the payment to the bank and classifies the result. Transport
// failures are folded into the outcome, so Submit itself never fails. Single
// attempt, no retries; retry policy belongs to the caller.
func (c *Client) Submit(ctx context.Context, bankReq Request) Outcome {
	body, err := json.Marshal(bankReq)
	if err != nil {
		c.logger.Error("marshaling bank request", "err", err)
		return Outcome{Status: StatusError}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		c.logger.Error("building bank request", "err", err)
		return Outcome{Status: StatusError}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("bank unreachable", "err", err)
		return Outcome{Status: StatusUnavailable}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		bankResp := response{}
		if err := json.NewDecoder(resp.Body).Decode(&bankResp); err != nil {
			c.logger.Error("decoding bank response", "err", err)
			return Outcome{Status: StatusError}
		}

		return Outcome{
			Status:            StatusSuccess,
			Authorized:        bankResp.Authorized,
			AuthorizationCode: bankResp.AuthorizationCode,
		}
	case http.StatusServiceUnavailable:
		c.logger.Error("bank service unavailable", slog.Int("status_code", resp.StatusCode))
		return Outcome{Status: StatusUnavailable}
	default:
		c.logger.Error("unexpected bank response", slog.Int("status_code", resp.StatusCode))
		return Outcome{Status: StatusError}
	}
}
