package gateway

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"github.com/cardstream/payment-gateway/gateway/bank"
	"github.com/cardstream/payment-gateway/gateway/models"
	"github.com/cardstream/payment-gateway/internal/expiry"
	"github.com/cardstream/payment-gateway/internal/metrics"
)

// BankClient submits a normalized payment to the acquiring bank and
// classifies the result.
type BankClient interface {
	Submit(ctx context.Context, req bank.Request) bank.Outcome
}

// Service orchestrates a payment end to end: validate, submit to the bank,
// persist the terminal outcome. A record is stored only when the bank
// actually decided (authorized or declined); every other path returns a typed
// error and stores nothing.
type Service struct {
	repo    *Repository
	bank    BankClient
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewService(logger *slog.Logger, repo *Repository, bankClient BankClient, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		bank:    bankClient,
		logger:  logger,
		metrics: m,
	}
}

func (s *Service) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Payment, error) {
	// The id exists before any external call so logs and future retry keys
	// can correlate even when the bank is never reached.
	paymentID := uuid.New().String()
	logger := s.logger.With(slog.String("payment_id", paymentID))

	if verr := Validate(req); verr != nil {
		logger.Error("payment request rejected", slog.String("reason", verr.Reason()))
		s.metrics.Payments.WithLabelValues("rejected").Inc()
		return nil, verr
	}

	bankReq := bank.Request{
		CardNumber: req.CardNumber,
		ExpiryDate: expiry.FormatMMYYYY(req.ExpiryMonth, req.ExpiryYear),
		Currency:   req.Currency,
		Amount:     req.Amount,
		CVV:        req.CVV,
	}

	start := time.Now()
	outcome := s.bank.Submit(ctx, bankReq)
	s.metrics.BankRequestDuration.WithLabelValues(string(outcome.Status)).Observe(time.Since(start).Seconds())

	switch outcome.Status {
	case bank.StatusUnavailable:
		logger.Error("bank service unavailable")
		s.metrics.Payments.WithLabelValues("unavailable").Inc()
		return nil, ErrBankUnavailable
	case bank.StatusError:
		logger.Error("bank processing failed")
		s.metrics.Payments.WithLabelValues("failed").Inc()
		return nil, ErrBankProcessing
	}

	payment := &models.Payment{
		ID:                 paymentID,
		Status:             models.PaymentStatusDeclined,
		CardNumberLastFour: req.LastFour(),
		ExpiryMonth:        req.ExpiryMonth,
		ExpiryYear:         req.ExpiryYear,
		Currency:           req.Currency,
		Amount:             req.Amount,
	}
	if outcome.Authorized {
		payment.Status = models.PaymentStatusAuthorized
	}

	if err := s.repo.CreatePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("storing payment: %w", err)
	}

	s.metrics.Payments.WithLabelValues(strings.ToLower(string(payment.Status))).Inc()
	logger.Info("payment processed", slog.String("status", string(payment.Status)))

	return payment, nil
}

// GetPayment returns the stored record for the given id, or ErrNotFound.
func (s *Service) GetPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	payment, err := s.repo.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("finding payment: %w", err)
	}

	return payment, nil
}
