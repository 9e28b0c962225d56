package gateway

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgconn"
	"github.com/lib/pq"

	"github.com/cardstream/payment-gateway/gateway/models"
)

// Repository stores the durable payment outcome records. Records are written
// once under a freshly generated id and never updated or deleted, so
// concurrent writers never contend on the same key.
type Repository struct {
	mu       sync.RWMutex
	payments map[string]*models.Payment

	db *sql.DB
}

// NewRepository constructs an in-memory repository.
func NewRepository() *Repository {
	return &Repository{
		payments: make(map[string]*models.Payment),
	}
}

// NewPGRepository constructs a db-backed repository.
func NewPGRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreatePayment(ctx context.Context, payment *models.Payment) error {
	if r.db == nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		if _, ok := r.payments[payment.ID]; ok {
			return fmt.Errorf("payment id exists: %w", ErrConflict)
		}
		r.payments[payment.ID] = payment
		return nil
	}
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO gateway.payments(payment_id, status, card_number_last_four, expiry_month, expiry_year, currency, amount)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
    `, payment.ID, string(payment.Status), payment.CardNumberLastFour, payment.ExpiryMonth, payment.ExpiryYear, payment.Currency, payment.Amount)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

func (r *Repository) GetPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	if r.db == nil {
		r.mu.RLock()
		defer r.mu.RUnlock()
		payment, ok := r.payments[paymentID]
		if !ok {
			return nil, ErrNotFound
		}
		return payment, nil
	}
	row := r.db.QueryRowContext(ctx, `
        SELECT payment_id, status, card_number_last_four, expiry_month, expiry_year, currency, amount
          FROM gateway.payments WHERE payment_id=$1
    `, paymentID)
	var p models.Payment
	var status string
	if err := row.Scan(&p.ID, &status, &p.CardNumberLastFour, &p.ExpiryMonth, &p.ExpiryYear, &p.Currency, &p.Amount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	p.Status = models.PaymentStatus(status)
	return &p, nil
}

// Ping returns DB readiness.
func (r *Repository) Ping(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	return r.db.PingContext(ctx)
}

func isUniqueViolation(err error) bool {
	var pe *pq.Error
	if errors.As(err, &pe) && pe.Code == "23505" {
		return true
	}
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) && pgerr.Code == "23505" {
		return true
	}
	return false
}
