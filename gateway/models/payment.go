package models

// PaymentStatus is the terminal status of a stored payment. Only payments the
// bank actually decided on (approved or declined) are ever stored.
type PaymentStatus string

const (
	PaymentStatusAuthorized PaymentStatus = "Authorized"
	PaymentStatusDeclined   PaymentStatus = "Declined"
)

// PaymentRequest is the untrusted inbound payment submission. No invariants
// hold at construction; validity is established by gateway.Validate.
type PaymentRequest struct {
	CardNumber  string `json:"card_number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	Currency    string `json:"currency"`
	Amount      int64  `json:"amount"`
	CVV         string `json:"cvv"`
}

// LastFour returns the last four digits of the card number. The validator's
// minimum-length rule guarantees at least four source digits for any request
// that reaches the bank.
func (r PaymentRequest) LastFour() string {
	if len(r.CardNumber) < 4 {
		return r.CardNumber
	}
	return r.CardNumber[len(r.CardNumber)-4:]
}

// Payment is the durable outcome record. It is immutable once stored; the
// full card number and CVV are never retained.
type Payment struct {
	ID                 string        `json:"id"`
	Status             PaymentStatus `json:"status"`
	CardNumberLastFour string        `json:"card_number_last_four"`
	ExpiryMonth        int           `json:"expiry_month"`
	ExpiryYear         int           `json:"expiry_year"`
	Currency           string        `json:"currency"`
	Amount             int64         `json:"amount"`
}
