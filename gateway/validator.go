package gateway

import (
	"time"

	"github.com/cardstream/payment-gateway/gateway/models"
	"github.com/cardstream/payment-gateway/internal/expiry"
)

var supportedCurrencies = map[string]struct{}{
	"USD": {},
	"GBP": {},
	"EUR": {},
}

// Validate checks a payment request against the gateway's acceptance rules.
// Rules run in field order (card number, expiry, currency, amount, CVV) and
// each field contributes at most its first failure, so the leading reason is
// deterministic for a given request. Returns nil when the request is valid.
func Validate(req models.PaymentRequest) *ValidationError {
	return validateAt(req, time.Now())
}

func validateAt(req models.PaymentRequest, now time.Time) *ValidationError {
	var reasons []string

	if r := cardNumberReason(req.CardNumber); r != "" {
		reasons = append(reasons, r)
	}
	if r := expiryReason(req.ExpiryMonth, req.ExpiryYear, now); r != "" {
		reasons = append(reasons, r)
	}
	if r := currencyReason(req.Currency); r != "" {
		reasons = append(reasons, r)
	}
	if req.Amount <= 0 {
		reasons = append(reasons, "Amount must be greater than 0")
	}
	if r := cvvReason(req.CVV); r != "" {
		reasons = append(reasons, r)
	}

	if len(reasons) == 0 {
		return nil
	}
	return &ValidationError{Reasons: reasons}
}

func cardNumberReason(cardNumber string) string {
	switch {
	case cardNumber == "":
		return "Card number is required"
	case !digitsOnly(cardNumber):
		return "Card number must contain only numeric characters"
	case len(cardNumber) < 14 || len(cardNumber) > 19:
		return "Card number must be between 14 and 19 digits long"
	}
	return ""
}

func expiryReason(month, year int, now time.Time) string {
	if !expiry.ValidMonthYear(month, year) {
		return "Expiry date must be in format MM/YYYY"
	}
	if expiry.IsExpired(month, year, now) {
		return "Expiry date must be in the future"
	}
	return ""
}

func currencyReason(currency string) string {
	switch {
	case currency == "":
		return "Currency is required"
	case !upperAlpha3(currency):
		return "Currency must be a 3-letter uppercase code"
	}
	if _, ok := supportedCurrencies[currency]; !ok {
		return "Currency code is not supported. Supported currencies: GBP, USD, EUR"
	}
	return ""
}

func cvvReason(cvv string) string {
	switch {
	case cvv == "":
		return "CVV is required"
	case !digitsOnly(cvv):
		return "CVV must contain only numeric characters"
	case len(cvv) != 3 && len(cvv) != 4:
		return "CVV must be 3 or 4 digits long"
	}
	return ""
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func upperAlpha3(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
