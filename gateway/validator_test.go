package gateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cardstream/payment-gateway/gateway/models"
)

func validRequest() models.PaymentRequest {
	return models.PaymentRequest{
		CardNumber:  "2222405343248113",
		ExpiryMonth: 4,
		ExpiryYear:  2030,
		Currency:    "GBP",
		Amount:      100,
		CVV:         "123",
	}
}

func TestValidate_ValidRequest(t *testing.T) {
	require.Nil(t, Validate(validRequest()))
}

func TestValidate_CardNumber(t *testing.T) {
	cases := []struct {
		name       string
		cardNumber string
		reason     string
	}{
		{"missing", "", "Card number is required"},
		{"letters", "2222a05343248113", "Card number must contain only numeric characters"},
		{"spaces", "2222 0534 3248 113", "Card number must contain only numeric characters"},
		{"too short", "1234567890123", "Card number must be between 14 and 19 digits long"},
		{"too long", "12345678901234567890", "Card number must be between 14 and 19 digits long"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validRequest()
			req.CardNumber = c.cardNumber

			verr := Validate(req)
			require.NotNil(t, verr)
			require.Equal(t, c.reason, verr.Reason())
		})
	}

	// boundary lengths pass
	for _, n := range []int{14, 19} {
		req := validRequest()
		req.CardNumber = ""
		for i := 0; i < n; i++ {
			req.CardNumber += "9"
		}
		require.Nil(t, Validate(req), "length %d should be valid", n)
	}
}

func TestValidate_Expiry(t *testing.T) {
	now := time.Date(2027, time.June, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name        string
		month, year int
		reason      string
	}{
		{"zero month", 0, 2030, "Expiry date must be in format MM/YYYY"},
		{"month too big", 13, 2030, "Expiry date must be in format MM/YYYY"},
		{"two digit year", 6, 30, "Expiry date must be in format MM/YYYY"},
		{"zero year", 6, 0, "Expiry date must be in format MM/YYYY"},
		{"last month", 5, 2027, "Expiry date must be in the future"},
		{"last year", 6, 2026, "Expiry date must be in the future"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validRequest()
			req.ExpiryMonth = c.month
			req.ExpiryYear = c.year

			verr := validateAt(req, now)
			require.NotNil(t, verr)
			require.Equal(t, c.reason, verr.Reason())
		})
	}

	// the current month is still accepted
	req := validRequest()
	req.ExpiryMonth = 6
	req.ExpiryYear = 2027
	require.Nil(t, validateAt(req, now))
}

func TestValidate_Currency(t *testing.T) {
	cases := []struct {
		name     string
		currency string
		reason   string
	}{
		{"missing", "", "Currency is required"},
		{"lowercase", "usd", "Currency must be a 3-letter uppercase code"},
		{"too short", "US", "Currency must be a 3-letter uppercase code"},
		{"too long", "USDD", "Currency must be a 3-letter uppercase code"},
		{"unsupported", "JPY", "Currency code is not supported. Supported currencies: GBP, USD, EUR"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validRequest()
			req.Currency = c.currency

			verr := Validate(req)
			require.NotNil(t, verr)
			require.Equal(t, c.reason, verr.Reason())
		})
	}

	for _, currency := range []string{"USD", "GBP", "EUR"} {
		req := validRequest()
		req.Currency = currency
		require.Nil(t, Validate(req), "currency %s should be valid", currency)
	}
}

func TestValidate_Amount(t *testing.T) {
	for _, amount := range []int64{0, -1, -100} {
		req := validRequest()
		req.Amount = amount

		verr := Validate(req)
		require.NotNil(t, verr)
		require.Equal(t, "Amount must be greater than 0", verr.Reason())
	}

	req := validRequest()
	req.Amount = 1
	require.Nil(t, Validate(req))
}

func TestValidate_CVV(t *testing.T) {
	cases := []struct {
		name   string
		cvv    string
		reason string
	}{
		{"missing", "", "CVV is required"},
		{"letters", "12a", "CVV must contain only numeric characters"},
		{"too short", "12", "CVV must be 3 or 4 digits long"},
		{"too long", "12345", "CVV must be 3 or 4 digits long"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validRequest()
			req.CVV = c.cvv

			verr := Validate(req)
			require.NotNil(t, verr)
			require.Equal(t, c.reason, verr.Reason())
		})
	}

	for _, cvv := range []string{"123", "1234"} {
		req := validRequest()
		req.CVV = cvv
		require.Nil(t, Validate(req), "cvv %s should be valid", cvv)
	}
}

func TestValidate_ReasonsKeepFieldOrder(t *testing.T) {
	req := models.PaymentRequest{} // every rule fails

	verr := Validate(req)
	require.NotNil(t, verr)
	require.Equal(t, []string{
		"Card number is required",
		"Expiry date must be in format MM/YYYY",
		"Currency is required",
		"Amount must be greater than 0",
		"CVV is required",
	}, verr.Reasons)
	require.Equal(t, "Card number is required", verr.Reason())
	require.Equal(t, "validation failed: Card number is required", verr.Error())
}

func TestValidate_Idempotent(t *testing.T) {
	req := validRequest()
	req.Currency = "usd"

	first := Validate(req)
	second := Validate(req)
	require.Equal(t, first, second)

	require.Nil(t, Validate(validRequest()))
	require.Nil(t, Validate(validRequest()))
}
