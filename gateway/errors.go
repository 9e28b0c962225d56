package gateway

import "fmt"

// Terminal non-success conditions. The orchestrator returns exactly one of
// these per failed request; nothing is stored on any of them.
var (
	ErrNotFound        = fmt.Errorf("payment not found")
	ErrBankUnavailable = fmt.Errorf("bank service unavailable")
	ErrBankProcessing  = fmt.Errorf("bank processing failed")
)

// ErrConflict signals an insert under an already-used payment id. Ids are
// freshly generated per request, so hitting this means a bug or a replayed
// write, not a business outcome.
var ErrConflict = fmt.Errorf("conflict")

// ValidationError carries every failed rule in field order. The first reason
// is the stable message callers surface to clients.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	if len(e.Reasons) == 0 {
		return "validation failed"
	}
	return "validation failed: " + e.Reasons[0]
}

// Reason returns the first-violated rule's message verbatim.
func (e *ValidationError) Reason() string {
	if len(e.Reasons) == 0 {
		return ""
	}
	return e.Reasons[0]
}
