package payment

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGatewayUnavailable means the provider rejected or never received
	// the call. Callers degrade to the simple payment path, never 500.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// ErrSignatureInvalid means the confirmation failed the HMAC check:
	// a forged or corrupted signature.
	ErrSignatureInvalid = errors.New("payment signature verification failed")
)

// VerificationError is any verification failure other than a clean
// signature mismatch. Kept distinct from ErrSignatureInvalid so logs can
// tell forgery from infrastructure trouble.
type VerificationError struct {
	Err error
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("error verifying payment: %v", e.Err)
}

func (e *VerificationError) Unwrap() error {
	return e.Err
}

// Intent is the gateway-side order record created before the user pays.
// Amount is in minor units (paise). Never persisted locally.
type Intent struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
}

// Confirmation is what the client posts back after the external payment
// flow completes. Opaque strings, untrusted until verified.
type Confirmation struct {
	PaymentID string
	OrderID   string
	Signature string
}

// Gateway wraps the external payment provider. Availability is resolved
// once at construction; the orchestrator queries the flag instead of
// branching on construction errors.
type Gateway interface {
	Available() bool
	Key() string
	CreateIntent(ctx context.Context, amount int64, currency, receipt string) (*Intent, error)
	VerifySignature(conf Confirmation) error
}
