package gateway

import "context"

type ChargeStatus string

const (
	StatusSucceeded      ChargeStatus = "succeeded"
	StatusRequiresAction ChargeStatus = "requires_action"
	StatusFailed         ChargeStatus = "failed"
)

// ChargeRequest carries the amount in minor currency units plus correlation
// metadata so a gateway-side failure can always be traced back to exactly
// one order. OrderID doubles as the idempotency key where the provider
// supports one.
type ChargeRequest struct {
	AmountMinor     int64
	Currency        string
	PaymentMethodID string
	OrderID         string
	UserID          string
	ReturnURL       string
}

type ChargeResult struct {
	ID     string
	Status ChargeStatus
	// ClientSecret is the continuation token handed to the client when the
	// charge requires further user action.
	ClientSecret string
	// Message carries the processor's human-readable text on failure.
	Message string
}

// PaymentGateway is the single seam to the external card processor. The call
// is never retried here: retrying an ambiguous-outcome charge risks double
// billing.
type PaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// GatewayError normalizes every provider-specific error shape so callers
// never branch on provider types.
type GatewayError struct {
	Message string
}

func (e *GatewayError) Error() string {
	return e.Message
}
