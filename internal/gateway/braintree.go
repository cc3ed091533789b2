package gateway

import (
	"context"

	"storefront-checkout/internal/config"

	"github.com/braintree-go/braintree-go"
)

type braintreeGateway struct {
	bt *braintree.Braintree
}

// NewBraintreeGateway returns a gateway charging through a Braintree sale
// transaction. Braintree has no pending-action leg on server-side sales, so
// it only ever reports succeeded or failed.
func NewBraintreeGateway(cfg *config.Braintree) PaymentGateway {
	env := braintree.Sandbox
	if cfg.Environment == "production" {
		env = braintree.Production
	}

	return &braintreeGateway{
		bt: braintree.New(env, cfg.MerchantID, cfg.PublicKey, cfg.PrivateKey),
	}
}

func (g *braintreeGateway) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	txReq := &braintree.TransactionRequest{
		Type:    "sale",
		Amount:  braintree.NewDecimal(req.AmountMinor, 2),
		OrderId: req.OrderID,
		Options: &braintree.TransactionOptions{
			SubmitForSettlement: true,
		},
	}
	if req.PaymentMethodID != "" {
		txReq.PaymentMethodToken = req.PaymentMethodID
	}

	tx, err := g.bt.Transaction().Create(ctx, txReq)
	if err != nil {
		return nil, &GatewayError{Message: err.Error()}
	}

	switch tx.Status {
	case braintree.TransactionStatusProcessorDeclined,
		braintree.TransactionStatusGatewayRejected,
		braintree.TransactionStatusFailed:
		return &ChargeResult{
			ID:      tx.Id,
			Status:  StatusFailed,
			Message: tx.ProcessorResponseText,
		}, nil
	default:
		return &ChargeResult{ID: tx.Id, Status: StatusSucceeded}, nil
	}
}
