package gateway

import (
	"context"
	"errors"

	"storefront-checkout/internal/config"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

type stripeGateway struct{}

// NewStripeGateway configures the Stripe SDK with the secret key and returns
// a gateway charging via manual-confirmation payment intents.
func NewStripeGateway(cfg *config.Stripe) PaymentGateway {
	stripe.Key = cfg.SecretKey
	return &stripeGateway{}
}

func (g *stripeGateway) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(req.AmountMinor),
		Currency:           stripe.String(req.Currency),
		ConfirmationMethod: stripe.String(string(stripe.PaymentIntentConfirmationMethodManual)),
		Confirm:            stripe.Bool(true),
		ReturnURL:          stripe.String(req.ReturnURL),
		Metadata: map[string]string{
			"order_id": req.OrderID,
			"user_id":  req.UserID,
		},
	}
	params.Context = ctx
	if req.PaymentMethodID != "" {
		params.PaymentMethod = stripe.String(req.PaymentMethodID)
	}
	// One charge attempt per order, provider-side.
	params.SetIdempotencyKey(req.OrderID)

	pi, err := paymentintent.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			// Card declines come back as errors carrying the attempt id.
			result := &ChargeResult{
				Status:  StatusFailed,
				Message: stripeErr.Msg,
			}
			if stripeErr.PaymentIntent != nil {
				result.ID = stripeErr.PaymentIntent.ID
			}
			return result, nil
		}
		return nil, &GatewayError{Message: err.Error()}
	}

	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded:
		return &ChargeResult{ID: pi.ID, Status: StatusSucceeded}, nil
	case stripe.PaymentIntentStatusRequiresAction:
		return &ChargeResult{
			ID:           pi.ID,
			Status:       StatusRequiresAction,
			ClientSecret: pi.ClientSecret,
		}, nil
	default:
		return &ChargeResult{
			ID:      pi.ID,
			Status:  StatusFailed,
			Message: "payment was not completed (" + string(pi.Status) + ")",
		}, nil
	}
}
