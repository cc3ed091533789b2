package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"storefront-checkout/internal/config"
	"storefront-checkout/internal/dto"
	"storefront-checkout/internal/gateway"
	"storefront-checkout/internal/model"
	"storefront-checkout/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CheckoutService interface {
	Checkout(ctx context.Context, userID string, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
}

type checkoutServiceImpl struct {
	cartRepo    repository.CartRepository
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	gw          gateway.PaymentGateway
	notifier    NotificationService

	baseURL  string
	currency string
	cfg      config.Checkout
}

func NewCheckoutService(
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	gw gateway.PaymentGateway,
	notifier NotificationService,
	baseURL string,
	currency string,
	cfg config.Checkout,
) CheckoutService {
	return &checkoutServiceImpl{
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		gw:          gw,
		notifier:    notifier,
		baseURL:     baseURL,
		currency:    currency,
		cfg:         cfg,
	}
}

// pricing holds the computed totals for one checkout invocation, priced at
// settlement time against the current product records.
type pricing struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

func (s *checkoutServiceImpl) Checkout(ctx context.Context, userID string, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if err := validateCheckoutRequest(req); err != nil {
		return nil, err
	}

	cartItems, err := s.cartRepo.GetItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(cartItems) == 0 {
		return nil, ErrEmptyCart
	}

	productIDs := make([]string, len(cartItems))
	for i, item := range cartItems {
		productIDs[i] = item.ProductID
	}
	products, err := s.productRepo.FindMany(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	if len(products) != len(cartItems) {
		return nil, fmt.Errorf("some cart products no longer exist")
	}

	productByID := make(map[string]*model.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	totals := s.price(cartItems, productByID)

	order, err := s.createOrder(ctx, userID, req, totals)
	if err != nil {
		return nil, err
	}

	if err := s.createOrderItems(ctx, order.ID, cartItems, productByID); err != nil {
		// Compensating delete: the ledger write and the item batch are
		// separately failable steps, so undo the order explicitly rather
		// than leaving an empty shell behind.
		if delErr := s.orderRepo.Delete(ctx, order.ID); delErr != nil {
			slog.Error("compensating order delete failed",
				slog.String("order_id", order.ID), slog.String("error", delErr.Error()))
		}
		return nil, fmt.Errorf("%w: %v", ErrOrderItemsCreation, err)
	}

	result, err := s.gw.Charge(ctx, gateway.ChargeRequest{
		AmountMinor:     totals.Total.Mul(decimal.NewFromInt(100)).Round(0).IntPart(),
		Currency:        s.currency,
		PaymentMethodID: req.PaymentMethodID,
		OrderID:         order.ID,
		UserID:          userID,
		ReturnURL:       fmt.Sprintf("%s/checkout/success?order_id=%s", s.baseURL, order.ID),
	})
	if err != nil {
		// Transport-level gateway failure: the order stays behind as a
		// failed audit record, never deleted.
		if markErr := s.orderRepo.MarkPaymentFailed(ctx, order.ID); markErr != nil {
			slog.Error("mark payment failed", slog.String("order_id", order.ID),
				slog.String("error", markErr.Error()))
		}
		return nil, fmt.Errorf("payment gateway: %w", err)
	}

	// Keep the gateway's attempt reference regardless of outcome, for
	// auditability and status polling.
	if result.ID != "" {
		if refErr := s.orderRepo.SetPaymentRef(ctx, order.ID, result.ID); refErr != nil {
			slog.Error("persist payment ref", slog.String("order_id", order.ID),
				slog.String("error", refErr.Error()))
		}
	}

	switch result.Status {
	case gateway.StatusSucceeded:
		s.settle(ctx, userID, order.ID, cartItems, totals)
		return &dto.CheckoutResponse{
			Success: true,
			OrderID: order.ID,
			PaymentIntent: &dto.PaymentIntent{
				ID:     result.ID,
				Status: string(gateway.StatusSucceeded),
			},
		}, nil

	case gateway.StatusRequiresAction:
		// Order stays pending/pending; the cart and inventory are untouched
		// until the gateway confirms the charge.
		return &dto.CheckoutResponse{
			RequiresAction: true,
			OrderID:        order.ID,
			PaymentIntent: &dto.PaymentIntent{
				ID:           result.ID,
				ClientSecret: result.ClientSecret,
			},
		}, nil

	default:
		if markErr := s.orderRepo.MarkPaymentFailed(ctx, order.ID); markErr != nil {
			slog.Error("mark payment failed", slog.String("order_id", order.ID),
				slog.String("error", markErr.Error()))
		}
		return nil, &PaymentDeclinedError{Message: result.Message}
	}
}

func (s *checkoutServiceImpl) price(items []*model.CartItem, products map[string]*model.Product) pricing {
	subtotal := decimal.Zero
	for _, item := range items {
		unit := decimal.NewFromFloat(products[item.ProductID].EffectivePrice())
		subtotal = subtotal.Add(unit.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	subtotal = subtotal.Round(2)

	tax := subtotal.Mul(decimal.NewFromFloat(s.cfg.TaxRate)).Round(2)

	// Strict inequality: a subtotal of exactly the threshold still pays
	// shipping.
	shipping := decimal.NewFromFloat(s.cfg.ShippingFee)
	if subtotal.GreaterThan(decimal.NewFromFloat(s.cfg.FreeShippingOver)) {
		shipping = decimal.Zero
	}

	total := subtotal.Add(tax).Add(shipping).Round(2)

	return pricing{Subtotal: subtotal, Tax: tax, Shipping: shipping, Total: total}
}

func (s *checkoutServiceImpl) createOrder(ctx context.Context, userID string, req *dto.CheckoutRequest, totals pricing) (*model.Order, error) {
	shippingJSON, err := json.Marshal(req.ShippingAddress)
	if err != nil {
		return nil, fmt.Errorf("marshal shipping address: %w", err)
	}
	billingJSON, err := json.Marshal(req.BillingAddress)
	if err != nil {
		return nil, fmt.Errorf("marshal billing address: %w", err)
	}

	order := &model.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Status:          "pending",
		PaymentStatus:   "pending",
		Subtotal:        totals.Subtotal.InexactFloat64(),
		TaxAmount:       totals.Tax.InexactFloat64(),
		ShippingAmount:  totals.Shipping.InexactFloat64(),
		TotalAmount:     totals.Total.InexactFloat64(),
		ShippingAddress: string(shippingJSON),
		BillingAddress:  string(billingJSON),
		PaymentMethodID: req.PaymentMethodID,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderCreation, err)
	}

	return order, nil
}

func (s *checkoutServiceImpl) createOrderItems(ctx context.Context, orderID string, cartItems []*model.CartItem, products map[string]*model.Product) error {
	orderItems := make([]*model.OrderItem, len(cartItems))
	for i, item := range cartItems {
		product := products[item.ProductID]
		unit := decimal.NewFromFloat(product.EffectivePrice())
		lineTotal := unit.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)

		snapshot, err := json.Marshal(product)
		if err != nil {
			return fmt.Errorf("marshal product snapshot: %w", err)
		}

		orderItems[i] = &model.OrderItem{
			OrderID:         orderID,
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			UnitPrice:       unit.InexactFloat64(),
			TotalPrice:      lineTotal.InexactFloat64(),
			ProductSnapshot: string(snapshot),
		}
	}

	return s.orderRepo.CreateItems(ctx, orderItems)
}

// settle runs the post-charge commit. Money movement is authoritative once
// the gateway reports success, so every failure in here is logged and the
// order is still reported as settled.
func (s *checkoutServiceImpl) settle(ctx context.Context, userID, orderID string, cartItems []*model.CartItem, totals pricing) {
	if err := s.orderRepo.MarkPaid(ctx, orderID); err != nil {
		slog.Error("mark order paid", slog.String("order_id", orderID),
			slog.String("error", err.Error()))
	}

	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		slog.Error("clear cart after settlement", slog.String("user_id", userID),
			slog.String("error", err.Error()))
	}

	// Best-effort per item: stock drift is acceptable, double-charging
	// is not.
	for _, item := range cartItems {
		if err := s.productRepo.DecrementInventory(ctx, item.ProductID, item.Quantity); err != nil {
			slog.Error("decrement inventory", slog.String("product_id", item.ProductID),
				slog.Int("quantity", item.Quantity), slog.String("error", err.Error()))
		}
	}

	if err := s.notifier.OrderConfirmed(ctx, userID, orderID); err != nil {
		slog.Error("order confirmed notification", slog.String("order_id", orderID),
			slog.String("error", err.Error()))
	}

	slog.Info("order settled",
		slog.String("order_id", orderID),
		slog.String("user_id", userID),
		slog.String("total", totals.Total.StringFixed(2)))
}

func validateCheckoutRequest(req *dto.CheckoutRequest) error {
	var fields []string
	fields = append(fields, missingAddressFields("shippingAddress", &req.ShippingAddress)...)
	fields = append(fields, missingAddressFields("billingAddress", &req.BillingAddress)...)

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func missingAddressFields(prefix string, addr *dto.Address) []string {
	required := []struct {
		name  string
		value string
	}{
		{"name", addr.Name},
		{"line1", addr.Line1},
		{"city", addr.City},
		{"state", addr.State},
		{"postalCode", addr.PostalCode},
		{"country", addr.Country},
	}

	var missing []string
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, prefix+"."+f.name)
		}
	}
	return missing
}
