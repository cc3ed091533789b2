package service

import (
	"context"

	"storefront-checkout/internal/dto"
	"storefront-checkout/internal/gateway"
	"storefront-checkout/internal/model"
)

// MockCartRepository implements repository.CartRepository for testing
type MockCartRepository struct {
	Items      []*model.CartItem
	GetErr     error
	ClearErr   error
	ClearCalls []string // user ids passed to Clear
}

func (m *MockCartRepository) GetItems(_ context.Context, _ string) ([]*model.CartItem, error) {
	return m.Items, m.GetErr
}

func (m *MockCartRepository) AddItem(_ context.Context, _ *model.CartItem) error {
	return nil
}

func (m *MockCartRepository) RemoveItem(_ context.Context, _, _ string) error {
	return nil
}

func (m *MockCartRepository) Clear(_ context.Context, userID string) error {
	m.ClearCalls = append(m.ClearCalls, userID)
	return m.ClearErr
}

// MockOrderRepository implements repository.OrderRepository for testing
type MockOrderRepository struct {
	CreateErr      error
	CreateItemsErr error

	CreatedOrders []*model.Order
	CreatedItems  []*model.OrderItem
	DeletedIDs    []string
	PaymentRefs   map[string]string
	PaidIDs       []string
	FailedIDs     []string
}

func (m *MockOrderRepository) Create(_ context.Context, order *model.Order) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.CreatedOrders = append(m.CreatedOrders, order)
	return nil
}

func (m *MockOrderRepository) CreateItems(_ context.Context, items []*model.OrderItem) error {
	if m.CreateItemsErr != nil {
		return m.CreateItemsErr
	}
	m.CreatedItems = append(m.CreatedItems, items...)
	return nil
}

func (m *MockOrderRepository) Delete(_ context.Context, orderID string) error {
	m.DeletedIDs = append(m.DeletedIDs, orderID)
	return nil
}

func (m *MockOrderRepository) SetPaymentRef(_ context.Context, orderID, paymentRef string) error {
	if m.PaymentRefs == nil {
		m.PaymentRefs = make(map[string]string)
	}
	m.PaymentRefs[orderID] = paymentRef
	return nil
}

func (m *MockOrderRepository) MarkPaid(_ context.Context, orderID string) error {
	m.PaidIDs = append(m.PaidIDs, orderID)
	return nil
}

func (m *MockOrderRepository) MarkPaymentFailed(_ context.Context, orderID string) error {
	m.FailedIDs = append(m.FailedIDs, orderID)
	return nil
}

func (m *MockOrderRepository) FindByIDForUser(_ context.Context, _, _ string) (*model.Order, error) {
	return nil, nil
}

func (m *MockOrderRepository) ListByUser(_ context.Context, _ string) ([]*model.Order, error) {
	return nil, nil
}

// MockProductRepository implements repository.ProductRepository for testing
type MockProductRepository struct {
	Products     map[string]*model.Product
	DecrementErr error
	Decrements   map[string]int
}

func (m *MockProductRepository) Seed(_ context.Context) error {
	return nil
}

func (m *MockProductRepository) FindByID(_ context.Context, productID string) (*model.Product, error) {
	return m.Products[productID], nil
}

func (m *MockProductRepository) FindMany(_ context.Context, productIDs []string) ([]*model.Product, error) {
	var products []*model.Product
	for _, id := range productIDs {
		if p, ok := m.Products[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

func (m *MockProductRepository) DecrementInventory(_ context.Context, productID string, quantity int) error {
	if m.DecrementErr != nil {
		return m.DecrementErr
	}
	if m.Decrements == nil {
		m.Decrements = make(map[string]int)
	}
	m.Decrements[productID] += quantity
	return nil
}

// MockGateway implements gateway.PaymentGateway for testing
type MockGateway struct {
	Result   *gateway.ChargeResult
	Err      error
	Requests []gateway.ChargeRequest
}

func (m *MockGateway) Charge(_ context.Context, req gateway.ChargeRequest) (*gateway.ChargeResult, error) {
	m.Requests = append(m.Requests, req)
	return m.Result, m.Err
}

// MockNotifier implements NotificationService for testing
type MockNotifier struct {
	ConfirmedOrders []string
	NotifyErr       error
}

func (m *MockNotifier) Notify(_ context.Context, _, _, _, _ string, _ NotifyOptions) (*model.Notification, error) {
	return &model.Notification{}, m.NotifyErr
}

func (m *MockNotifier) OrderConfirmed(_ context.Context, _, orderID string) error {
	if m.NotifyErr != nil {
		return m.NotifyErr
	}
	m.ConfirmedOrders = append(m.ConfirmedOrders, orderID)
	return nil
}

func (m *MockNotifier) OrderShipped(_ context.Context, _, _, _ string) error {
	return m.NotifyErr
}

func (m *MockNotifier) PaymentSucceeded(_ context.Context, _ string, _ float64) error {
	return m.NotifyErr
}

func (m *MockNotifier) SystemAlert(_ context.Context, _ SystemAlert) (*dto.SystemAlertResponse, error) {
	return nil, m.NotifyErr
}

func (m *MockNotifier) ListForUser(_ context.Context, _ string) ([]*model.Notification, error) {
	return nil, nil
}
