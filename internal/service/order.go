package service

import (
	"context"

	"storefront-checkout/internal/model"
	"storefront-checkout/internal/repository"
)

type OrderService interface {
	ListForUser(ctx context.Context, userID string) ([]*model.Order, error)
	GetForUser(ctx context.Context, orderID, userID string) (*model.Order, error)
}

type orderServiceImpl struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderServiceImpl{
		orderRepo: orderRepo,
	}
}

func (s *orderServiceImpl) ListForUser(ctx context.Context, userID string) ([]*model.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

func (s *orderServiceImpl) GetForUser(ctx context.Context, orderID, userID string) (*model.Order, error) {
	return s.orderRepo.FindByIDForUser(ctx, orderID, userID)
}
