package service

import (
	"context"
	"fmt"

	"storefront-checkout/internal/model"
	"storefront-checkout/internal/repository"
)

type CartService interface {
	GetItems(ctx context.Context, userID string) ([]*model.CartItem, error)
	AddItem(ctx context.Context, userID, productID string, quantity int) error
	RemoveItem(ctx context.Context, userID, productID string) error
}

type cartServiceImpl struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartServiceImpl{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (s *cartServiceImpl) GetItems(ctx context.Context, userID string) ([]*model.CartItem, error) {
	return s.cartRepo.GetItems(ctx, userID)
}

func (s *cartServiceImpl) AddItem(ctx context.Context, userID, productID string, quantity int) error {
	if quantity <= 0 {
		return &ValidationError{Fields: []string{"quantity"}}
	}

	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return fmt.Errorf("product lookup: %w", err)
	}

	return s.cartRepo.AddItem(ctx, &model.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	})
}

func (s *cartServiceImpl) RemoveItem(ctx context.Context, userID, productID string) error {
	return s.cartRepo.RemoveItem(ctx, userID, productID)
}
