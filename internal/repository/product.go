package repository

import (
	"context"
	"errors"
	"time"

	"storefront-checkout/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInsufficientStock is returned when decrementing would take a product's
// inventory count below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

type ProductRepository interface {
	Seed(ctx context.Context) error
	FindByID(ctx context.Context, productID string) (*model.Product, error)
	FindMany(ctx context.Context, productIDs []string) ([]*model.Product, error)
	// DecrementInventory relies on the store's row-level atomicity of a
	// single guarded UPDATE, so concurrent settlements never drive the
	// count negative.
	DecrementInventory(ctx context.Context, productID string, quantity int) error
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

func (r *productRepoImpl) Seed(ctx context.Context) error {
	products := []model.Product{
		{ID: "supplement_omega3", Name: "Omega-3 Complex", Description: "Daily omega-3 supplement, 60 capsules", Price: 24.99, InventoryCount: 100},
		{ID: "supplement_vitd", Name: "Vitamin D3", Description: "High-potency vitamin D3, 90 capsules", Price: 34.99, InventoryCount: 100},
		{ID: "tea_calm", Name: "Calming Tea Blend", Description: "Herbal tea blend, 30 bags", Price: 12.50, SalePrice: 9.99, IsSale: true, InventoryCount: 200},
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error
}

func (r *productRepoImpl) FindByID(ctx context.Context, productID string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Where("id = ?", productID).
		First(&product).Error

	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepoImpl) FindMany(ctx context.Context, productIDs []string) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Where("id IN ?", productIDs).
		Find(&products).
		Error

	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) DecrementInventory(ctx context.Context, productID string, quantity int) error {
	result := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND inventory_count >= ?", productID, quantity).
		Updates(map[string]interface{}{
			"inventory_count": gorm.Expr("inventory_count - ?", quantity),
			"updated_at":      time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}
