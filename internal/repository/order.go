package repository

import (
	"context"
	"time"

	"storefront-checkout/internal/model"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	CreateItems(ctx context.Context, items []*model.OrderItem) error
	// Delete is the compensating action for a failed item batch: the order
	// row and any items tied to it are removed in one transaction.
	Delete(ctx context.Context, orderID string) error
	SetPaymentRef(ctx context.Context, orderID, paymentRef string) error
	MarkPaid(ctx context.Context, orderID string) error
	MarkPaymentFailed(ctx context.Context, orderID string) error
	FindByIDForUser(ctx context.Context, orderID, userID string) (*model.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Order, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepoImpl) CreateItems(ctx context.Context, items []*model.OrderItem) error {
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *orderRepoImpl) Delete(ctx context.Context, orderID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", orderID).Delete(&model.Order{}).Error
	})
}

func (r *orderRepoImpl) SetPaymentRef(ctx context.Context, orderID, paymentRef string) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"payment_ref": paymentRef,
			"updated_at":  time.Now(),
		}).Error
}

func (r *orderRepoImpl) MarkPaid(ctx context.Context, orderID string) error {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ? AND status = ?", orderID, "pending").
		Updates(map[string]interface{}{
			"status":         "processing",
			"payment_status": "completed",
			"updated_at":     time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *orderRepoImpl) MarkPaymentFailed(ctx context.Context, orderID string) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"payment_status": "failed",
			"updated_at":     time.Now(),
		}).Error
}

func (r *orderRepoImpl) FindByIDForUser(ctx context.Context, orderID, userID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error

	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) ListByUser(ctx context.Context, userID string) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}
