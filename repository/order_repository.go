package repository

import (
	"context"

	"backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(ctx context.Context, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.WithContext(ctx).
		Preload("Items").
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListForUser returns the user's orders newest-first, optionally filtered by
// status.
func (r *OrderRepository) ListForUser(ctx context.Context, userID uint, status *entity.OrderStatus, limit int) ([]entity.Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	db := r.DB.WithContext(ctx).
		Where("user_id = ?", userID)
	if status != nil {
		db = db.Where("status = ?", *status)
	}
	var out []entity.Order
	err := db.Preload("Items").
		Order("id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// UpdateStatusGuard performs the conditional transition UPDATE. False with
// a nil error means the row was no longer in `from`, somebody else moved
// it first.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *OrderRepository) UpdatePaymentStatus(tx *gorm.DB, orderID uint, to entity.PaymentStatus) error {
	return tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("payment_status", to).Error
}
