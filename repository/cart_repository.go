package repository

import (
	"context"
	"errors"

	"backend/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// GetCartWithItems returns the user's cart, or an empty in-memory cart when
// none exists yet so callers can render it without a 404.
func (r *CartRepository) GetCartWithItems(ctx context.Context, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.id ASC") }).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID, Items: []entity.CartItem{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByUser is the strict variant used inside mutations: record-not-found
// propagates.
func (r *CartRepository) GetByUser(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.id ASC") }).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) GetOrCreate(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := tx.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Save persists the cart row itself. Associations are omitted on purpose:
// item rows are managed by the explicit item operations below, and a stale
// preloaded Items slice must never be written back.
func (r *CartRepository) Save(tx *gorm.DB, c *entity.Cart) error {
	return tx.Omit(clause.Associations).Save(c).Error
}

// UpsertItem merges by food: an existing line gets its quantity bumped and
// keeps the original price snapshot; otherwise the row is appended as-is.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND food_id = ?", cartID, row.FoodID).First(&exist).Error
	if err == nil {
		exist.Qty += row.Qty
		exist.Total = int64(exist.Qty) * exist.UnitPrice
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

func (r *CartRepository) UpdateQty(tx *gorm.DB, cartID, foodID uint, qty int) (int64, error) {
	res := tx.Model(&entity.CartItem{}).
		Where("cart_id = ? AND food_id = ?", cartID, foodID).
		Updates(map[string]any{
			"qty":   qty,
			"total": gorm.Expr("unit_price * ?", qty),
		})
	return res.RowsAffected, res.Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, cartID, foodID uint) error {
	return tx.Where("cart_id = ? AND food_id = ?", cartID, foodID).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) DeleteItems(tx *gorm.DB, cartID uint) error {
	return tx.Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) SumItems(tx *gorm.DB, cartID uint) (int64, error) {
	var row struct{ Subtotal int64 }
	err := tx.Model(&entity.CartItem{}).
		Select("COALESCE(SUM(total), 0) AS subtotal").
		Where("cart_id = ?", cartID).
		Scan(&row).Error
	return row.Subtotal, err
}

// ResetCart empties the cart and drops the restaurant/area selection, ready
// for the next order.
func (r *CartRepository) ResetCart(tx *gorm.DB, cartID uint) error {
	if err := r.DeleteItems(tx, cartID); err != nil {
		return err
	}
	return tx.Model(&entity.Cart{}).
		Where("id = ?", cartID).
		Updates(map[string]any{
			"restaurant_id": 0,
			"area_id":       0,
			"subtotal":      0,
			"tax":           0,
		}).Error
}
