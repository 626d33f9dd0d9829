package repository

import (
	"context"

	"backend/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) FindAll(ctx context.Context) ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.WithContext(ctx).
		Preload("Menu").
		Order("name ASC").
		Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.WithContext(ctx).
		Preload("Menu").
		Preload("DeliveryAreas").
		First(&rest, id).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

// FindServingArea resolves the restaurant→area join explicitly: every
// restaurant whose delivery-area set contains areaID, menus preloaded.
func (r *RestaurantRepository) FindServingArea(ctx context.Context, areaID uint) ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.WithContext(ctx).
		Joins("JOIN restaurant_delivery_areas rda ON rda.restaurant_id = restaurants.id").
		Where("rda.area_id = ?", areaID).
		Preload("Menu").
		Order("restaurants.name ASC").
		Find(&rests).Error
	return rests, err
}

// MenuContains checks food membership on the join table without loading the
// whole menu.
func (r *RestaurantRepository) MenuContains(ctx context.Context, restaurantID, foodID uint) (bool, error) {
	var cnt int64
	err := r.DB.WithContext(ctx).
		Table("restaurant_menus").
		Where("restaurant_id = ? AND food_id = ?", restaurantID, foodID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *RestaurantRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var cnt int64
	err := r.DB.WithContext(ctx).
		Model(&entity.Restaurant{}).
		Where("id = ?", id).
		Count(&cnt).Error
	return cnt > 0, err
}
