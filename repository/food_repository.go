package repository

import (
	"context"
	"strings"

	"backend/entity"

	"gorm.io/gorm"
)

type FoodRepository struct {
	DB *gorm.DB
}

func NewFoodRepository(db *gorm.DB) *FoodRepository {
	return &FoodRepository{DB: db}
}

func (r *FoodRepository) FindByID(ctx context.Context, id uint) (*entity.Food, error) {
	var f entity.Food
	if err := r.DB.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FoodRepository) FindByIDs(ctx context.Context, ids []uint) ([]entity.Food, error) {
	if len(ids) == 0 {
		return []entity.Food{}, nil
	}
	var out []entity.Food
	err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error
	return out, err
}

// FoodQuery is the food listing/search filter. A nil IDs slice means
// unrestricted; a non-nil slice restricts results to those ids (area
// scoping).
type FoodQuery struct {
	Text     string
	Cuisine  string
	PriceMin *int64
	PriceMax *int64
	IDs      []uint
	Page     int
	Limit    int
}

func (r *FoodRepository) Search(ctx context.Context, q FoodQuery) ([]entity.Food, int64, error) {
	db := r.DB.WithContext(ctx).Model(&entity.Food{})

	if q.Text != "" {
		like := "%" + strings.ToLower(q.Text) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(cuisine) LIKE ?", like, like, like)
	}
	if q.Cuisine != "" {
		db = db.Where("LOWER(cuisine) = ?", strings.ToLower(q.Cuisine))
	}
	if q.PriceMin != nil {
		db = db.Where("price >= ?", *q.PriceMin)
	}
	if q.PriceMax != nil {
		db = db.Where("price <= ?", *q.PriceMax)
	}
	if q.IDs != nil {
		db = db.Where("id IN ?", q.IDs)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := q.Page
	if page <= 0 {
		page = 1
	}
	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var out []entity.Food
	err := db.Order("id ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&out).Error
	return out, total, err
}
