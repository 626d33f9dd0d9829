package repository

import (
	"context"
	"strings"

	"backend/entity"

	"gorm.io/gorm"
)

type AreaRepository struct {
	DB *gorm.DB
}

func NewAreaRepository(db *gorm.DB) *AreaRepository {
	return &AreaRepository{DB: db}
}

func (r *AreaRepository) FindByID(ctx context.Context, id uint) (*entity.Area, error) {
	var a entity.Area
	if err := r.DB.WithContext(ctx).Preload("PostalCodes").First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByName matches case-insensitively via the NameKey column, so the
// lookup is a plain indexed equality.
func (r *AreaRepository) FindByName(ctx context.Context, name string) (*entity.Area, error) {
	key := entity.NameKeyOf(name)
	var a entity.Area
	err := r.DB.WithContext(ctx).
		Preload("PostalCodes").
		Where("name_key = ?", key).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AreaRepository) FindByPostalCode(ctx context.Context, code string) (*entity.Area, error) {
	var a entity.Area
	err := r.DB.WithContext(ctx).
		Preload("PostalCodes").
		Joins("JOIN area_postal_codes apc ON apc.area_id = areas.id").
		Where("apc.code = ?", strings.TrimSpace(code)).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AreaRepository) ListActive(ctx context.Context) ([]entity.Area, error) {
	var out []entity.Area
	err := r.DB.WithContext(ctx).
		Preload("PostalCodes").
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&out).Error
	return out, err
}
