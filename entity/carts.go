package entity

import (
	"gorm.io/gorm"
)

// Cart is one-per-user. RestaurantID/AreaID of 0 mean "not selected yet".
// Subtotal and Tax are recomputed on every mutation; the delivery fee and
// grand total are materialized at read/checkout time.
type Cart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	RestaurantID uint `json:"restaurantId"`
	AreaID       uint `json:"areaId"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`

	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
}
