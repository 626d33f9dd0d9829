package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `gorm:"index" json:"cartId"`
	Cart   Cart `json:"-"`

	FoodID uint `json:"foodId"`
	Food   Food `json:"-"`

	Qty       int   `json:"quantity"`
	UnitPrice int64 `json:"unitPrice"` // snapshot at add time
	Total     int64 `json:"total"`
}
