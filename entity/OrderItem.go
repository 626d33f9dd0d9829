package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	FoodID uint `json:"foodId"`
	Food   Food `json:"-"`

	Qty       int   `json:"quantity"`
	UnitPrice int64 `json:"unitPrice"`
	Total     int64 `json:"total"`
}
