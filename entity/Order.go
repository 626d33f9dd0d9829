package entity

import (
	"gorm.io/gorm"
)

// Order is an immutable snapshot taken from a cart at checkout. Everything
// except Status and PaymentStatus is frozen at creation;
// Total == Subtotal + DeliveryFee + Tax always holds.
type Order struct {
	gorm.Model
	Reference string `gorm:"uniqueIndex" json:"reference"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	AreaID uint `json:"areaId"`
	Area   Area `json:"-"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`

	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Tax         int64 `json:"tax"`
	Total       int64 `json:"total"`

	DeliveryAddress string     `json:"deliveryAddress"`
	DeliveryCoords  Coordinate `gorm:"embedded;embeddedPrefix:delivery_" json:"deliveryCoords"`
	EtaMinutes      int        `json:"estimatedDeliveryTime"`

	PaymentMethod       string `gorm:"default:cash" json:"paymentMethod"`
	SpecialInstructions string `json:"specialInstructions"`

	Status        OrderStatus   `gorm:"index;default:pending" json:"status"`
	PaymentStatus PaymentStatus `gorm:"default:pending" json:"paymentStatus"`
}
