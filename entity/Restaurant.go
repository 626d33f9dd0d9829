package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string  `gorm:"not null;index" json:"name"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`

	Coords Coordinate `gorm:"embedded;embeddedPrefix:coord_" json:"coords"`
	IsOpen bool       `gorm:"default:true" json:"isOpen"`

	Menu          []Food `gorm:"many2many:restaurant_menus;" json:"menu,omitempty"`
	DeliveryAreas []Area `gorm:"many2many:restaurant_delivery_areas;" json:"-"`

	Orders []Order `json:"-"`
}
