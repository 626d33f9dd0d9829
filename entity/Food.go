package entity

import (
	"gorm.io/gorm"
)

type Food struct {
	gorm.Model
	Name        string  `gorm:"not null;index" json:"name"`
	Description string  `json:"description"`
	Price       int64   `json:"price"` // minor units
	Cuisine     string  `json:"cuisine"`
	Category    string  `json:"category"`
	Tags        string  `json:"tags"` // comma separated
	IsVeg       bool    `json:"isVeg"`
	SpicyLevel  int     `json:"spicyLevel"`
	Rating      float64 `json:"rating"`

	Restaurants []Restaurant `gorm:"many2many:restaurant_menus;" json:"-"`
}
