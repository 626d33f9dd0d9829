package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Role     string `gorm:"not null;default:customer" json:"role"`

	Orders []Order `json:"-"`
}
