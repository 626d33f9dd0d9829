package entity

import (
	"strings"

	"gorm.io/gorm"
)

// Defaults applied by the delivery policy when an area leaves a field unset.
// Money values are minor units (satang/paise), distances km, times minutes.
const (
	DefaultBaseFee         int64   = 3000
	DefaultPerKmFee        int64   = 500
	DefaultServiceRadiusKm float64 = 15
	DefaultEtaMinutes      int     = 40
)

type Area struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	NameKey string `gorm:"uniqueIndex" json:"-"` // lowercase match key, set on save
	City    string `json:"city"`

	PostalCodes []AreaPostalCode `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"postalCodes"`

	BaseFee         int64   `json:"baseFee"`
	PerKmFee        int64   `json:"perKmFee"`
	ServiceRadiusKm float64 `json:"serviceRadius"`
	EtaMinutes      int     `json:"estimatedDeliveryTimeMinutes"`

	Coords Coordinate `gorm:"embedded;embeddedPrefix:coord_" json:"coords"`

	IsActive bool `gorm:"default:true" json:"isActive"`

	Restaurants []Restaurant `gorm:"many2many:restaurant_delivery_areas;" json:"-"`
}

// NameKeyOf normalizes an area name for case-insensitive matching.
func NameKeyOf(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// BeforeSave keeps NameKey in sync so case-insensitive lookups are a plain
// equality on an indexed column.
func (a *Area) BeforeSave(tx *gorm.DB) error {
	a.NameKey = NameKeyOf(a.Name)
	return nil
}

type AreaPostalCode struct {
	ID     uint   `gorm:"primaryKey" json:"-"`
	AreaID uint   `gorm:"index" json:"-"`
	Code   string `gorm:"index" json:"code"`
}
