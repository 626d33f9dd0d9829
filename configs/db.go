package configs

import (
	"backend/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func ConnectDB(source string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(source), &gorm.Config{})
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Area{}, &entity.AreaPostalCode{},
		&entity.Restaurant{}, &entity.Food{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	)
}
