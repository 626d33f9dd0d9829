package services

import (
	"fmt"
	"testing"

	"backend/configs"
	"backend/entity"
	"backend/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway in-memory database. The DSN is keyed by test
// name so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// fixture is a small seeded catalog: one covered area, one area nobody
// serves, two restaurants in the covered area with overlapping menus.
type fixture struct {
	db *gorm.DB

	area      entity.Area // Jaipur Downtown, served by both restaurants
	emptyArea entity.Area // Delhi Central, no coverage

	rest  entity.Restaurant
	rest2 entity.Restaurant

	dosa    entity.Food // on rest's menu only
	paneer  entity.Food // on both menus
	chicken entity.Food // on rest2's menu only
}

func seedCatalog(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()
	f := &fixture{db: db}

	f.dosa = entity.Food{Name: "Masala Dosa", Price: 10000, Cuisine: "South Indian", IsVeg: true}
	f.paneer = entity.Food{Name: "Paneer Tikka", Price: 15000, Cuisine: "North Indian", IsVeg: true}
	f.chicken = entity.Food{Name: "Butter Chicken", Price: 20000, Cuisine: "North Indian"}
	for _, food := range []*entity.Food{&f.dosa, &f.paneer, &f.chicken} {
		if err := db.Create(food).Error; err != nil {
			t.Fatalf("seed food: %v", err)
		}
	}

	f.area = entity.Area{
		Name: "Jaipur Downtown", City: "Jaipur",
		BaseFee: 3000, PerKmFee: 600, ServiceRadiusKm: 8, EtaMinutes: 35,
		Coords:      entity.Coordinate{Lat: 26.9124, Lng: 75.7873},
		IsActive:    true,
		PostalCodes: []entity.AreaPostalCode{{Code: "302001"}, {Code: "302002"}},
	}
	f.emptyArea = entity.Area{
		Name: "Delhi Central", City: "Delhi",
		BaseFee: 3500, PerKmFee: 650, ServiceRadiusKm: 10, EtaMinutes: 38,
		Coords:      entity.Coordinate{Lat: 28.6139, Lng: 77.2090},
		IsActive:    true,
		PostalCodes: []entity.AreaPostalCode{{Code: "110001"}},
	}
	for _, a := range []*entity.Area{&f.area, &f.emptyArea} {
		if err := db.Create(a).Error; err != nil {
			t.Fatalf("seed area: %v", err)
		}
	}

	f.rest = entity.Restaurant{
		Name: "South Indian Paradise", Location: "123 Raja Street, Jaipur",
		Coords: entity.Coordinate{Lat: 26.9150, Lng: 75.7900}, IsOpen: true,
		Menu:          []entity.Food{f.dosa, f.paneer},
		DeliveryAreas: []entity.Area{f.area},
	}
	f.rest2 = entity.Restaurant{
		Name: "North Indian Kitchen", Location: "456 Ashok Road, Jaipur",
		Coords: entity.Coordinate{Lat: 26.9000, Lng: 75.7950}, IsOpen: true,
		Menu:          []entity.Food{f.paneer, f.chicken},
		DeliveryAreas: []entity.Area{f.area},
	}
	for _, r := range []*entity.Restaurant{&f.rest, &f.rest2} {
		if err := db.Create(r).Error; err != nil {
			t.Fatalf("seed restaurant: %v", err)
		}
	}

	return f
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db,
		repository.NewCartRepository(db),
		repository.NewFoodRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewAreaRepository(db),
	)
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewAreaRepository(db),
	)
}

func newAreaService(db *gorm.DB) *AreaService {
	return NewAreaService(repository.NewAreaRepository(db), repository.NewRestaurantRepository(db))
}
