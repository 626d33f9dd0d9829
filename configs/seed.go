package configs

import (
	"log"

	"backend/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAdmin(db *gorm.DB) error {
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedAreas loads the starter delivery areas. Fees are minor units.
func SeedAreas(db *gorm.DB) error {
	areas := []entity.Area{
		{Name: "Jaipur Downtown", City: "Jaipur", BaseFee: 3000, PerKmFee: 600, ServiceRadiusKm: 8, EtaMinutes: 35,
			Coords: entity.Coordinate{Lat: 26.9124, Lng: 75.7873},
			PostalCodes: postalCodes("302001", "302002", "302003")},
		{Name: "Jaipur Suburbs", City: "Jaipur", BaseFee: 4000, PerKmFee: 700, ServiceRadiusKm: 12, EtaMinutes: 45,
			Coords: entity.Coordinate{Lat: 26.8842, Lng: 75.8218},
			PostalCodes: postalCodes("302004", "302005", "302006")},
		{Name: "Delhi Central", City: "Delhi", BaseFee: 3500, PerKmFee: 650, ServiceRadiusKm: 10, EtaMinutes: 38,
			Coords: entity.Coordinate{Lat: 28.6139, Lng: 77.2090},
			PostalCodes: postalCodes("110001", "110002", "110003")},
		{Name: "Delhi South", City: "Delhi", BaseFee: 4500, PerKmFee: 700, ServiceRadiusKm: 15, EtaMinutes: 50,
			Coords: entity.Coordinate{Lat: 28.5244, Lng: 77.1855},
			PostalCodes: postalCodes("110016", "110017", "110018")},
		{Name: "Mumbai Central", City: "Mumbai", BaseFee: 4000, PerKmFee: 800, ServiceRadiusKm: 8, EtaMinutes: 40,
			Coords: entity.Coordinate{Lat: 19.0760, Lng: 72.8777},
			PostalCodes: postalCodes("400001", "400002", "400003")},
		{Name: "Mumbai Suburbs", City: "Mumbai", BaseFee: 5000, PerKmFee: 850, ServiceRadiusKm: 20, EtaMinutes: 55,
			Coords: entity.Coordinate{Lat: 19.0596, Lng: 72.8295},
			PostalCodes: postalCodes("400101", "400102", "400103")},
		{Name: "Bangalore Downtown", City: "Bangalore", BaseFee: 3500, PerKmFee: 550, ServiceRadiusKm: 9, EtaMinutes: 35,
			Coords: entity.Coordinate{Lat: 13.0827, Lng: 80.2707},
			PostalCodes: postalCodes("560001", "560002", "560003")},
		{Name: "Bangalore East", City: "Bangalore", BaseFee: 4000, PerKmFee: 600, ServiceRadiusKm: 12, EtaMinutes: 42,
			Coords: entity.Coordinate{Lat: 13.0345, Lng: 80.3003},
			PostalCodes: postalCodes("560004", "560005", "560006")},
		{Name: "Pune Central", City: "Pune", BaseFee: 2800, PerKmFee: 500, ServiceRadiusKm: 8, EtaMinutes: 32,
			Coords: entity.Coordinate{Lat: 18.5204, Lng: 73.8567},
			PostalCodes: postalCodes("411001", "411002", "411003")},
		{Name: "Pune West", City: "Pune", BaseFee: 3500, PerKmFee: 550, ServiceRadiusKm: 10, EtaMinutes: 40,
			Coords: entity.Coordinate{Lat: 18.4988, Lng: 73.8156},
			PostalCodes: postalCodes("411004", "411005", "411006")},
	}

	for i := range areas {
		areas[i].IsActive = true
		var existing entity.Area
		err := db.Where("name_key = ?", entity.NameKeyOf(areas[i].Name)).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&areas[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedRestaurants loads starter restaurants with menus, linked to the seeded
// areas by name. Runs after SeedAreas.
func SeedRestaurants(db *gorm.DB) error {
	type starter struct {
		restaurant entity.Restaurant
		areas      []string
		foods      []entity.Food
	}
	starters := []starter{
		{
			restaurant: entity.Restaurant{Name: "South Indian Paradise", Location: "123 Raja Street, Jaipur", Rating: 4.5,
				Coords: entity.Coordinate{Lat: 26.9124, Lng: 75.7873}, IsOpen: true},
			areas: []string{"Jaipur Downtown", "Jaipur Suburbs"},
			foods: []entity.Food{
				{Name: "Masala Dosa", Price: 12000, Cuisine: "South Indian", Category: "Main Course", IsVeg: true, SpicyLevel: 2, Rating: 4.6},
				{Name: "Idli Sambar", Price: 8000, Cuisine: "South Indian", Category: "Breakfast", IsVeg: true, SpicyLevel: 1, Rating: 4.4},
				{Name: "Filter Coffee", Price: 4000, Cuisine: "South Indian", Category: "Beverage", IsVeg: true, Rating: 4.7},
			},
		},
		{
			restaurant: entity.Restaurant{Name: "North Indian Kitchen", Location: "456 Ashok Road, Delhi", Rating: 4.2,
				Coords: entity.Coordinate{Lat: 28.6139, Lng: 77.2090}, IsOpen: true},
			areas: []string{"Delhi Central", "Delhi South"},
			foods: []entity.Food{
				{Name: "Butter Chicken", Price: 28000, Cuisine: "North Indian", Category: "Main Course", SpicyLevel: 2, Rating: 4.8},
				{Name: "Dal Makhani", Price: 18000, Cuisine: "North Indian", Category: "Main Course", IsVeg: true, SpicyLevel: 1, Rating: 4.5},
				{Name: "Garlic Naan", Price: 6000, Cuisine: "North Indian", Category: "Bread", IsVeg: true, Rating: 4.3},
			},
		},
		{
			restaurant: entity.Restaurant{Name: "Italian Trattoria", Location: "789 Market Street, Mumbai", Rating: 4.7,
				Coords: entity.Coordinate{Lat: 19.0760, Lng: 72.8777}, IsOpen: true},
			areas: []string{"Mumbai Central", "Mumbai Suburbs"},
			foods: []entity.Food{
				{Name: "Margherita Pizza", Price: 32000, Cuisine: "Italian", Category: "Pizza", IsVeg: true, Rating: 4.6},
				{Name: "Spaghetti Carbonara", Price: 35000, Cuisine: "Italian", Category: "Pasta", Rating: 4.7},
				{Name: "Tiramisu", Price: 22000, Cuisine: "Italian", Category: "Dessert", IsVeg: true, Rating: 4.9},
			},
		},
		{
			restaurant: entity.Restaurant{Name: "Chinese Express", Location: "321 Food Street, Bangalore", Rating: 4.0,
				Coords: entity.Coordinate{Lat: 13.0827, Lng: 80.2707}, IsOpen: true},
			areas: []string{"Bangalore Downtown", "Bangalore East"},
			foods: []entity.Food{
				{Name: "Veg Hakka Noodles", Price: 16000, Cuisine: "Chinese", Category: "Noodles", IsVeg: true, SpicyLevel: 2, Rating: 4.1},
				{Name: "Chilli Chicken", Price: 24000, Cuisine: "Chinese", Category: "Starter", SpicyLevel: 3, Rating: 4.3},
				{Name: "Veg Fried Rice", Price: 15000, Cuisine: "Chinese", Category: "Rice", IsVeg: true, SpicyLevel: 1, Rating: 4.0},
			},
		},
		{
			restaurant: entity.Restaurant{Name: "Fast Food Hub", Location: "654 Main Street, Pune", Rating: 3.8,
				Coords: entity.Coordinate{Lat: 18.5204, Lng: 73.8567}, IsOpen: true},
			areas: []string{"Pune Central", "Pune West"},
			foods: []entity.Food{
				{Name: "Classic Burger", Price: 14000, Cuisine: "Fast Food", Category: "Burger", SpicyLevel: 1, Rating: 3.9},
				{Name: "French Fries", Price: 9000, Cuisine: "Fast Food", Category: "Sides", IsVeg: true, Rating: 4.0},
				{Name: "Cold Coffee", Price: 11000, Cuisine: "Fast Food", Category: "Beverage", IsVeg: true, Rating: 4.2},
			},
		},
	}

	for _, s := range starters {
		var count int64
		db.Model(&entity.Restaurant{}).Where("name = ?", s.restaurant.Name).Count(&count)
		if count > 0 {
			continue
		}

		r := s.restaurant
		for i := range s.foods {
			var f entity.Food
			if err := db.Where("name = ?", s.foods[i].Name).FirstOrCreate(&f, s.foods[i]).Error; err != nil {
				return err
			}
			r.Menu = append(r.Menu, f)
		}
		for _, name := range s.areas {
			var a entity.Area
			if err := db.Where("name_key = ?", entity.NameKeyOf(name)).First(&a).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					continue
				}
				return err
			}
			r.DeliveryAreas = append(r.DeliveryAreas, a)
		}
		if err := db.Create(&r).Error; err != nil {
			return err
		}
	}
	return nil
}

func postalCodes(codes ...string) []entity.AreaPostalCode {
	out := make([]entity.AreaPostalCode, 0, len(codes))
	for _, c := range codes {
		out = append(out, entity.AreaPostalCode{Code: c})
	}
	return out
}
