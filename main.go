package main

import (
	"fmt"
	"log"

	"backend/configs"
	"backend/middlewares"
	"backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	db, err := configs.ConnectDB(cfg.DBSource)
	if err != nil {
		log.Fatalf("connect db failed: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedAdmin(db); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedAreas(db); err != nil {
		log.Fatalf("seed areas failed: %v", err)
	}
	if err := configs.SeedRestaurants(db); err != nil {
		log.Fatalf("seed restaurants failed: %v", err)
	}

	rdb := configs.ConnectRedis(cfg)
	if rdb == nil {
		log.Println("redis not configured, order idempotency disabled")
	}

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, rdb, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
