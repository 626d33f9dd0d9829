package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	areaRepo := repository.NewAreaRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	areaSvc := services.NewAreaService(areaRepo, restRepo)
	foodSvc := services.NewFoodService(foodRepo, areaSvc)
	restSvc := services.NewRestaurantService(restRepo, areaSvc)
	cartSvc := services.NewCartService(db, cartRepo, foodRepo, restRepo, areaRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, restRepo, areaRepo)
	if rdb != nil {
		orderSvc.Idem = repository.NewRedisIdempotencyStore(rdb)
	}

	// Order status updates go out over WebSocket.
	hub := ws.NewOrderHub(orderSvc)
	orderSvc.Publisher = hub
	go hub.Run()

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	deliveryCtrl := controllers.NewDeliveryController(areaSvc)
	foodCtrl := controllers.NewFoodController(foodSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Catalog (public)
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/foods", foodCtrl.List)
	r.GET("/foods/search", foodCtrl.Search)
	r.GET("/foods/:id", foodCtrl.Detail)

	// Delivery availability (public)
	r.POST("/delivery/check", deliveryCtrl.Check)
	r.GET("/delivery/areas", deliveryCtrl.ListAreas)
	r.GET("/delivery/areas/:id", deliveryCtrl.AreaDetail)

	// Cart (user)
	cart := r.Group("/cart", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items", cartCtrl.UpdateQty)
		cart.DELETE("/items/:foodId", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders (user)
	orders := r.Group("/orders", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		orders.POST("", orderCtrl.Create)
		orders.GET("", orderCtrl.List)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PATCH("/:id/cancel", orderCtrl.Cancel)
	}

	// Live order tracking
	r.GET("/ws/orders/:id", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.PATCH("/orders/:id/status", orderCtrl.AdminUpdateStatus)
	}
}
