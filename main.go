package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"restaurant-backend/configs"
	"restaurant-backend/entity"
	"restaurant-backend/middlewares"
	"restaurant-backend/pkg/logger"
	"restaurant-backend/repository"
	"restaurant-backend/routes"
	"restaurant-backend/services"
	"restaurant-backend/ws"
)

func main() {
	cfg := configs.LoadConfig()
	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	// Stores: one JSON document per collection under the data dir.
	dishes, err := repository.NewFileStore[entity.Dish](cfg.DataDir, "dishes.json")
	if err != nil {
		logger.Log.Fatal("open dish store", zap.Error(err))
	}
	orders, err := repository.NewFileStore[entity.Order](cfg.DataDir, "orders.json")
	if err != nil {
		logger.Log.Fatal("open order store", zap.Error(err))
	}
	users, err := repository.NewFileStore[entity.User](cfg.DataDir, "users.json")
	if err != nil {
		logger.Log.Fatal("open user store", zap.Error(err))
	}
	ingredients, err := repository.NewFileStore[entity.Ingredient](cfg.DataDir, "ingredients.json")
	if err != nil {
		logger.Log.Fatal("open ingredient store", zap.Error(err))
	}
	settingsStore, err := repository.NewFileStore[entity.RestaurantSettings](cfg.DataDir, "settings.json")
	if err != nil {
		logger.Log.Fatal("open settings store", zap.Error(err))
	}

	// Services
	hub := ws.NewOrderHub()
	go hub.Run()

	authSvc := services.NewAuthService(users, cfg.JWTSecret, cfg.JWTTTL)
	stockSvc := services.NewStockService(ingredients)
	menuSvc := services.NewMenuService(dishes, cfg.SkipMissingDish)
	settingsSvc := services.NewSettingsService(settingsStore)
	orderSvc := services.NewOrderService(orders, menuSvc, stockSvc, settingsSvc, hub)

	if err := configs.SeedManager(cfg, authSvc); err != nil {
		logger.Log.Fatal("seed manager failed", zap.Error(err))
	}
	if err := configs.SeedSettings(settingsSvc); err != nil {
		logger.Log.Fatal("seed settings failed", zap.Error(err))
	}

	// HTTP
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, routes.Deps{
		Cfg:      cfg,
		Auth:     authSvc,
		Menu:     menuSvc,
		Stock:    stockSvc,
		Orders:   orderSvc,
		Settings: settingsSvc,
		Hub:      hub,
	})

	logger.Log.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal("server stopped", zap.Error(err))
	}
}
