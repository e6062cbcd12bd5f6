package routes

import (
	"github.com/gin-gonic/gin"

	"restaurant-backend/configs"
	"restaurant-backend/controllers"
	"restaurant-backend/middlewares"
	"restaurant-backend/services"
	"restaurant-backend/ws"
)

// Deps carries the wired service instances; stores are constructed once in
// main and passed down, never held in package globals.
type Deps struct {
	Cfg      *configs.Config
	Auth     *services.AuthService
	Menu     *services.MenuService
	Stock    *services.StockService
	Orders   *services.OrderService
	Settings *services.SettingsService
	Hub      *ws.OrderHub
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Controllers
	authCtrl := controllers.NewAuthController(d.Auth)
	menuCtrl := controllers.NewMenuController(d.Menu, d.Stock)
	orderCtrl := controllers.NewOrderController(d.Orders)
	stockCtrl := controllers.NewStockController(d.Stock)
	settingsCtrl := controllers.NewSettingsController(d.Settings)

	secret := d.Cfg.JWTSecret

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(secret), authCtrl.Me)

	// Menu (public)
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/:id", menuCtrl.Detail)

	// Orders (any logged-in user)
	u := r.Group("/orders", middlewares.AuthMiddleware(secret))
	{
		u.POST("", orderCtrl.Create)
		u.GET("", orderCtrl.ListForMe)
		u.GET("/:id", orderCtrl.Detail)
	}

	// Manager only
	m := r.Group("/manager", middlewares.AuthMiddleware(secret, "manager"))
	{
		m.POST("/menu", menuCtrl.Create)
		m.GET("/ingredients", stockCtrl.List)
		m.POST("/ingredients", stockCtrl.Create)
		m.PUT("/ingredients/:id/stock", stockCtrl.Restock)
		m.GET("/orders", orderCtrl.ListAll)
		m.GET("/orders/feed", d.Hub.Serve)
		m.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
		m.DELETE("/orders/:id", orderCtrl.Delete)
		m.GET("/settings", settingsCtrl.Get)
		m.PATCH("/settings", settingsCtrl.Update)
	}
}
