package api

import (
	"github.com/gin-gonic/gin"

	accountshandler "github.com/ordertrack/order-tracking-api/internal/domains/accounts/adapters/http/handler"
	ordershandler "github.com/ordertrack/order-tracking-api/internal/domains/orders/adapters/http/handler"
	productshandler "github.com/ordertrack/order-tracking-api/internal/domains/products/adapters/http/handler"
)

// Handlers groups the per-context HTTP adapters the router mounts.
type Handlers struct {
	Orders   *ordershandler.OrderHandler
	Products *productshandler.ProductHandler
	Accounts *accountshandler.AccountHandler
}

// NewRouter mounts the public endpoints and the authenticated /api surface.
// Route-level authorization mirrors the ownership model: mutating an order
// beyond cancel is an admin concern, reading and cancelling belong to any
// authenticated principal.
func NewRouter(h Handlers, authn gin.HandlerFunc, middleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware...)

	router.GET("/track/:orderId", h.Orders.Track)
	router.POST("/register", h.Accounts.Register)

	api := router.Group("/api", authn)

	orders := api.Group("/orders")
	orders.POST("", h.Orders.Create)
	orders.GET("", h.Orders.List)
	orders.GET("/:id", h.Orders.Get)
	orders.PUT("/:id", RequireAdmin(), h.Orders.Update)
	orders.DELETE("/:id", RequireAdmin(), h.Orders.Delete)
	orders.PATCH("/:id/status", RequireAdmin(), h.Orders.UpdateStatus)
	orders.PATCH("/:id/cancel", h.Orders.Cancel)

	api.GET("/products", h.Products.List)
	api.POST("/products", RequireAdmin(), h.Products.Create)

	return router
}
