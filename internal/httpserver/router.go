package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, deps Deps, corsOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(corsOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps))

	api := router.Group("/api")

	api.GET("/items", listItemsHandler(deps.InventorySvc))
	api.GET("/items/:id", getItemHandler(deps.InventorySvc))
	api.POST("/items/:id/adjust", adjustStockHandler(deps.InventorySvc))
	api.GET("/items/:id/history", itemHistoryHandler(deps.InventorySvc))
	api.PUT("/items/:id", updateItemHandler(deps.InventorySvc))

	api.GET("/orders", listOrdersHandler(deps.ShippingSvc))
	api.GET("/orders/:id", getOrderHandler(deps.ShippingSvc))
	api.PUT("/orders/:id/status", setStatusHandler(deps.ShippingSvc))
	api.PUT("/orders/:id/tracking", setTrackingHandler(deps.ShippingSvc))
	api.GET("/orders/:id/urgency", urgencyHandler(deps.ShippingSvc))
	api.POST("/orders/:id/checklist", checklistHandler(deps.ShippingSvc))
	api.GET("/locations", locationsHandler(deps.ShippingSvc))

	api.POST("/carts", createCartHandler(deps.CartSvc))
	api.GET("/carts/:id", getCartHandler(deps.CartSvc))
	api.POST("/carts/:id/items", addCartItemHandler(deps.CartSvc))
	api.POST("/carts/:id/items/:itemId/quantity", updateCartQuantityHandler(deps.CartSvc))
	api.DELETE("/carts/:id/items/:itemId", removeCartItemHandler(deps.CartSvc))
	api.GET("/carts/:id/totals", cartTotalsHandler(deps.CartSvc))
	api.POST("/carts/:id/checkout", checkoutHandler(deps.CartSvc))

	api.GET("/stats", statsHandler(deps.StatsSvc))

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
