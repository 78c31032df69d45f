package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/ecommerce-realtime/middleware"
	"github.com/junaidrashid-git/ecommerce-realtime/realtime"
	cartservice "github.com/junaidrashid-git/ecommerce-realtime/services/cart"
	"github.com/junaidrashid-git/ecommerce-realtime/services/catalog"
)

// Deps is everything the route groups need. It is built once in main.
type Deps struct {
	Catalog *catalog.Service
	Carts   *cartservice.Service
	Hub     *realtime.Hub
	Metrics *middleware.Metrics
}

// SetupRoutes is the single entry-point that wires up API, view, realtime
// and operational routes.
func SetupRoutes(r *gin.Engine, deps Deps) {
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Instrument())
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "listeners": deps.Hub.Count()})
	})

	// 1️⃣ JSON API
	SetupProductRoutes(r, deps.Catalog)
	SetupCartRoutes(r, deps.Carts)

	// 2️⃣ Realtime channel
	SetupRealtimeRoutes(r, deps.Hub)

	// 3️⃣ HTML views
	SetupViewRoutes(r, deps.Catalog, deps.Carts)
}
