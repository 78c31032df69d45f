package routes

import (
	"github.com/gin-gonic/gin"
	realtimecontroller "github.com/junaidrashid-git/ecommerce-realtime/controllers/realtime"
	"github.com/junaidrashid-git/ecommerce-realtime/realtime"
)

func SetupRealtimeRoutes(r *gin.Engine, hub *realtime.Hub) {
	r.GET("/ws", realtimecontroller.WebSocketHandler(hub))
}
