package realtimecontroller

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/ecommerce-realtime/realtime"
)

// WebSocketHandler upgrades GET /ws and keeps the browser subscribed to
// catalog and cart change events until it disconnects.
func WebSocketHandler(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		hub.ServeWS(c.Writer, c.Request)
	}
}
