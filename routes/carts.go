package routes

import (
	"github.com/gin-gonic/gin"
	cartcontroller "github.com/junaidrashid-git/ecommerce-realtime/controllers/cart"
	cartservice "github.com/junaidrashid-git/ecommerce-realtime/services/cart"
)

func SetupCartRoutes(r *gin.Engine, svc *cartservice.Service) {
	carts := r.Group("/api/carts")
	{
		carts.GET("", cartcontroller.GetCarts(svc))
		carts.POST("", cartcontroller.CreateCart(svc))
		carts.GET("/:cid", cartcontroller.GetCart(svc))
		carts.PUT("/:cid", cartcontroller.ReplaceCartProducts(svc))
		carts.DELETE("/:cid", cartcontroller.ClearCart(svc))

		// ─────────── Cart membership ───────────
		carts.POST("/:cid/products/:pid", cartcontroller.AddProductToCart(svc))
		carts.PUT("/:cid/products/:pid", cartcontroller.UpdateProductQuantity(svc))
		carts.DELETE("/:cid/products/:pid", cartcontroller.RemoveProductFromCart(svc))

		// singular form used by older clients
		carts.POST("/:cid/product/:pid", cartcontroller.AddProductToCart(svc))
	}
}
