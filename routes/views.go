package routes

import (
	"github.com/gin-gonic/gin"
	viewcontroller "github.com/junaidrashid-git/ecommerce-realtime/controllers/view"
	cartservice "github.com/junaidrashid-git/ecommerce-realtime/services/cart"
	"github.com/junaidrashid-git/ecommerce-realtime/services/catalog"
)

func SetupViewRoutes(r *gin.Engine, products *catalog.Service, carts *cartservice.Service) {
	r.SetHTMLTemplate(viewcontroller.Templates())

	r.GET("/", viewcontroller.Home(products))
	r.GET("/add-product", viewcontroller.Page("addProduct.html", "Add product"))
	r.GET("/realTimeProducts", viewcontroller.Page("realTimeProducts.html", "Live products"))
	r.GET("/add-cart", viewcontroller.Page("addCart.html", "Create cart"))
	r.GET("/view-cart", viewcontroller.Page("viewCart.html", "View carts"))
	r.GET("/products/:pid", viewcontroller.ProductDetail(products))
	r.GET("/carts/:cid", viewcontroller.CartDetail(carts))
}
