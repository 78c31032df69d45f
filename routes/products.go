package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/junaidrashid-git/ecommerce-realtime/controllers/product"
	"github.com/junaidrashid-git/ecommerce-realtime/services/catalog"
)

func SetupProductRoutes(r *gin.Engine, svc *catalog.Service) {
	products := r.Group("/api/products")
	{
		products.GET("", productcontroller.GetProducts(svc))
		products.POST("", productcontroller.CreateProduct(svc))

		// ─────────── Spreadsheet import / export ───────────
		products.GET("/export", productcontroller.ExportProductsToExcel(svc))
		products.POST("/import", productcontroller.ImportProductsFromExcel(svc))

		products.GET("/:pid", productcontroller.GetProductByID(svc))
		products.PUT("/:pid", productcontroller.UpdateProduct(svc))
		products.DELETE("/:pid", productcontroller.DeleteProduct(svc))
	}
}
