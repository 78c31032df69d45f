package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/ecommerce-realtime/controllers/respond"
	"github.com/junaidrashid-git/ecommerce-realtime/services/catalog"
)

// GetProducts lists products.
// Query: limit, page, sort (asc|desc by price), query ("available" or a
// category/title substring).
func GetProducts(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit"))
		page, _ := strconv.Atoi(c.Query("page"))

		result, err := svc.List(c.Request.Context(), catalog.ListParams{
			Limit: limit,
			Page:  page,
			Sort:  c.Query("sort"),
			Query: c.Query("query"),
		})
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GetProductByID returns a single product.
// URL param: /api/products/:pid
func GetProductByID(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.Get(c.Request.Context(), c.Param("pid"))
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
