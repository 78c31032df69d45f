package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/ecommerce-realtime/controllers/respond"
	"github.com/junaidrashid-git/ecommerce-realtime/services/catalog"
)

// CreateProduct creates a product from a JSON body. title, description,
// code, price, stock and category are required; thumbnails are optional.
func CreateProduct(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input catalog.ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respond.Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		product, err := svc.Create(c.Request.Context(), input)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
