package productcontroller

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/ecommerce-realtime/controllers/respond"
	"github.com/junaidrashid-git/ecommerce-realtime/services/catalog"
)

func DeleteProduct(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("pid")); err != nil {
			respond.Error(c, err)
			return
		}
		respond.Success(c, "Product deleted successfully")
	}
}
