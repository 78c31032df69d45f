package cartcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/ecommerce-realtime/controllers/respond"
	cartservice "github.com/junaidrashid-git/ecommerce-realtime/services/cart"
)

// POST /api/carts/:cid/products/:pid
// Body is optional; quantity defaults to 1.
func AddProductToCart(svc *cartservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input QuantityInput
		if c.Request.ContentLength != 0 {
			if err := c.ShouldBindJSON(&input); err != nil {
				respond.Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
				return
			}
		}

		if _, err := svc.AddProduct(c.Request.Context(), c.Param("cid"), c.Param("pid"), input.Quantity); err != nil {
			respond.Error(c, err)
			return
		}
		respond.Success(c, "Product added to cart successfully")
	}
}

// PUT /api/carts/:cid/products/:pid
func UpdateProductQuantity(svc *cartservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respond.Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
		if input.Quantity == nil {
			respond.Fail(c, http.StatusBadRequest, "quantity is required")
			return
		}

		if _, err := svc.UpdateQuantity(c.Request.Context(), c.Param("cid"), c.Param("pid"), *input.Quantity); err != nil {
			respond.Error(c, err)
			return
		}
		respond.Success(c, "Product quantity updated in cart")
	}
}

// DELETE /api/carts/:cid/products/:pid
func RemoveProductFromCart(svc *cartservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := svc.RemoveProduct(c.Request.Context(), c.Param("cid"), c.Param("pid")); err != nil {
			respond.Error(c, err)
			return
		}
		respond.Success(c, "Product removed from cart")
	}
}
