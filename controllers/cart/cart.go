package cartcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/ecommerce-realtime/controllers/respond"
	"github.com/junaidrashid-git/ecommerce-realtime/models"
	cartservice "github.com/junaidrashid-git/ecommerce-realtime/services/cart"
)

type CreateCartInput struct {
	Description string `json:"description" form:"description"`
}

type QuantityInput struct {
	Quantity *int `json:"quantity"`
}

type ReplaceProductsInput struct {
	Products []models.CartItem `json:"products" binding:"required"`
}

// POST /api/carts
func CreateCart(svc *cartservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateCartInput
		if c.Request.ContentLength != 0 {
			if err := c.ShouldBind(&input); err != nil {
				respond.Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
				return
			}
		}

		cart, err := svc.Create(c.Request.Context(), input.Description)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, cart)
	}
}

// GET /api/carts
func GetCarts(svc *cartservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		carts, err := svc.List(c.Request.Context())
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, carts)
	}
}

// GET /api/carts/:cid
func GetCart(svc *cartservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.Get(c.Request.Context(), c.Param("cid"))
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// PUT /api/carts/:cid
func ReplaceCartProducts(svc *cartservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ReplaceProductsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respond.Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		if _, err := svc.ReplaceProducts(c.Request.Context(), c.Param("cid"), input.Products); err != nil {
			respond.Error(c, err)
			return
		}
		respond.Success(c, "Cart updated successfully")
	}
}

// DELETE /api/carts/:cid empties the cart; the cart itself remains.
func ClearCart(svc *cartservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := svc.Clear(c.Request.Context(), c.Param("cid")); err != nil {
			respond.Error(c, err)
			return
		}
		respond.Success(c, "Cart cleared successfully")
	}
}
