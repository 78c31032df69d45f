// Package viewcontroller renders the server-side HTML pages. Pages only read
// through the services; every write goes through the JSON API.
package viewcontroller

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/ecommerce-realtime/services"
	cartservice "github.com/junaidrashid-git/ecommerce-realtime/services/cart"
	"github.com/junaidrashid-git/ecommerce-realtime/services/catalog"
)

//go:embed templates/*.html
var templatesFS embed.FS

// FuncMap holds the helpers available to every page.
var FuncMap = template.FuncMap{
	"calculateTotal": func(price float64, quantity int) string {
		return fmt.Sprintf("%.2f", price*float64(quantity))
	},
}

// Templates parses the embedded page set.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(FuncMap).ParseFS(templatesFS, "templates/*.html"))
}

func Home(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.All(c.Request.Context())
		if err != nil {
			renderError(c, err, "Could not load products")
			return
		}
		c.HTML(http.StatusOK, "home.html", gin.H{
			"title":    "Product list",
			"products": products,
		})
	}
}

// Page renders a template that needs no data besides its title.
func Page(name, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, name, gin.H{"title": title})
	}
}

func ProductDetail(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.Get(c.Request.Context(), c.Param("pid"))
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.HTML(http.StatusNotFound, "404.html", gin.H{"title": "Product not found"})
				return
			}
			renderError(c, err, "Could not load product details")
			return
		}
		c.HTML(http.StatusOK, "productDetail.html", gin.H{
			"title":   product.Title,
			"product": product,
		})
	}
}

func CartDetail(svc *cartservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.Get(c.Request.Context(), c.Param("cid"))
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.HTML(http.StatusNotFound, "404.html", gin.H{"title": "Cart not found"})
				return
			}
			renderError(c, err, "Could not load cart")
			return
		}

		var total float64
		for _, item := range cart.Products {
			if item.Product != nil {
				total += item.Product.Price * float64(item.Quantity)
			}
		}
		c.HTML(http.StatusOK, "cartDetail.html", gin.H{
			"title": "Cart details",
			"cart":  cart,
			"total": fmt.Sprintf("%.2f", total),
		})
	}
}

func renderError(c *gin.Context, err error, message string) {
	log.Printf("❌ %s: %v", c.Request.URL.Path, err)
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"title":   "Error",
		"message": message,
	})
}
