// Package respond maps service errors onto HTTP responses.
package respond

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/ecommerce-realtime/services"
)

// Error writes the response for err: 400 for validation problems, 404 for
// unknown identifiers and 500 for everything else. A 500 only logs err; the
// client gets a fixed message.
func Error(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		Fail(c, http.StatusNotFound, err.Error())
	default:
		log.Printf("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		_ = c.Error(err)
		Fail(c, http.StatusInternalServerError, InternalErrorMessage)
	}
}

const InternalErrorMessage = "Internal server error"

func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"status": "error", "message": message})
}

func Success(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": message})
}
