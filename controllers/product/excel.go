package productcontroller

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/ecommerce-realtime/controllers/respond"
	"github.com/junaidrashid-git/ecommerce-realtime/services/catalog"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func ExportProductsToExcel(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Render fully before writing headers so a failure can still be a JSON error.
		var buf bytes.Buffer
		if err := svc.Export(c.Request.Context(), &buf); err != nil {
			respond.Error(c, err)
			return
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")
		c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
	}
}

// ImportProductsFromExcel reads the multipart "file" field.
func ImportProductsFromExcel(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header, err := c.FormFile("file")
		if err != nil {
			respond.Fail(c, http.StatusBadRequest, "Excel file is required")
			return
		}

		file, err := header.Open()
		if err != nil {
			respond.Fail(c, http.StatusInternalServerError, "Failed to open Excel file")
			return
		}
		defer file.Close()

		result, err := svc.Import(c.Request.Context(), file, header.Size)
		if err != nil {
			respond.Error(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":        "success",
			"message":       "Import completed",
			"created_count": result.Created,
			"updated_count": result.Updated,
			"skipped_count": result.Skipped,
		})
	}
}
