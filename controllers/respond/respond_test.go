package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/ecommerce-realtime/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"validation", services.Invalid("missing required fields: title"), http.StatusBadRequest, "missing required fields: title"},
		{"not found", services.NotFound("product p1"), http.StatusNotFound, "product p1 not found"},
		{"internal", fmt.Errorf("list products: %w", errors.New("read ./data/products.json: permission denied")),
			http.StatusInternalServerError, InternalErrorMessage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/products", nil)

			Error(c, tc.err)

			require.Equal(t, tc.wantStatus, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "error", body["status"])
			assert.Contains(t, body["message"], tc.wantMessage)
			assert.NotContains(t, body["message"], "products.json")
		})
	}
}
