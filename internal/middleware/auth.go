package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/area-length-service/internal/i18n"
)

// API key locations, checked in this order.
const (
	APIKeyHeader = "X-API-Key"
	APIKeyQuery  = "api_key"
)

// APIKeyAuth rejects requests that carry no key or an unknown one. An empty
// key set disables the check. CORS preflight requests always pass.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(validKeys) == 0 || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		switch key := apiKeyFrom(c); {
		case key == "":
			abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
		case !validKeys[key]:
			abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
		default:
			c.Next()
		}
	}
}

func apiKeyFrom(c *gin.Context) string {
	if key := c.GetHeader(APIKeyHeader); key != "" {
		return key
	}
	return c.Query(APIKeyQuery)
}
