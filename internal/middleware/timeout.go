package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// DefaultRequestTimeout bounds catalog lookups made while serving a request.
const DefaultRequestTimeout = 5 * time.Second

// Timeout returns a middleware that attaches a deadline to the request
// context. Storage calls made with that context fail with
// context.DeadlineExceeded, which ErrorHandler reports as 504. A
// non-positive timeout leaves the context untouched.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
