package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestTimeout is the bounded-deadline safety floor for every request. No
// operation here should take anywhere near this long; the deadline only
// keeps a stuck storage round-trip from pinning the handler forever.
const RequestTimeout = 30 * time.Second

// WithTimeout attaches a deadline to the request context so it propagates
// into storage calls via WithContext.
func WithTimeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
