package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// CacheControl marks successful responses as publicly cacheable for maxAge.
// Non-2xx responses get "no-store" so an upstream outage is not cached by
// browsers or CDNs.
func CacheControl(maxAge time.Duration) gin.HandlerFunc {
	value := fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds()))
	if maxAge <= 0 {
		value = "no-store"
	}

	return func(c *gin.Context) {
		c.Writer = &cacheControlWriter{ResponseWriter: c.Writer, value: value}
		c.Next()
	}
}

type cacheControlWriter struct {
	gin.ResponseWriter
	value string
}

func (w *cacheControlWriter) WriteHeader(code int) {
	if code >= 200 && code < 300 {
		w.Header().Set("Cache-Control", w.value)
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}
	w.ResponseWriter.WriteHeader(code)
}
