package httpx

import (
	"time"

	"github.com/Gunvolt24/wb_cart/internal/ports"
	"github.com/Gunvolt24/wb_cart/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// RequestLogger — middleware для логирования HTTP-запросов.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// не логируем /metrics, /ping
		switch c.FullPath() {
		case "/metrics", "/ping":
			return
		}
		if c.Writer.Status() >= 500 {
			log.Errorf(c.Request.Context(), "request failed: method=%s path=%s status=%d errors=%s",
				c.Request.Method, c.Request.URL.Path, c.Writer.Status(), c.Errors.String())
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		// request_id/visitor_id/trace_id логгер добавит из контекста.
		sp, _ := ctxmeta.SpanIDFromContext(c.Request.Context())

		log.Infof(
			c.Request.Context(),
			"request span=%s method=%s path=%s status=%d ip=%s duration=%s size=%d",
			sp,
			c.Request.Method,
			path,
			c.Writer.Status(),
			c.ClientIP(),
			time.Since(start),
			c.Writer.Size(),
		)
	}
}
