package httpx

import (
	"github.com/Gunvolt24/wb_cart/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VisitorMiddleware:
// - принимает X-Visitor-ID от клиента или выдаёт новый анонимный UUID
// - кладёт visitor_id в контекст (для логов)
// - возвращает его в ответном заголовке, чтобы клиент сохранил анонимную корзину
func VisitorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		visitorID := c.GetHeader(HeaderVisitorID)
		if visitorID == "" {
			visitorID = uuid.New().String()
			c.Request.Header.Set(HeaderVisitorID, visitorID)
		}
		c.Header(HeaderVisitorID, visitorID)

		ctx := ctxmeta.WithVisitorID(c.Request.Context(), visitorID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
