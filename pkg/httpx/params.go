package httpx

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// HeaderVisitorID — заголовок с идентичностью посетителя (анонимной или аутентифицированной).
const (
	HeaderVisitorID     = "X-Visitor-ID"
	HeaderAuthenticated = "X-Visitor-Authenticated"
	HeaderVisitorEmail  = "X-Visitor-Email"
)

// ParseBoolQuery — читает булев query-параметр; нераспознанное значение даёт def.
func ParseBoolQuery(c *gin.Context, name string, def bool) bool {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

// ParseBoolHeader — то же для заголовка.
func ParseBoolHeader(c *gin.Context, name string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(c.GetHeader(name)))
	return err == nil && v
}
