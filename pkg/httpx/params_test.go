package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gunvolt24/wb_cart/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// Утилита для создания *gin.Context с query-строкой
func ctxWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/?"+rawQuery, http.NoBody)
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c
}

func TestParseBoolQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rawQuery string
		def      bool
		want     bool
	}{
		{"missing_uses_default_false", "", false, false},
		{"missing_uses_default_true", "", true, true},
		{"true", "refresh=true", false, true},
		{"one", "refresh=1", false, true},
		{"false", "refresh=false", true, false},
		{"garbage_uses_default", "refresh=maybe", true, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := ctxWithQuery(tt.rawQuery)
			if got := httpx.ParseBoolQuery(c, "refresh", tt.def); got != tt.want {
				t.Fatalf("ParseBoolQuery(%q, def=%v) = %v, want %v", tt.rawQuery, tt.def, got, tt.want)
			}
		})
	}
}

func TestParseBoolHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", http.NoBody)

	if httpx.ParseBoolHeader(c, httpx.HeaderAuthenticated) {
		t.Fatalf("missing header must be false")
	}
	c.Request.Header.Set(httpx.HeaderAuthenticated, "true")
	if !httpx.ParseBoolHeader(c, httpx.HeaderAuthenticated) {
		t.Fatalf("header=true must be true")
	}
}
