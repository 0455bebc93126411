package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gunvolt24/wb_cart/pkg/ctxmeta"
	"github.com/Gunvolt24/wb_cart/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestVisitorMiddleware_AssignsAnonymousID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var ctxID, headerID string

	r := gin.New()
	r.Use(httpx.VisitorMiddleware())
	r.GET("/", func(c *gin.Context) {
		ctxID, _ = ctxmeta.VisitorIDFromContext(c.Request.Context())
		headerID = c.GetHeader(httpx.HeaderVisitorID)
		c.Status(204)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", http.NoBody))

	vid := w.Header().Get(httpx.HeaderVisitorID)
	if _, err := uuid.Parse(vid); err != nil {
		t.Fatalf("anonymous visitor id must be UUID, got=%q err=%v", vid, err)
	}
	if ctxID != vid || headerID != vid {
		t.Fatalf("visitor id mismatch: ctx=%q header=%q response=%q", ctxID, headerID, vid)
	}
}

func TestVisitorMiddleware_KeepsProvidedID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(httpx.VisitorMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(204) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", http.NoBody)
	req.Header.Set(httpx.HeaderVisitorID, "customer-42")
	r.ServeHTTP(w, req)

	if got := w.Header().Get(httpx.HeaderVisitorID); got != "customer-42" {
		t.Fatalf("want customer-42, got %q", got)
	}
}
