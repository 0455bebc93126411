package rest

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/ports"
	"github.com/Gunvolt24/wb_cart/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Handler — HTTP-обработчики корзины и оформления заказа.
type Handler struct {
	carts      ports.CartAPI
	checkout   ports.CheckoutAPI
	validator  ports.LineValidator
	storefront domain.Storefront
	log        ports.Logger
	reqTimeout time.Duration
}

// NewHandler — конструктор Handler. reqTimeout <= 0 — без таймаута на обработку.
func NewHandler(
	carts ports.CartAPI,
	checkout ports.CheckoutAPI,
	validator ports.LineValidator,
	storefront domain.Storefront,
	log ports.Logger,
	reqTimeout time.Duration,
) *Handler {
	return &Handler{
		carts:      carts,
		checkout:   checkout,
		validator:  validator,
		storefront: storefront,
		log:        log,
		reqTimeout: reqTimeout,
	}
}

// NewRouter — собирает gin.Engine: middleware, служебные маршруты, API v1 и статику.
// otelServiceName == "" — без otelgin.
func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.VisitorMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		cart := api.Group("/cart")
		cart.GET("", h.getCart)
		cart.POST("/lines", h.addLines)
		cart.POST("/lines/bulk", h.addLinesBulk)
		cart.DELETE("/lines/:lineID", h.removeLine)
		cart.PATCH("/lines/:lineID", h.changeQuantity)
		cart.POST("/promo", h.addPromo)
		cart.DELETE("/promo/:code", h.removePromo)
		cart.PUT("/shipping", h.setShipping)
		cart.PUT("/payment", h.setPayment)
		cart.PUT("/currency", h.updateCurrency)
		cart.POST("/merge", h.mergeCarts)

		parties := api.Group("/parties")
		parties.GET("", h.getParties)
		parties.POST("", h.saveParties)
		parties.DELETE("", h.removeParties)

		checkout := api.Group("/checkout")
		checkout.GET("", h.getCheckoutData)
		checkout.GET("/states/:country", h.getStates)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	return r
}

// requestContext — контекст запроса с таймаутом обработчика.
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.reqTimeout > 0 {
		return context.WithTimeout(c.Request.Context(), h.reqTimeout)
	}
	return context.WithCancel(c.Request.Context())
}

// visitor — посетитель из заголовков; X-Visitor-ID гарантирует VisitorMiddleware.
func visitor(c *gin.Context) domain.Visitor {
	return domain.Visitor{
		ID:              c.GetHeader(httpx.HeaderVisitorID),
		IsAuthenticated: httpx.ParseBoolHeader(c, httpx.HeaderAuthenticated),
		Email:           c.GetHeader(httpx.HeaderVisitorEmail),
	}
}
