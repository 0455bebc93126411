package rest

import (
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *Handler) getCheckoutData(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	respond(ctx, h, c, "GetCheckoutData", h.checkout.GetCheckoutData(ctx, h.storefront, visitor(c)))
}

func (h *Handler) getStates(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	country := strings.ToUpper(strings.TrimSpace(c.Param("country")))
	respond(ctx, h, c, "GetAvailableStates", h.checkout.GetAvailableStates(ctx, country))
}
