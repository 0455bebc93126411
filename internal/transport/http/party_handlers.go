package rest

import (
	"errors"
	"strings"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/gin-gonic/gin"
)

var errNoPartyIDs = errors.New("at least one id query parameter is required")

func (h *Handler) getParties(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	respond(ctx, h, c, "GetParties", h.carts.GetParties(ctx, h.storefront, visitor(c)))
}

func (h *Handler) saveParties(c *gin.Context) {
	var parties []domain.CommerceParty
	if err := c.ShouldBindJSON(&parties); err != nil {
		badRequest(c, err)
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	respond(ctx, h, c, "SaveParties", h.carts.SaveParties(ctx, h.storefront, visitor(c), parties))
}

// removeParties — DELETE /api/v1/parties?id=a&id=b
func (h *Handler) removeParties(c *gin.Context) {
	var ids []string
	for _, id := range c.QueryArray("id") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		badRequest(c, errNoPartyIDs)
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	respond(ctx, h, c, "RemoveParties", h.carts.RemoveParties(ctx, h.storefront, visitor(c), ids))
}
