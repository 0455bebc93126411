package rest

import (
	"fmt"
	"net/http"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/pkg/httpx"
	"github.com/Gunvolt24/wb_cart/pkg/validate"
	"github.com/gin-gonic/gin"
)

type addLinesRequest struct {
	Lines []domain.CartLineInput `json:"lines"`
}

type changeQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type promoRequest struct {
	Code string `json:"code" binding:"required"`
}

type currencyRequest struct {
	CurrencyCode string `json:"currency_code" binding:"required"`
}

type mergeRequest struct {
	AnonymousID string `json:"anonymous_id" binding:"required"`
}

// bulkImport — статистика разбора JSONL для ответа.
type bulkImport struct {
	Valid   int            `json:"valid"`
	Invalid int            `json:"invalid"`
	Errors  map[int]string `json:"errors,omitempty"`
}

func (h *Handler) getCart(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	refresh := httpx.ParseBoolQuery(c, "refresh", false)
	respond(ctx, h, c, "GetCurrentCart", h.carts.GetCurrentCart(ctx, h.storefront, visitor(c), refresh))
}

func (h *Handler) addLines(c *gin.Context) {
	var req addLinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	respond(ctx, h, c, "AddLineItems", h.carts.AddLineItems(ctx, h.storefront, visitor(c), req.Lines))
}

// addLinesBulk — тело в формате JSONL, по строке корзины на строку; невалидные строки пропускаются.
func (h *Handler) addLinesBulk(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	lines, stats, err := validate.LinesFromJSONL(ctx, h.validator, c.Request.Body)
	if err != nil {
		badRequest(c, err)
		return
	}
	report := bulkImport{Valid: stats.ValidLinesCount, Invalid: stats.InvalidLinesCount, Errors: stats.Errors}
	if len(lines) == 0 {
		fail := domain.Fail(domain.MsgInvalidLine, fmt.Sprintf("no valid lines (%d invalid)", stats.InvalidLinesCount))
		c.JSON(http.StatusBadRequest, gin.H{"result": fail, "payload": nil, "import": report})
		return
	}

	resp := h.carts.AddLineItems(ctx, h.storefront, visitor(c), lines)
	if ctx.Err() != nil {
		respond(ctx, h, c, "AddLineItems(bulk)", resp)
		return
	}
	c.JSON(statusOf(resp.Result), gin.H{"result": resp.Result, "payload": resp.Payload, "import": report})
}

func (h *Handler) removeLine(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	respond(ctx, h, c, "RemoveLineItem", h.carts.RemoveLineItem(ctx, h.storefront, visitor(c), c.Param("lineID")))
}

func (h *Handler) changeQuantity(c *gin.Context) {
	var req changeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	resp := h.carts.ChangeLineQuantity(ctx, h.storefront, visitor(c), c.Param("lineID"), *req.Quantity)
	respond(ctx, h, c, "ChangeLineQuantity", resp)
}

func (h *Handler) addPromo(c *gin.Context) {
	var req promoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	respond(ctx, h, c, "AddPromoCode", h.carts.AddPromoCode(ctx, h.storefront, visitor(c), req.Code))
}

func (h *Handler) removePromo(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	respond(ctx, h, c, "RemovePromoCode", h.carts.RemovePromoCode(ctx, h.storefront, visitor(c), c.Param("code")))
}

func (h *Handler) setShipping(c *gin.Context) {
	var input domain.SetShippingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	respond(ctx, h, c, "SetShippingMethods", h.carts.SetShippingMethods(ctx, h.storefront, visitor(c), input))
}

func (h *Handler) setPayment(c *gin.Context) {
	var input domain.SetPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	respond(ctx, h, c, "SetPaymentMethods", h.carts.SetPaymentMethods(ctx, h.storefront, visitor(c), input))
}

func (h *Handler) updateCurrency(c *gin.Context) {
	var req currencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	respond(ctx, h, c, "UpdateCartCurrency", h.carts.UpdateCartCurrency(ctx, h.storefront, visitor(c), req.CurrencyCode))
}

// mergeCarts — анонимная корзина ищется по её id (без создания), затем сливается в текущую.
func (h *Handler) mergeCarts(c *gin.Context) {
	var req mergeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	v := visitor(c)
	var anonymousCart *domain.Cart
	if req.AnonymousID != v.ID {
		anon := h.carts.FindCart(ctx, h.storefront, req.AnonymousID)
		if anon.Result.Success {
			anonymousCart = anon.Payload
		}
	}
	respond(ctx, h, c, "MergeCarts", h.carts.MergeCarts(ctx, h.storefront, v, req.AnonymousID, anonymousCart))
}
