package rest

import (
	"context"
	"net/http"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/gin-gonic/gin"
)

// statusByKey — HTTP-статус неуспешного конверта по ключу первого сообщения.
var statusByKey = map[string]int{
	domain.MsgCartNotFound:     http.StatusNotFound,
	domain.MsgCustomerNotFound: http.StatusNotFound,
	domain.MsgPartyNotFound:    http.StatusNotFound,
	domain.MsgLineNotFound:     http.StatusNotFound,
	domain.MsgInvalidLine:      http.StatusBadRequest,
	domain.MsgInvalidQuantity:  http.StatusBadRequest,
	domain.MsgInvalidPromoCode: http.StatusBadRequest,
	domain.MsgInvalidCurrency:  http.StatusBadRequest,
	domain.MsgInvalidInput:     http.StatusBadRequest,
}

// statusOf — успех → 200; SystemError в любом месте → 500;
// известный ключ → его статус; прочие отказы бэкенда → 422.
func statusOf(result domain.ServiceResult) int {
	if result.Success {
		return http.StatusOK
	}
	for _, m := range result.Messages {
		if m.Key == domain.MsgSystemError {
			return http.StatusInternalServerError
		}
	}
	for _, m := range result.Messages {
		if status, ok := statusByKey[m.Key]; ok {
			return status
		}
	}
	return http.StatusUnprocessableEntity
}

// respond — пишет конверт Response[T]; истёкший таймаут обработчика даёт 500 с конвертом SystemError.
func respond[T any](ctx context.Context, h *Handler, c *gin.Context, op string, resp domain.Response[T]) {
	if err := ctx.Err(); err != nil {
		h.log.Errorf(ctx, "%s aborted: %v", op, err)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, domain.NewResponse[any](domain.Fail(domain.MsgSystemError, "request timed out"), nil))
		return
	}
	c.JSON(statusOf(resp.Result), resp)
}

// badRequest — тело запроса не разобрано.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, domain.NewResponse[any](domain.Fail(domain.MsgInvalidInput, err.Error()), nil))
}
