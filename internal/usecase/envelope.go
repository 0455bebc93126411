package usecase

import (
	"context"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/ports"
	"github.com/Gunvolt24/wb_cart/pkg/metrics"
)

// Исходы операций для метрик.
const (
	outcomeOK      = "ok"
	outcomeFailed  = "failed"
	outcomeInvalid = "invalid"
	outcomeError   = "error"
)

// systemError — сбой вызова превращается в конверт с ключом SystemError; подробности только в логе.
func systemError(ctx context.Context, log ports.Logger, op string, err error) domain.ServiceResult {
	log.Errorf(ctx, "%s failed: %v", op, err)
	return domain.Fail(domain.MsgSystemError, "the operation could not be completed")
}

// logFailure — отказ бэкенда пересылается как есть, сообщения пишем в лог.
func logFailure(ctx context.Context, log ports.Logger, op string, result domain.ServiceResult) {
	for _, msg := range result.Messages {
		log.Warnf(ctx, "%s rejected: key=%s text=%s", op, msg.Key, msg.Text)
	}
	if len(result.Messages) == 0 {
		log.Warnf(ctx, "%s rejected without messages", op)
	}
}

func observe(op, outcome string) {
	metrics.CartMutations.WithLabelValues(op, outcome).Inc()
}

func outcomeOf(result domain.ServiceResult) string {
	if result.Success {
		return outcomeOK
	}
	return outcomeFailed
}
