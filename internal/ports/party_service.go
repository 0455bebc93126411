package ports

import (
	"context"

	"github.com/Gunvolt24/wb_cart/internal/domain"
)

// PartyService — адресная книга покупателя (список адресов + предпочтительный адрес).
type PartyService interface {
	// RegisterCustomer — идемпотентно заводит запись покупателя (после аутентификации).
	RegisterCustomer(ctx context.Context, customerID, email string) (domain.ServiceResult, error)

	GetParties(ctx context.Context, customerID string) (domain.PartiesResult, error)
	AddParties(ctx context.Context, customerID string, parties []domain.PartyEntity) (domain.PartiesResult, error)
	UpdateParties(ctx context.Context, customerID string, parties []domain.PartyEntity) (domain.ServiceResult, error)
	RemoveParties(ctx context.Context, customerID string, parties []domain.PartyEntity) (domain.ServiceResult, error)
}
