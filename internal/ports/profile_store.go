package ports

import (
	"context"

	"github.com/Gunvolt24/wb_cart/internal/domain"
)

// ProfileStore — внешнее хранилище профилей (адреса и записи покупателей).
// Get* возвращают (nil, nil), если записи нет.
type ProfileStore interface {
	CreateProfile(ctx context.Context) (*domain.Profile, error)
	GetProfile(ctx context.Context, id string) (*domain.Profile, error)
	SaveProfile(ctx context.Context, profile *domain.Profile) error
	DeleteProfile(ctx context.Context, id string) error

	GetCustomer(ctx context.Context, customerID string) (*domain.CustomerProfile, error)
	SaveCustomer(ctx context.Context, customer *domain.CustomerProfile) error
}
