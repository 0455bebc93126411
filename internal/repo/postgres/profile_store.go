package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/ports"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что ProfileStore удовлетворяет интерфейсу ProfileStore.
var _ ports.ProfileStore = (*ProfileStore)(nil)

// ProfileStore — профили адресов и записи покупателей на Postgres.
type ProfileStore struct {
	pool *pgxpool.Pool
}

// NewProfileStore - конструктор ProfileStore.
func NewProfileStore(pool *pgxpool.Pool) *ProfileStore { return &ProfileStore{pool: pool} }

// CreateProfile — пустой профиль с новым id.
func (s *ProfileStore) CreateProfile(ctx context.Context) (*domain.Profile, error) {
	profile := &domain.Profile{ID: uuid.NewString(), Properties: map[string]string{}}
	if _, err := s.pool.Exec(ctx, `INSERT INTO profiles (id) VALUES ($1)`, profile.ID); err != nil {
		return nil, fmt.Errorf("insert profile: %w", err)
	}
	return profile, nil
}

// GetProfile — профиль по id. Если не нашли, возвращает (nil, nil).
func (s *ProfileStore) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, `SELECT properties FROM profiles WHERE id = $1`, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select profile: %w", err)
	}

	profile := &domain.Profile{ID: id, Properties: map[string]string{}}
	if err := unmarshalJSON(raw, &profile.Properties); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", id, err)
	}
	return profile, nil
}

// SaveProfile — upsert свойств профиля.
func (s *ProfileStore) SaveProfile(ctx context.Context, profile *domain.Profile) error {
	if profile == nil || profile.ID == "" {
		return errors.New("profile is empty or id is required")
	}
	props := profile.Properties
	if props == nil {
		props = map[string]string{}
	}
	raw, err := marshalJSON(props)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if _, err := s.pool.Exec(ctx, `
		INSERT INTO profiles (id, properties) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET properties = EXCLUDED.properties
	`, profile.ID, raw); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

// DeleteProfile — отсутствие профиля не ошибка.
func (s *ProfileStore) DeleteProfile(ctx context.Context, id string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

// GetCustomer — запись покупателя. Если не нашли, возвращает (nil, nil).
// NULL в address_list возвращается как nil, пустой массив — как пустой срез.
func (s *ProfileStore) GetCustomer(ctx context.Context, customerID string) (*domain.CustomerProfile, error) {
	customer := &domain.CustomerProfile{ID: customerID}
	err := s.pool.QueryRow(ctx, `
		SELECT email, address_list, preferred_address FROM customers WHERE id = $1
	`, customerID).Scan(&customer.Email, &customer.AddressList, &customer.PreferredAddress)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select customer: %w", err)
	}
	return customer, nil
}

// SaveCustomer — upsert записи покупателя.
func (s *ProfileStore) SaveCustomer(ctx context.Context, customer *domain.CustomerProfile) error {
	if customer == nil || customer.ID == "" {
		return errors.New("customer is empty or id is required")
	}
	if _, err := s.pool.Exec(ctx, `
		INSERT INTO customers (id, email, address_list, preferred_address) VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			address_list = EXCLUDED.address_list,
			preferred_address = EXCLUDED.preferred_address
	`, customer.ID, customer.Email, customer.AddressList, customer.PreferredAddress); err != nil {
		return fmt.Errorf("upsert customer: %w", err)
	}
	return nil
}
