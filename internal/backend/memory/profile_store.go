package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/ports"
	"github.com/google/uuid"
)

var _ ports.ProfileStore = (*ProfileStore)(nil)

// ProfileStore — профили адресов и записи покупателей в памяти процесса.
type ProfileStore struct {
	mu        sync.RWMutex
	profiles  map[string]map[string]string
	customers map[string]domain.CustomerProfile
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{
		profiles:  make(map[string]map[string]string),
		customers: make(map[string]domain.CustomerProfile),
	}
}

func (s *ProfileStore) CreateProfile(context.Context) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.profiles[id] = map[string]string{}
	return &domain.Profile{ID: id, Properties: map[string]string{}}, nil
}

func (s *ProfileStore) GetProfile(_ context.Context, id string) (*domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	props, ok := s.profiles[id]
	if !ok {
		return nil, nil
	}
	return &domain.Profile{ID: id, Properties: copyProps(props)}, nil
}

func (s *ProfileStore) SaveProfile(_ context.Context, profile *domain.Profile) error {
	if profile == nil || profile.ID == "" {
		return errors.New("profile id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[profile.ID]; !ok {
		return errors.New("profile not found: " + profile.ID)
	}
	s.profiles[profile.ID] = copyProps(profile.Properties)
	return nil
}

func (s *ProfileStore) DeleteProfile(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, id)
	return nil
}

func (s *ProfileStore) GetCustomer(_ context.Context, customerID string) (*domain.CustomerProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	customer, ok := s.customers[customerID]
	if !ok {
		return nil, nil
	}
	if customer.AddressList != nil {
		customer.AddressList = append([]string{}, customer.AddressList...)
	}
	return &customer, nil
}

func (s *ProfileStore) SaveCustomer(_ context.Context, customer *domain.CustomerProfile) error {
	if customer == nil || customer.ID == "" {
		return errors.New("customer id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *customer
	if customer.AddressList != nil {
		stored.AddressList = append([]string{}, customer.AddressList...)
	}
	s.customers[customer.ID] = stored
	return nil
}

func copyProps(props map[string]string) map[string]string {
	out := make(map[string]string, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out
}
