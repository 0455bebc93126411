package party

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/ports"
)

var _ ports.PartyService = (*Pipeline)(nil)

// Pipeline — адресная книга покупателя поверх хранилища профилей:
// перевод адресов в профили и обратно, список адресов и предпочтительный адрес.
type Pipeline struct {
	store ports.ProfileStore
	log   ports.Logger
}

func NewPipeline(store ports.ProfileStore, log ports.Logger) *Pipeline {
	return &Pipeline{store: store, log: log}
}

// RegisterCustomer — заводит запись покупателя, если её нет; email обновляется.
func (p *Pipeline) RegisterCustomer(ctx context.Context, customerID, email string) (domain.ServiceResult, error) {
	if customerID == "" {
		return domain.Fail(domain.MsgCustomerNotFound, "customer id is empty"), nil
	}
	customer, err := p.store.GetCustomer(ctx, customerID)
	if err != nil {
		return domain.ServiceResult{}, fmt.Errorf("get customer: %w", err)
	}
	if customer == nil {
		customer = &domain.CustomerProfile{ID: customerID}
	} else if email == "" || customer.Email == email {
		return domain.OK(), nil
	}
	if email != "" {
		customer.Email = email
	}
	if err := p.store.SaveCustomer(ctx, customer); err != nil {
		return domain.ServiceResult{}, fmt.Errorf("save customer: %w", err)
	}
	return domain.OK(), nil
}

// GetParties — адреса из списка покупателя; primary — предпочтительный адрес.
// Профили, пропавшие из хранилища, пропускаются с предупреждением.
func (p *Pipeline) GetParties(ctx context.Context, customerID string) (domain.PartiesResult, error) {
	customer, fail, err := p.customer(ctx, customerID)
	if err != nil || customer == nil {
		return domain.PartiesResult{ServiceResult: fail}, err
	}

	result := domain.PartiesResult{ServiceResult: domain.OK(), Parties: []domain.CommerceParty{}}
	for _, id := range customer.AddressList {
		profile, err := p.store.GetProfile(ctx, id)
		if err != nil {
			return domain.PartiesResult{}, fmt.Errorf("get profile %s: %w", id, err)
		}
		if profile == nil {
			p.log.Warnf(ctx, "address %s of customer %s has no profile", id, customerID)
			continue
		}
		party := fromProfile(profile)
		party.IsPrimary = customer.PreferredAddress != "" && customer.PreferredAddress == id
		result.Parties = append(result.Parties, party)
	}
	return result, nil
}

// AddParties — новый профиль на каждый адрес; возвращает адреса с присвоенными id.
func (p *Pipeline) AddParties(ctx context.Context, customerID string, parties []domain.PartyEntity) (domain.PartiesResult, error) {
	customer, fail, err := p.customer(ctx, customerID)
	if err != nil || customer == nil {
		return domain.PartiesResult{ServiceResult: fail}, err
	}

	result := domain.PartiesResult{ServiceResult: domain.OK()}
	for _, entity := range parties {
		profile, err := p.store.CreateProfile(ctx)
		if err != nil {
			return domain.PartiesResult{}, p.keepProgress(ctx, customer, fmt.Errorf("create profile: %w", err))
		}
		toProfile(entity, profile)
		if err := p.store.SaveProfile(ctx, profile); err != nil {
			// профиль уже создан: привязываем его, чтобы не оставить сироту
			customer.AddressList = append(customer.AddressList, profile.ID)
			return domain.PartiesResult{}, p.keepProgress(ctx, customer, fmt.Errorf("save profile %s: %w", profile.ID, err))
		}

		customer.AddressList = append(customer.AddressList, profile.ID)
		if entity.BaseParty().IsPrimary {
			customer.PreferredAddress = profile.ID
		}

		entity.BaseParty().ExternalID = profile.ID
		added := fromProfile(profile)
		added.IsPrimary = entity.BaseParty().IsPrimary
		result.Parties = append(result.Parties, added)
	}

	if err := p.store.SaveCustomer(ctx, customer); err != nil {
		return domain.PartiesResult{}, fmt.Errorf("save customer: %w", err)
	}
	return result, nil
}

// UpdateParties — только адреса из списка покупателя.
// Предпочтительный адрес ставится при IsPrimary и снимается, только если принадлежал этому адресу.
func (p *Pipeline) UpdateParties(ctx context.Context, customerID string, parties []domain.PartyEntity) (domain.ServiceResult, error) {
	customer, fail, err := p.customer(ctx, customerID)
	if err != nil || customer == nil {
		return fail, err
	}

	result := domain.OK()
	for _, entity := range parties {
		base := entity.BaseParty()
		if !customer.HasAddress(base.ExternalID) {
			result.Success = false
			result.Append(domain.Fail(domain.MsgPartyNotFound, fmt.Sprintf("address %s not found", base.ExternalID)))
			continue
		}

		profile, err := p.store.GetProfile(ctx, base.ExternalID)
		if err != nil {
			return domain.ServiceResult{}, p.keepProgress(ctx, customer, fmt.Errorf("get profile %s: %w", base.ExternalID, err))
		}
		if profile == nil {
			result.Success = false
			result.Append(domain.Fail(domain.MsgPartyNotFound, fmt.Sprintf("profile %s not found", base.ExternalID)))
			continue
		}
		toProfile(entity, profile)
		if err := p.store.SaveProfile(ctx, profile); err != nil {
			return domain.ServiceResult{}, p.keepProgress(ctx, customer, fmt.Errorf("save profile %s: %w", profile.ID, err))
		}

		// маркер меняется только для адреса с живым профилем
		switch {
		case base.IsPrimary:
			customer.PreferredAddress = base.ExternalID
		case customer.PreferredAddress == base.ExternalID:
			customer.PreferredAddress = ""
		}
	}

	if err := p.store.SaveCustomer(ctx, customer); err != nil {
		return domain.ServiceResult{}, fmt.Errorf("save customer: %w", err)
	}
	return result, nil
}

// RemoveParties — удаляет профиль и id из списка; пустой список сбрасывается в nil.
func (p *Pipeline) RemoveParties(ctx context.Context, customerID string, parties []domain.PartyEntity) (domain.ServiceResult, error) {
	customer, fail, err := p.customer(ctx, customerID)
	if err != nil || customer == nil {
		return fail, err
	}

	result := domain.OK()
	for _, entity := range parties {
		id := entity.BaseParty().ExternalID
		if !customer.HasAddress(id) {
			result.Success = false
			result.Append(domain.Fail(domain.MsgPartyNotFound, fmt.Sprintf("address %s not found", id)))
			continue
		}
		if err := p.store.DeleteProfile(ctx, id); err != nil {
			return domain.ServiceResult{}, p.keepProgress(ctx, customer, fmt.Errorf("delete profile %s: %w", id, err))
		}

		kept := make([]string, 0, len(customer.AddressList))
		for _, existing := range customer.AddressList {
			if existing != id {
				kept = append(kept, existing)
			}
		}
		customer.AddressList = kept
		if customer.PreferredAddress == id {
			customer.PreferredAddress = ""
		}
	}
	if len(customer.AddressList) == 0 {
		customer.AddressList = nil
	}

	if err := p.store.SaveCustomer(ctx, customer); err != nil {
		return domain.ServiceResult{}, fmt.Errorf("save customer: %w", err)
	}
	return result, nil
}

// keepProgress — сохраняет запись покупателя с уже выполненной частью пакета
// и возвращает исходную ошибку (вместе с ошибкой сохранения, если она была).
func (p *Pipeline) keepProgress(ctx context.Context, customer *domain.CustomerProfile, cause error) error {
	if len(customer.AddressList) == 0 {
		customer.AddressList = nil
	}
	if err := p.store.SaveCustomer(ctx, customer); err != nil {
		p.log.Errorf(ctx, "save partial customer %s: %v", customer.ID, err)
		return errors.Join(cause, fmt.Errorf("save customer: %w", err))
	}
	return cause
}

// customer — запись покупателя; (nil, fail, nil) — покупатель не найден.
func (p *Pipeline) customer(ctx context.Context, customerID string) (*domain.CustomerProfile, domain.ServiceResult, error) {
	customer, err := p.store.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, domain.ServiceResult{}, fmt.Errorf("get customer: %w", err)
	}
	if customer == nil {
		return nil, domain.Fail(domain.MsgCustomerNotFound, fmt.Sprintf("customer %s not found", customerID)), nil
	}
	return customer, domain.ServiceResult{}, nil
}
