package usecase

import (
	"context"

	"github.com/Gunvolt24/wb_cart/internal/domain"
)

// GetParties — адресная книга посетителя.
func (s *CartService) GetParties(ctx context.Context, _ domain.Storefront, v domain.Visitor) domain.Response[[]domain.CommerceParty] {
	res, err := s.parties.GetParties(ctx, v.ID)
	if err != nil {
		return domain.NewResponse(systemError(ctx, s.log, "get parties", err), []domain.CommerceParty(nil))
	}
	if !res.Success {
		logFailure(ctx, s.log, "get parties", res.ServiceResult)
	}
	return domain.NewResponse(res.ServiceResult, res.Parties)
}

// SaveParties — адреса без ExternalID создаются, остальные обновляются.
// Возвращает адреса с назначенными идентификаторами в исходном порядке.
func (s *CartService) SaveParties(ctx context.Context, _ domain.Storefront, v domain.Visitor, parties []domain.CommerceParty) domain.Response[[]domain.CommerceParty] {
	const op = "save_parties"
	if len(parties) == 0 {
		observe(op, outcomeInvalid)
		return domain.NewResponse(domain.Fail(domain.MsgInvalidInput, "no parties to save"), []domain.CommerceParty(nil))
	}
	s.invalidate(ctx, v.ID)

	if v.IsAuthenticated {
		res, err := s.parties.RegisterCustomer(ctx, v.ID, v.Email)
		if err != nil {
			observe(op, outcomeError)
			return domain.NewResponse(systemError(ctx, s.log, "register customer", err), []domain.CommerceParty(nil))
		}
		if !res.Success {
			logFailure(ctx, s.log, "register customer", res)
			observe(op, outcomeFailed)
			return domain.NewResponse(res, []domain.CommerceParty(nil))
		}
	}

	saved := make([]domain.CommerceParty, len(parties))
	copy(saved, parties)

	var created, updated []domain.PartyEntity
	for i := range saved {
		if saved[i].ExternalID == "" {
			created = append(created, &saved[i])
		} else {
			updated = append(updated, &saved[i])
		}
	}

	result := domain.OK()
	if len(created) > 0 {
		res, err := s.parties.AddParties(ctx, v.ID, created)
		if err != nil {
			observe(op, outcomeError)
			return domain.NewResponse(systemError(ctx, s.log, "add parties", err), []domain.CommerceParty(nil))
		}
		result.Append(res.ServiceResult)
		if !res.Success {
			logFailure(ctx, s.log, "add parties", res.ServiceResult)
			observe(op, outcomeFailed)
			result.Success = false
			return domain.NewResponse(result, saved)
		}
	}
	if len(updated) > 0 {
		res, err := s.parties.UpdateParties(ctx, v.ID, updated)
		if err != nil {
			observe(op, outcomeError)
			return domain.NewResponse(systemError(ctx, s.log, "update parties", err), []domain.CommerceParty(nil))
		}
		result.Append(res)
		if !res.Success {
			logFailure(ctx, s.log, "update parties", res)
			result.Success = false
		}
	}

	observe(op, outcomeOf(result))
	return domain.NewResponse(result, saved)
}

// RemoveParties — удаление адресов по идентификаторам.
func (s *CartService) RemoveParties(ctx context.Context, _ domain.Storefront, v domain.Visitor, partyIDs []string) domain.Response[bool] {
	const op = "remove_parties"
	if len(partyIDs) == 0 {
		observe(op, outcomeInvalid)
		return domain.NewResponse(domain.Fail(domain.MsgInvalidInput, "no parties to remove"), false)
	}
	s.invalidate(ctx, v.ID)

	entities := make([]domain.PartyEntity, 0, len(partyIDs))
	for _, id := range partyIDs {
		entities = append(entities, &domain.Party{ExternalID: id})
	}

	res, err := s.parties.RemoveParties(ctx, v.ID, entities)
	if err != nil {
		observe(op, outcomeError)
		return domain.NewResponse(systemError(ctx, s.log, op, err), false)
	}
	if !res.Success {
		logFailure(ctx, s.log, op, res)
	}
	observe(op, outcomeOf(res))
	return domain.NewResponse(res, res.Success)
}
