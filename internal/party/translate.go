package party

import (
	"strings"

	"github.com/Gunvolt24/wb_cart/internal/domain"
)

// Свойства профиля адреса во внешнем хранилище.
const (
	PropName        = "GeneralInfo.address_name"
	PropFirstName   = "GeneralInfo.first_name"
	PropLastName    = "GeneralInfo.last_name"
	PropLine1       = "GeneralInfo.address_line1"
	PropLine2       = "GeneralInfo.address_line2"
	PropCity        = "GeneralInfo.city"
	PropRegionCode  = "GeneralInfo.region_code"
	PropRegionName  = "GeneralInfo.region_name"
	PropState       = "GeneralInfo.state" // то же значение, что region_code; читатели используют оба
	PropPostalCode  = "GeneralInfo.zip_postal_code"
	PropCountryCode = "GeneralInfo.country_code"
	PropCountryName = "GeneralInfo.country_name"
	PropPhone       = "GeneralInfo.tel_number"
	PropEmail       = "GeneralInfo.email_address"
)

// commerceView — сведение PartyEntity к CommerceParty.
// Для базового Party недостающие коды берутся из State/Country.
func commerceView(entity domain.PartyEntity) domain.CommerceParty {
	switch p := entity.(type) {
	case *domain.CommerceParty:
		return *p
	case *domain.Party:
		return domain.CommerceParty{Party: *p, CountryCode: p.Country, RegionCode: p.State}
	default:
		return domain.CommerceParty{Party: *entity.BaseParty()}
	}
}

// toProfile — перенос полей адреса в свойства профиля (поверх существующих).
func toProfile(entity domain.PartyEntity, profile *domain.Profile) {
	cp := commerceView(entity)

	regionCode := cp.RegionCode
	if regionCode == "" {
		regionCode = cp.State
	}
	countryCode := cp.CountryCode
	if countryCode == "" {
		countryCode = cp.Country
	}
	name := cp.Name
	if name == "" {
		name = strings.TrimSpace(cp.FirstName + " " + cp.LastName)
	}

	if profile.Properties == nil {
		profile.Properties = make(map[string]string)
	}
	props := profile.Properties
	props[PropName] = name
	props[PropFirstName] = cp.FirstName
	props[PropLastName] = cp.LastName
	props[PropLine1] = cp.Address1
	props[PropLine2] = cp.Address2
	props[PropCity] = cp.City
	props[PropRegionCode] = regionCode
	props[PropRegionName] = cp.RegionName
	props[PropState] = regionCode
	props[PropPostalCode] = cp.ZipPostalCode
	props[PropCountryCode] = countryCode
	props[PropCountryName] = cp.Country
	props[PropPhone] = cp.PhoneNumber
	props[PropEmail] = cp.Email
}

// fromProfile — обратный перевод профиля в CommerceParty.
func fromProfile(profile *domain.Profile) domain.CommerceParty {
	props := profile.Properties
	regionCode := props[PropRegionCode]
	if regionCode == "" {
		regionCode = props[PropState]
	}
	return domain.CommerceParty{
		Party: domain.Party{
			ExternalID:    profile.ID,
			FirstName:     props[PropFirstName],
			LastName:      props[PropLastName],
			Address1:      props[PropLine1],
			Address2:      props[PropLine2],
			City:          props[PropCity],
			State:         regionCode,
			ZipPostalCode: props[PropPostalCode],
			Country:       props[PropCountryName],
			PhoneNumber:   props[PropPhone],
			Email:         props[PropEmail],
		},
		Name:        props[PropName],
		CountryCode: props[PropCountryCode],
		RegionCode:  regionCode,
		RegionName:  props[PropRegionName],
	}
}
