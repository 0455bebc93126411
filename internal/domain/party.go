package domain

// PartyEntity — закрытое множество представлений адреса, с которыми работает конвейер профилей.
// Реализуют только Party и CommerceParty.
type PartyEntity interface {
	BaseParty() *Party
	isPartyEntity()
}

// Party — базовый адрес/контакт покупателя.
type Party struct {
	ExternalID    string `json:"external_id,omitempty"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	Address1      string `json:"address1,omitempty"`
	Address2      string `json:"address2,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	ZipPostalCode string `json:"zip_postal_code,omitempty"`
	Country       string `json:"country,omitempty"`
	PhoneNumber   string `json:"phone_number,omitempty"`
	Email         string `json:"email,omitempty"`
	IsPrimary     bool   `json:"is_primary"`
}

// CommerceParty — адрес с именем и кодами страны/региона.
type CommerceParty struct {
	Party
	Name        string `json:"name,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	RegionCode  string `json:"region_code,omitempty"`
	RegionName  string `json:"region_name,omitempty"`
}

func (p *Party) BaseParty() *Party { return p }
func (*Party) isPartyEntity()      {}

func (p *CommerceParty) BaseParty() *Party { return &p.Party }
func (*CommerceParty) isPartyEntity()      {}

// Profile — профиль адреса во внешнем хранилище: плоский набор свойств.
type Profile struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
}

// CustomerProfile — запись покупателя в хранилище профилей.
// AddressList == nil означает «поле не задано», это отличается от пустого списка.
type CustomerProfile struct {
	ID               string   `json:"id"`
	Email            string   `json:"email,omitempty"`
	AddressList      []string `json:"address_list"`
	PreferredAddress string   `json:"preferred_address,omitempty"`
}

// HasAddress — id входит в список адресов покупателя.
func (c *CustomerProfile) HasAddress(id string) bool {
	for _, existing := range c.AddressList {
		if existing == id {
			return true
		}
	}
	return false
}
