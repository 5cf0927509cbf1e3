package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var loyaltyPointValue = decimal.NewFromInt(10)

type HistoricalOrder struct {
	ID              string          `json:"id"`
	Lines           []OrderLine     `json:"lines"`
	OrderNumber     string          `json:"order_number"`
	PlacedAt        time.Time       `json:"placed_at"`
	Total           decimal.Decimal `json:"total"`
	DeliveryAddress *Address        `json:"delivery_address,omitempty"`
	Status          OrderStatus     `json:"status"`
}

type Profile struct {
	Name                   string            `json:"name"`
	Email                  string            `json:"email"`
	Phone                  string            `json:"phone"`
	SavedAddresses         []Address         `json:"saved_addresses"`
	Favorites              []MenuItem        `json:"favorites"`
	History                []HistoricalOrder `json:"history"`
	PreferredPaymentMethod *PaymentMethod    `json:"preferred_payment_method,omitempty"`
	LoyaltyPoints          int               `json:"loyalty_points"`
	Notifications          bool              `json:"notifications"`
	SpecialOffers          bool              `json:"special_offers"`
	DarkMode               bool              `json:"dark_mode"`
}

func NewProfile() *Profile {
	return &Profile{
		SavedAddresses: []Address{},
		Favorites:      []MenuItem{},
		History:        []HistoricalOrder{},
		Notifications:  true,
		SpecialOffers:  true,
	}
}

func (p *Profile) IsLoggedIn() bool {
	return p.Name != "" && p.Email != ""
}

func (p *Profile) IsFavorite(itemID string) bool {
	for _, item := range p.Favorites {
		if item.ID == itemID {
			return true
		}
	}
	return false
}

func (p *Profile) AddToFavorites(item MenuItem) {
	if !p.IsFavorite(item.ID) {
		p.Favorites = append(p.Favorites, item)
	}
}

func (p *Profile) RemoveFromFavorites(itemID string) {
	kept := p.Favorites[:0]
	for _, item := range p.Favorites {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	p.Favorites = kept
}

// SaveAddress stores a copy flagged as saved unless an address with the same
// formatted text is already present.
func (p *Profile) SaveAddress(address Address) {
	formatted := address.Formatted()
	for _, saved := range p.SavedAddresses {
		if saved.Formatted() == formatted {
			return
		}
	}
	address.IsSaved = true
	if address.Label == "" {
		address.Label = DefaultAddressLabel
	}
	p.SavedAddresses = append(p.SavedAddresses, address)
}

func (p *Profile) RemoveAddress(address Address) {
	formatted := address.Formatted()
	kept := p.SavedAddresses[:0]
	for _, saved := range p.SavedAddresses {
		if saved.Formatted() != formatted {
			kept = append(kept, saved)
		}
	}
	p.SavedAddresses = kept
}

// ArchiveOrder appends an immutable snapshot of order and credits one loyalty
// point per full 10 of subtotal.
func (p *Profile) ArchiveOrder(order *Order, at time.Time) HistoricalOrder {
	snapshot := order.Clone()
	entry := HistoricalOrder{
		ID:              uuid.NewString(),
		Lines:           snapshot.Lines,
		OrderNumber:     snapshot.OrderNumber,
		PlacedAt:        at,
		Total:           snapshot.Total(),
		DeliveryAddress: snapshot.DeliveryAddress,
		Status:          snapshot.Status,
	}
	p.History = append(p.History, entry)
	p.LoyaltyPoints += LoyaltyPointsFor(order.Subtotal())
	return entry
}

func LoyaltyPointsFor(subtotal decimal.Decimal) int {
	if subtotal.IsNegative() {
		return 0
	}
	return int(subtotal.Div(loyaltyPointValue).Floor().IntPart())
}

// Logout clears identity and order data but keeps saved addresses and the
// appearance setting.
func (p *Profile) Logout() {
	p.Name = ""
	p.Email = ""
	p.Phone = ""
	p.Favorites = []MenuItem{}
	p.History = []HistoricalOrder{}
	p.PreferredPaymentMethod = nil
	p.LoyaltyPoints = 0
}

// Clone returns a copy whose slices can be read without holding the session
// lock.
func (p *Profile) Clone() *Profile {
	clone := *p
	clone.SavedAddresses = append(make([]Address, 0, len(p.SavedAddresses)), p.SavedAddresses...)
	clone.Favorites = append(make([]MenuItem, 0, len(p.Favorites)), p.Favorites...)
	clone.History = append(make([]HistoricalOrder, 0, len(p.History)), p.History...)
	if p.PreferredPaymentMethod != nil {
		method := *p.PreferredPaymentMethod
		clone.PreferredPaymentMethod = &method
	}
	return &clone
}
