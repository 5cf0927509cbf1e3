package domain

import "fmt"

type PaymentMethod string

const (
	PaymentApplePay   PaymentMethod = "Apple Pay"
	PaymentCreditCard PaymentMethod = "Credit Card"
	PaymentDebitCard  PaymentMethod = "Debit Card"
	PaymentPayPal     PaymentMethod = "PayPal"
)

var PaymentMethods = []PaymentMethod{
	PaymentApplePay,
	PaymentCreditCard,
	PaymentDebitCard,
	PaymentPayPal,
}

func (p PaymentMethod) Valid() bool {
	for _, known := range PaymentMethods {
		if p == known {
			return true
		}
	}
	return false
}

const DefaultAddressLabel = "Home"

type Address struct {
	Street    string `json:"street"`
	Apartment string `json:"apartment,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	IsSaved   bool   `json:"is_saved"`
	Label     string `json:"label"`
}

// Formatted is also the identity used to deduplicate saved addresses.
func (a Address) Formatted() string {
	formatted := a.Street
	if a.Apartment != "" {
		formatted += ", " + a.Apartment
	}
	return fmt.Sprintf("%s, %s, %s %s", formatted, a.City, a.State, a.ZipCode)
}
