package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_IsLoggedIn(t *testing.T) {
	p := NewProfile()
	assert.False(t, p.IsLoggedIn())

	p.Name = "John Doe"
	assert.False(t, p.IsLoggedIn())

	p.Email = "john.doe@example.com"
	assert.True(t, p.IsLoggedIn())
}

func TestProfile_FavoritesAreASet(t *testing.T) {
	p := NewProfile()
	burger := testItem("burger", "Classic Burger", "9.99")
	cake := testItem("cake", "Chocolate Cake", "6.99")

	p.AddToFavorites(burger)
	p.AddToFavorites(burger)
	p.AddToFavorites(cake)
	require.Len(t, p.Favorites, 2)

	p.RemoveFromFavorites(burger.ID)
	p.RemoveFromFavorites("missing")

	require.Len(t, p.Favorites, 1)
	assert.Equal(t, "cake", p.Favorites[0].ID)
	assert.False(t, p.IsFavorite(burger.ID))
}

func TestProfile_SaveAddressDeduplicatesByFormattedText(t *testing.T) {
	p := NewProfile()
	home := Address{Street: "123 Main St", Apartment: "Apt 4B", City: "San Francisco", State: "CA", ZipCode: "94105", Label: "Home"}
	sameText := home
	sameText.Label = "Other"

	p.SaveAddress(home)
	p.SaveAddress(sameText)

	require.Len(t, p.SavedAddresses, 1)
	assert.True(t, p.SavedAddresses[0].IsSaved)
	assert.Equal(t, "Home", p.SavedAddresses[0].Label)
	assert.Equal(t, "123 Main St, Apt 4B, San Francisco, CA 94105", p.SavedAddresses[0].Formatted())
}

func TestProfile_RemoveAddress(t *testing.T) {
	p := NewProfile()
	home := Address{Street: "123 Main St", City: "San Francisco", State: "CA", ZipCode: "94105"}
	work := Address{Street: "456 Market St", City: "San Francisco", State: "CA", ZipCode: "94103", Label: "Work"}
	p.SaveAddress(home)
	p.SaveAddress(work)

	p.RemoveAddress(Address{Street: "123 Main St", City: "San Francisco", State: "CA", ZipCode: "94105", Label: "ignored"})

	require.Len(t, p.SavedAddresses, 1)
	assert.Equal(t, "Work", p.SavedAddresses[0].Label)
}

func TestProfile_SaveAddressDefaultsLabel(t *testing.T) {
	p := NewProfile()

	p.SaveAddress(Address{Street: "123 Main St", City: "San Francisco", State: "CA", ZipCode: "94105"})

	assert.Equal(t, DefaultAddressLabel, p.SavedAddresses[0].Label)
}

func TestProfile_ArchiveOrderCreditsLoyalty(t *testing.T) {
	p := NewProfile()
	o := NewOrder()
	o.AddItem(testItem("burger", "Classic Burger", "5.99"), 4)
	o.SetDeliveryAddress(Address{Street: "123 Main St"})
	o.SetPaymentMethod(PaymentApplePay)
	require.NoError(t, o.Checkout())
	require.Equal(t, "23.96", o.Subtotal().String())
	placedAt := time.Date(2025, 4, 8, 12, 30, 0, 0, time.UTC)

	entry := p.ArchiveOrder(o, placedAt)

	assert.Equal(t, 2, p.LoyaltyPoints)
	require.Len(t, p.History, 1)
	assert.True(t, p.History[0].Total.Equal(o.Total()))
	assert.Equal(t, o.OrderNumber, entry.OrderNumber)
	assert.Equal(t, StatusPreparing, entry.Status)
	assert.Equal(t, placedAt, entry.PlacedAt)
	assert.NotEmpty(t, entry.ID)
}

func TestProfile_HistoryIsASnapshot(t *testing.T) {
	p := NewProfile()
	o := placedOrder(t)
	p.ArchiveOrder(o, time.Now())

	o.Lines[0].Quantity = 10
	require.NoError(t, o.Advance(StatusOutForDelivery))

	assert.Equal(t, 1, p.History[0].Lines[0].Quantity)
	assert.Equal(t, StatusPreparing, p.History[0].Status)
}

func TestProfile_HistoryAppendsInOrder(t *testing.T) {
	p := NewProfile()
	first := placedOrder(t)
	second := placedOrder(t)
	second.OrderNumber = "#second"

	p.ArchiveOrder(first, time.Now())
	p.ArchiveOrder(second, time.Now())

	require.Len(t, p.History, 2)
	assert.Equal(t, "#second", p.History[1].OrderNumber)
}

func TestLoyaltyPointsFor(t *testing.T) {
	tests := []struct {
		subtotal string
		want     int
	}{
		{"0", 0},
		{"9.99", 0},
		{"10", 1},
		{"23.96", 2},
		{"99.99", 9},
		{"-5", 0},
	}

	for _, tt := range tests {
		t.Run(tt.subtotal, func(t *testing.T) {
			assert.Equal(t, tt.want, LoyaltyPointsFor(decimal.RequireFromString(tt.subtotal)))
		})
	}
}

func TestProfile_LogoutKeepsAddressesAndDarkMode(t *testing.T) {
	p := NewProfile()
	p.Name = "John Doe"
	p.Email = "john.doe@example.com"
	p.Phone = "555-123-4567"
	p.DarkMode = true
	p.LoyaltyPoints = 45
	method := PaymentApplePay
	p.PreferredPaymentMethod = &method
	p.SaveAddress(Address{Street: "123 Main St", City: "San Francisco", State: "CA", ZipCode: "94105"})
	p.AddToFavorites(testItem("burger", "Classic Burger", "9.99"))
	p.ArchiveOrder(placedOrder(t), time.Now())

	p.Logout()

	assert.False(t, p.IsLoggedIn())
	assert.Empty(t, p.Phone)
	assert.Empty(t, p.Favorites)
	assert.Empty(t, p.History)
	assert.Nil(t, p.PreferredPaymentMethod)
	assert.Zero(t, p.LoyaltyPoints)
	assert.Len(t, p.SavedAddresses, 1)
	assert.True(t, p.DarkMode)
}

func TestProfile_CloneIsIndependent(t *testing.T) {
	p := NewProfile()
	p.AddToFavorites(MenuItem{ID: "a"})
	method := PaymentPayPal
	p.PreferredPaymentMethod = &method

	clone := p.Clone()
	p.AddToFavorites(MenuItem{ID: "b"})
	*p.PreferredPaymentMethod = PaymentApplePay

	assert.Len(t, clone.Favorites, 1)
	assert.Equal(t, PaymentPayPal, *clone.PreferredPaymentMethod)
	assert.NotNil(t, clone.History)
}
