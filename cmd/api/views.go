package main

import (
	"time"

	"github.com/Beka01247/menu-order/internal/domain"
	"github.com/shopspring/decimal"
)

// Amounts are rendered with two decimals; the exact values stay in the domain.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type OrderLineResponse struct {
	ID                  string          `json:"id"`
	Item                domain.MenuItem `json:"item"`
	Quantity            int             `json:"quantity"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
	Total               string          `json:"total"`
}

type OrderResponse struct {
	OrderNumber              string                `json:"order_number,omitempty"`
	Status                   domain.OrderStatus    `json:"status"`
	StatusLabel              string                `json:"status_label"`
	Lines                    []OrderLineResponse   `json:"lines"`
	ItemCount                int                   `json:"item_count"`
	Subtotal                 string                `json:"subtotal"`
	Tax                      string                `json:"tax"`
	DeliveryFee              string                `json:"delivery_fee"`
	Total                    string                `json:"total"`
	DeliveryAddress          *domain.Address       `json:"delivery_address,omitempty"`
	PaymentMethod            *domain.PaymentMethod `json:"payment_method,omitempty"`
	RequestedDeliveryTime    *time.Time            `json:"requested_delivery_time,omitempty"`
	SpecialInstructions      string                `json:"special_instructions,omitempty"`
	EstimatedDeliveryMinutes int                   `json:"estimated_delivery_minutes"`
	CheckoutIssues           []string              `json:"checkout_issues,omitempty"`
}

func newOrderResponse(order *domain.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, OrderLineResponse{
			ID:                  line.ID,
			Item:                line.Item,
			Quantity:            line.Quantity,
			SpecialInstructions: line.SpecialInstructions,
			Total:               money(line.Total()),
		})
	}

	resp := OrderResponse{
		OrderNumber:              order.OrderNumber,
		Status:                   order.Status,
		StatusLabel:              order.Status.Label(),
		Lines:                    lines,
		ItemCount:                order.ItemCount(),
		Subtotal:                 money(order.Subtotal()),
		Tax:                      money(order.Tax()),
		DeliveryFee:              money(order.DeliveryFee()),
		Total:                    money(order.Total()),
		DeliveryAddress:          order.DeliveryAddress,
		PaymentMethod:            order.PaymentMethod,
		RequestedDeliveryTime:    order.RequestedDeliveryTime,
		SpecialInstructions:      order.SpecialInstructions,
		EstimatedDeliveryMinutes: int(order.EstimatedDelivery / time.Minute),
	}
	if order.Status == domain.StatusCart {
		if err := order.CheckoutErrors(); err != nil {
			resp.CheckoutIssues = checkoutIssues(err)
		}
	}
	return resp
}

type HistoricalOrderResponse struct {
	ID              string              `json:"id"`
	OrderNumber     string              `json:"order_number"`
	PlacedAt        time.Time           `json:"placed_at"`
	Status          domain.OrderStatus  `json:"status"`
	Lines           []OrderLineResponse `json:"lines"`
	Total           string              `json:"total"`
	DeliveryAddress *domain.Address     `json:"delivery_address,omitempty"`
}

func newHistoryResponse(history []domain.HistoricalOrder) []HistoricalOrderResponse {
	resp := make([]HistoricalOrderResponse, 0, len(history))
	for _, entry := range history {
		lines := make([]OrderLineResponse, 0, len(entry.Lines))
		for _, line := range entry.Lines {
			lines = append(lines, OrderLineResponse{
				ID:                  line.ID,
				Item:                line.Item,
				Quantity:            line.Quantity,
				SpecialInstructions: line.SpecialInstructions,
				Total:               money(line.Total()),
			})
		}
		resp = append(resp, HistoricalOrderResponse{
			ID:              entry.ID,
			OrderNumber:     entry.OrderNumber,
			PlacedAt:        entry.PlacedAt,
			Status:          entry.Status,
			Lines:           lines,
			Total:           money(entry.Total),
			DeliveryAddress: entry.DeliveryAddress,
		})
	}
	return resp
}

type ProfileResponse struct {
	Name                   string                    `json:"name"`
	Email                  string                    `json:"email"`
	Phone                  string                    `json:"phone"`
	IsLoggedIn             bool                      `json:"is_logged_in"`
	SavedAddresses         []domain.Address          `json:"saved_addresses"`
	Favorites              []domain.MenuItem         `json:"favorites"`
	History                []HistoricalOrderResponse `json:"history"`
	PreferredPaymentMethod *domain.PaymentMethod     `json:"preferred_payment_method,omitempty"`
	LoyaltyPoints          int                       `json:"loyalty_points"`
	Notifications          bool                      `json:"notifications"`
	SpecialOffers          bool                      `json:"special_offers"`
	DarkMode               bool                      `json:"dark_mode"`
}

func newProfileResponse(profile *domain.Profile) ProfileResponse {
	return ProfileResponse{
		Name:                   profile.Name,
		Email:                  profile.Email,
		Phone:                  profile.Phone,
		IsLoggedIn:             profile.IsLoggedIn(),
		SavedAddresses:         profile.SavedAddresses,
		Favorites:              profile.Favorites,
		History:                newHistoryResponse(profile.History),
		PreferredPaymentMethod: profile.PreferredPaymentMethod,
		LoyaltyPoints:          profile.LoyaltyPoints,
		Notifications:          profile.Notifications,
		SpecialOffers:          profile.SpecialOffers,
		DarkMode:               profile.DarkMode,
	}
}
