package domain

import "time"

type CatalogImportMessage struct {
	TaskID        string `json:"task_id"`
	SpreadsheetID string `json:"spreadsheet_id"`
}

type OrderStatusEvent struct {
	EventType   string      `json:"event_type"`
	SessionID   string      `json:"session_id"`
	OrderNumber string      `json:"order_number"`
	OldStatus   OrderStatus `json:"old_status"`
	NewStatus   OrderStatus `json:"new_status"`
	Reason      string      `json:"reason"`
	Timestamp   time.Time   `json:"timestamp"`
	UserID      string      `json:"user_id"`
}

type OrderPlacedEvent struct {
	EventType     string        `json:"event_type"`
	SessionID     string        `json:"session_id"`
	OrderNumber   string        `json:"order_number"`
	ItemCount     int           `json:"item_count"`
	Total         string        `json:"total"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Address       string        `json:"address"`
	Timestamp     time.Time     `json:"timestamp"`
}

const (
	EventOrderPlaced        = "order.placed"
	EventOrderStatusChanged = "order.status_changed"
)
