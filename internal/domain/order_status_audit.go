package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatusAudit struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID   string             `bson:"session_id" json:"session_id"`
	OrderNumber string             `bson:"order_number" json:"order_number"`
	EventType   string             `bson:"event_type" json:"event_type"`
	OldStatus   OrderStatus        `bson:"old_status" json:"old_status"`
	NewStatus   OrderStatus        `bson:"new_status" json:"new_status"`
	Reason      string             `bson:"reason" json:"reason"`
	UserID      string             `bson:"user_id" json:"user_id"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}
