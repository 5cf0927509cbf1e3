package repo

import (
	"context"

	"github.com/Beka01247/menu-order/internal/domain"
)

type OrderStatusAuditRepository interface {
	Create(ctx context.Context, audit *domain.OrderStatusAudit) error
	GetByOrderNumber(ctx context.Context, orderNumber string, limit int) ([]domain.OrderStatusAudit, error)
}
