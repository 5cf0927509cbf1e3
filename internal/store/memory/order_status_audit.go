package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Beka01247/menu-order/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatusAuditRepository struct {
	mu     sync.RWMutex
	audits []domain.OrderStatusAudit
}

func NewOrderStatusAuditRepository() *OrderStatusAuditRepository {
	return &OrderStatusAuditRepository{}
}

func (r *OrderStatusAuditRepository) Create(ctx context.Context, audit *domain.OrderStatusAudit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if audit.ID.IsZero() {
		audit.ID = primitive.NewObjectID()
	}
	if audit.Timestamp.IsZero() {
		audit.Timestamp = time.Now()
	}
	r.audits = append(r.audits, *audit)
	return nil
}

// GetByOrderNumber returns the newest entries first.
func (r *OrderStatusAuditRepository) GetByOrderNumber(ctx context.Context, orderNumber string, limit int) ([]domain.OrderStatusAudit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []domain.OrderStatusAudit{}
	for i := len(r.audits) - 1; i >= 0; i-- {
		if r.audits[i].OrderNumber == orderNumber {
			result = append(result, r.audits[i])
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
