package memory

import (
	"context"
	"testing"
	"time"

	"github.com/Beka01247/menu-order/internal/domain"
	"github.com/Beka01247/menu-order/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestImportTaskRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	r := NewImportTaskRepository()
	task := &domain.ImportTask{Status: domain.ImportQueued, SpreadsheetID: "sheet-1"}

	require.NoError(t, r.Create(ctx, task))
	require.False(t, task.ID.IsZero())

	require.NoError(t, r.UpdateStatus(ctx, task.ID, domain.ImportFailed, "boom"))
	require.NoError(t, r.IncrementRetryCount(ctx, task.ID))
	require.NoError(t, r.Complete(ctx, task.ID, 12))

	got, err := r.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ImportCompleted, got.Status)
	assert.Equal(t, 12, got.ItemCount)
	assert.Equal(t, 1, got.RetryCount)
	assert.Empty(t, got.ErrorMessage)
}

func TestImportTaskRepository_NotFound(t *testing.T) {
	r := NewImportTaskRepository()

	_, err := r.GetByID(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, repo.ErrNotFound)

	err = r.Complete(context.Background(), primitive.NewObjectID(), 1)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestOrderStatusAuditRepository_NewestFirstWithLimit(t *testing.T) {
	ctx := context.Background()
	r := NewOrderStatusAuditRepository()
	base := time.Date(2025, 4, 8, 12, 0, 0, 0, time.UTC)

	for i, status := range []domain.OrderStatus{domain.StatusOutForDelivery, domain.StatusDelivered, domain.StatusCompleted} {
		require.NoError(t, r.Create(ctx, &domain.OrderStatusAudit{
			OrderNumber: "#1",
			NewStatus:   status,
			Timestamp:   base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, r.Create(ctx, &domain.OrderStatusAudit{OrderNumber: "#2", NewStatus: domain.StatusReadyForPickup}))

	audits, err := r.GetByOrderNumber(ctx, "#1", 2)
	require.NoError(t, err)
	require.Len(t, audits, 2)
	assert.Equal(t, domain.StatusCompleted, audits[0].NewStatus)
	assert.Equal(t, domain.StatusDelivered, audits[1].NewStatus)
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	r := NewSessionRepository()
	session := domain.NewSession("s-1", time.Now())

	require.NoError(t, r.Create(ctx, session))
	assert.Error(t, r.Create(ctx, session))

	got, err := r.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Same(t, session, got)

	_, err = r.Get(ctx, "missing")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestCatalogRepository_ReplaceAll(t *testing.T) {
	ctx := context.Background()
	r := NewCatalogRepository([]domain.MenuItem{{ID: "a"}})

	require.NoError(t, r.ReplaceAll(ctx, []domain.MenuItem{{ID: "b"}, {ID: "c"}}))

	items, err := r.LoadCatalog(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].ID)
}
