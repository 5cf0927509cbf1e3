package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Beka01247/menu-order/internal/catalog"
	"github.com/Beka01247/menu-order/internal/domain"
	"github.com/Beka01247/menu-order/internal/queue"
	"github.com/Beka01247/menu-order/internal/repo"
	"github.com/Beka01247/menu-order/internal/store/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeParser struct {
	items []domain.MenuItem
	err   error
	calls int
}

func (p *fakeParser) ParseCatalog(ctx context.Context, spreadsheetID string) ([]domain.MenuItem, error) {
	p.calls++
	return p.items, p.err
}

func newImportService(env *testEnv, parser CatalogParser) *ImportService {
	return NewImportService(env.tasks, env.catalogDB, parser, env.store, env.broker, memory.NewStorage(), zapNop())
}

func TestImportService_Unconfigured(t *testing.T) {
	env := newTestEnv(t)
	svc := newImportService(env, nil)

	_, err := svc.CreateImportTask(context.Background(), "sheet-1")

	assert.ErrorIs(t, err, ErrImportUnavailable)
	assert.Equal(t, 0, env.broker.Pending(queue.QueueCatalogImport))
}

func TestImportService_ProcessImportTask(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	imported := []domain.MenuItem{{
		ID:       "soup-1",
		Name:     "Tomato Soup",
		Price:    decimal.RequireFromString("5.49"),
		Category: domain.CategoryStarter,
	}}
	parser := &fakeParser{items: imported}
	svc := newImportService(env, parser)

	task, err := svc.CreateImportTask(ctx, "sheet-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ImportQueued, task.Status)
	assert.Equal(t, 1, env.broker.Pending(queue.QueueCatalogImport))

	require.NoError(t, svc.ProcessImportTask(ctx, task.ID))

	got, err := svc.GetTaskStatus(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ImportCompleted, got.Status)
	assert.Equal(t, 1, got.ItemCount)

	stored, err := env.catalogDB.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, imported, stored)

	item, ok := env.store.Item("soup-1")
	require.True(t, ok)
	assert.Equal(t, "Tomato Soup", item.Name)
	_, ok = env.store.Item(catalog.ItemID("Classic Burger"))
	assert.False(t, ok)

	// completed tasks are not parsed again
	require.NoError(t, svc.ProcessImportTask(ctx, task.ID))
	assert.Equal(t, 1, parser.calls)
}

func TestImportService_ProcessImportTaskFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := newImportService(env, &fakeParser{err: errors.New("sheet unavailable")})

	task, err := svc.CreateImportTask(ctx, "sheet-1")
	require.NoError(t, err)

	err = svc.ProcessImportTask(ctx, task.ID)
	require.Error(t, err)

	got, err := svc.GetTaskStatus(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ImportFailed, got.Status)
	assert.Equal(t, "sheet unavailable", got.ErrorMessage)
	assert.Equal(t, 1, got.RetryCount)

	// the served catalog is untouched
	_, ok := env.store.Item(catalog.ItemID("Classic Burger"))
	assert.True(t, ok)
}

func TestImportService_GetTaskStatusNotFound(t *testing.T) {
	env := newTestEnv(t)
	svc := newImportService(env, &fakeParser{})

	_, err := svc.GetTaskStatus(context.Background(), primitive.NewObjectID())

	assert.ErrorIs(t, err, repo.ErrNotFound)
}
