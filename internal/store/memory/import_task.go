package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Beka01247/menu-order/internal/domain"
	"github.com/Beka01247/menu-order/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ImportTaskRepository struct {
	mu    sync.RWMutex
	tasks map[primitive.ObjectID]domain.ImportTask
}

func NewImportTaskRepository() *ImportTaskRepository {
	return &ImportTaskRepository{tasks: make(map[primitive.ObjectID]domain.ImportTask)}
}

func (r *ImportTaskRepository) Create(ctx context.Context, task *domain.ImportTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	r.tasks[task.ID] = *task
	return nil
}

func (r *ImportTaskRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ImportTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, fmt.Errorf("import task %s: %w", id.Hex(), repo.ErrNotFound)
	}
	return &task, nil
}

func (r *ImportTaskRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.ImportTaskStatus, errorMsg string) error {
	return r.update(id, func(task *domain.ImportTask) {
		task.Status = status
		if errorMsg != "" {
			task.ErrorMessage = errorMsg
		}
	})
}

func (r *ImportTaskRepository) Complete(ctx context.Context, id primitive.ObjectID, itemCount int) error {
	return r.update(id, func(task *domain.ImportTask) {
		task.Status = domain.ImportCompleted
		task.ItemCount = itemCount
		task.ErrorMessage = ""
	})
}

func (r *ImportTaskRepository) IncrementRetryCount(ctx context.Context, id primitive.ObjectID) error {
	return r.update(id, func(task *domain.ImportTask) {
		task.RetryCount++
	})
}

func (r *ImportTaskRepository) update(id primitive.ObjectID, apply func(task *domain.ImportTask)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return fmt.Errorf("import task %s: %w", id.Hex(), repo.ErrNotFound)
	}
	apply(&task)
	task.UpdatedAt = time.Now()
	r.tasks[id] = task
	return nil
}
