package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Beka01247/menu-order/internal/catalog"
	"github.com/Beka01247/menu-order/internal/domain"
	"github.com/Beka01247/menu-order/internal/metrics"
	"github.com/Beka01247/menu-order/internal/queue"
	"github.com/Beka01247/menu-order/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var ErrImportUnavailable = errors.New("catalog import is not configured")

// CatalogParser reads a full catalog from a spreadsheet.
type CatalogParser interface {
	ParseCatalog(ctx context.Context, spreadsheetID string) ([]domain.MenuItem, error)
}

type ImportService struct {
	importTaskRepo repo.ImportTaskRepository
	catalogRepo    repo.CatalogRepository
	parser         CatalogParser
	catalog        *catalog.Store
	broker         queue.Broker
	storage        repo.Storage
	logger         *zap.SugaredLogger
}

// NewImportService accepts a nil parser; imports are then rejected with
// ErrImportUnavailable.
func NewImportService(
	importTaskRepo repo.ImportTaskRepository,
	catalogRepo repo.CatalogRepository,
	parser CatalogParser,
	catalog *catalog.Store,
	broker queue.Broker,
	storage repo.Storage,
	logger *zap.SugaredLogger,
) *ImportService {
	return &ImportService{
		importTaskRepo: importTaskRepo,
		catalogRepo:    catalogRepo,
		parser:         parser,
		catalog:        catalog,
		broker:         broker,
		storage:        storage,
		logger:         logger,
	}
}

func (s *ImportService) CreateImportTask(ctx context.Context, spreadsheetID string) (*domain.ImportTask, error) {
	if s.parser == nil {
		return nil, ErrImportUnavailable
	}

	task := &domain.ImportTask{
		Status:        domain.ImportQueued,
		SpreadsheetID: spreadsheetID,
	}

	if err := s.importTaskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create import task: %w", err)
	}

	message := domain.CatalogImportMessage{
		TaskID:        task.ID.Hex(),
		SpreadsheetID: spreadsheetID,
	}

	messageBytes, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := s.broker.Publish(ctx, queue.QueueCatalogImport, messageBytes); err != nil {
		_ = s.importTaskRepo.UpdateStatus(ctx, task.ID, domain.ImportFailed, err.Error())
		return nil, fmt.Errorf("failed to publish message: %w", err)
	}

	s.logger.Infow("catalog import task created", "task_id", task.ID.Hex(), "spreadsheet_id", spreadsheetID)

	return task, nil
}

func (s *ImportService) GetTaskStatus(ctx context.Context, taskID primitive.ObjectID) (*domain.ImportTask, error) {
	task, err := s.importTaskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get import task: %w", err)
	}

	return task, nil
}

// ProcessImportTask parses the task's sheet and swaps it in as the catalog.
// The stored items and the task status change in one transaction; the served
// catalog is replaced only after the commit.
func (s *ImportService) ProcessImportTask(ctx context.Context, taskID primitive.ObjectID) error {
	if s.parser == nil {
		return ErrImportUnavailable
	}

	task, err := s.importTaskRepo.GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	if task.Status == domain.ImportCompleted {
		s.logger.Infow("catalog import task already completed", "task_id", taskID.Hex())
		return nil
	}

	if err := s.importTaskRepo.UpdateStatus(ctx, taskID, domain.ImportProcessing, ""); err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}

	s.logger.Infow("processing catalog import task", "task_id", taskID.Hex(), "retry_count", task.RetryCount)

	items, err := s.parser.ParseCatalog(ctx, task.SpreadsheetID)
	if err != nil {
		s.logger.Errorw("failed to parse catalog", "task_id", taskID.Hex(), "error", err)
		s.fail(ctx, taskID, err)
		return fmt.Errorf("failed to parse catalog: %w", err)
	}

	err = s.storage.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.catalogRepo.ReplaceAll(ctx, items); err != nil {
			return fmt.Errorf("failed to save catalog: %w", err)
		}
		if err := s.importTaskRepo.Complete(ctx, taskID, len(items)); err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Errorw("failed to store imported catalog", "task_id", taskID.Hex(), "error", err)
		s.fail(ctx, taskID, err)
		return err
	}

	s.catalog.Replace(items)
	metrics.SetCatalogItems(len(items))

	s.logger.Infow("catalog import task completed", "task_id", taskID.Hex(), "item_count", len(items))

	return nil
}

func (s *ImportService) fail(ctx context.Context, taskID primitive.ObjectID, cause error) {
	if err := s.importTaskRepo.UpdateStatus(ctx, taskID, domain.ImportFailed, cause.Error()); err != nil {
		s.logger.Warnw("failed to mark import task as failed", "task_id", taskID.Hex(), "error", err)
	}
	if err := s.importTaskRepo.IncrementRetryCount(ctx, taskID); err != nil {
		s.logger.Warnw("failed to increment retry count", "task_id", taskID.Hex(), "error", err)
	}
}
