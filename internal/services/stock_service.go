package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"incubator_backend/internal/models"
	"incubator_backend/internal/repositories"
	"incubator_backend/pkg/utils"
)

// --- Custom Service Errors ---
var (
	ErrStockNotFound     = errors.New("stock item not found")
	ErrStockExists       = errors.New("stock item already exists")
	ErrInvalidAdjustment = errors.New("invalid stock adjustment")
	ErrConsistency       = errors.New("stock count inconsistent with ledger")
)

// --- Data Transfer Objects (DTOs) ---

// CreateStockItemRequest is used for creating a new stock item. A positive
// initial count is recorded as a seed ledger entry attributed to the
// creating actor, so count equals the ledger sum from the start.
type CreateStockItemRequest struct {
	StockID      string `json:"stock_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Category     string `json:"category" binding:"required"`
	InitialCount int64  `json:"count"`
	ActorID      string `json:"actor_id"`
	ActorName    string `json:"actor_name"`
}

// ApplyAdjustmentRequest carries one signed stock change. The JSON field
// names match what the frontend already sends
// ({stockId, countChanged, userId, userName, priceTheyBought}).
type ApplyAdjustmentRequest struct {
	StockID   string   `json:"stockId" binding:"required"`
	Delta     int64    `json:"countChanged" binding:"required"`
	ActorID   string   `json:"userId" binding:"required"`
	ActorName string   `json:"userName" binding:"required"`
	UnitPrice *float64 `json:"priceTheyBought"`
}

// AdjustmentResult pairs the updated item with the ledger record created
// for it.
type AdjustmentResult struct {
	Item   *models.StockItem       `json:"stockDetail"`
	Record *models.StockAdjustment `json:"updateRecord"`
}

// Ledger is the audit history of one item.
type Ledger struct {
	Item    *models.StockItem        `json:"stockDetail"`
	Records []models.StockAdjustment `json:"updateRecords"`
}

// ReconcileResult reports the outcome of a drift check.
type ReconcileResult struct {
	StockID         string `json:"stock_id"`
	StoredCount     int64  `json:"stored_count"`
	LedgerSum       int64  `json:"ledger_sum"`
	Corrected       bool   `json:"corrected"`
	CorrectionDelta int64  `json:"correction_delta"`
}

// --- StockService Interface ---

// StockService is the inventory ledger reconciler. It exclusively owns the
// invariant that an item's count equals the sum of its adjustment deltas
// and never goes negative; no other component writes counts.
type StockService interface {
	CreateItem(req CreateStockItemRequest) (*models.StockItem, error)
	GetItems(category *string, page, pageSize int) ([]models.StockItem, int, error)
	GetItem(stockID string) (*models.StockItem, error)
	SetItemImage(stockID string, imageID *string) error
	ApplyAdjustment(req ApplyAdjustmentRequest) (*AdjustmentResult, error)
	GetLedger(stockID string) (*Ledger, error)
	DeleteItem(stockID string) error
	Reconcile(stockID string) (*ReconcileResult, error)
}

// --- stockService Implementation ---

type stockService struct {
	repo  repositories.StockRepository
	locks sync.Map // stockID -> *sync.Mutex
}

// NewStockService creates a new instance of StockService.
func NewStockService(repo repositories.StockRepository) StockService {
	return &stockService{repo: repo}
}

// lockFor returns the mutex serializing operations on one stock item.
// Adjustments to different items never contend.
func (s *stockService) lockFor(stockID string) *sync.Mutex {
	lock, _ := s.locks.LoadOrStore(stockID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

func (s *stockService) CreateItem(req CreateStockItemRequest) (*models.StockItem, error) {
	if utils.IsEmpty(req.StockID) || utils.IsEmpty(req.Name) {
		return nil, fmt.Errorf("%w: stock_id and name are required", ErrValidation)
	}
	if !models.IsValidStockCategory(req.Category) {
		return nil, fmt.Errorf("%w: unknown stock category %q", ErrValidation, req.Category)
	}
	if req.InitialCount < 0 {
		return nil, fmt.Errorf("%w: initial count cannot be negative", ErrValidation)
	}
	if req.InitialCount > 0 && (utils.IsEmpty(req.ActorID) || utils.IsEmpty(req.ActorName)) {
		return nil, fmt.Errorf("%w: actor_id and actor_name are required when seeding an initial count", ErrValidation)
	}

	item := models.StockItem{
		StockID:  strings.TrimSpace(req.StockID),
		Name:     strings.TrimSpace(req.Name),
		Category: req.Category,
		Count:    0,
	}

	lock := s.lockFor(item.StockID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.repo.CreateItem(&item); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %q", ErrStockExists, item.StockID)
		}
		return nil, fmt.Errorf("failed to create stock item: %w", err)
	}

	if req.InitialCount > 0 {
		seed := models.StockAdjustment{
			StockID:   item.StockID,
			Delta:     req.InitialCount,
			ActorID:   req.ActorID,
			ActorName: req.ActorName,
		}
		updated, err := s.applyWithRetry(&seed)
		if err != nil {
			// Compensate so a half-created item is not left behind.
			if delErr := s.repo.DeleteItemWithLedger(item.StockID); delErr != nil {
				utils.LogError(delErr, "CreateItem: failed to roll back item after seed adjustment failure")
			}
			return nil, fmt.Errorf("failed to seed initial count: %w", err)
		}
		return updated, nil
	}

	return &item, nil
}

func (s *stockService) GetItems(category *string, page, pageSize int) ([]models.StockItem, int, error) {
	if category != nil && *category != "" && !models.IsValidStockCategory(*category) {
		return nil, 0, fmt.Errorf("%w: unknown stock category %q", ErrValidation, *category)
	}
	items, totalCount, err := s.repo.GetItems(category, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get stock items: %w", err)
	}
	return items, totalCount, nil
}

func (s *stockService) GetItem(stockID string) (*models.StockItem, error) {
	item, err := s.repo.GetItemByStockID(stockID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStockNotFound
		}
		return nil, fmt.Errorf("failed to get stock item: %w", err)
	}
	return item, nil
}

func (s *stockService) SetItemImage(stockID string, imageID *string) error {
	if err := s.repo.SetItemImage(stockID, imageID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrStockNotFound
		}
		return fmt.Errorf("failed to set stock image: %w", err)
	}
	return nil
}

func (s *stockService) ApplyAdjustment(req ApplyAdjustmentRequest) (*AdjustmentResult, error) {
	if req.Delta == 0 {
		return nil, fmt.Errorf("%w: delta must be a nonzero integer", ErrInvalidAdjustment)
	}
	if utils.IsEmpty(req.ActorID) || utils.IsEmpty(req.ActorName) {
		return nil, fmt.Errorf("%w: userId and userName are required", ErrValidation)
	}
	if req.UnitPrice != nil && *req.UnitPrice < 0 {
		return nil, fmt.Errorf("%w: priceTheyBought cannot be negative", ErrValidation)
	}

	// All preconditions on the item itself (existence, resulting count) are
	// re-checked inside the repository's unit of work, under the lock.
	lock := s.lockFor(req.StockID)
	lock.Lock()
	defer lock.Unlock()

	record := models.StockAdjustment{
		StockID:   req.StockID,
		Delta:     req.Delta,
		ActorID:   strings.TrimSpace(req.ActorID),
		ActorName: strings.TrimSpace(req.ActorName),
		UnitPrice: req.UnitPrice,
	}

	item, err := s.applyWithRetry(&record)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStockNotFound
		}
		if errors.Is(err, repositories.ErrCountBelowZero) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAdjustment, err)
		}
		return nil, fmt.Errorf("failed to apply stock adjustment: %w", err)
	}

	return &AdjustmentResult{Item: item, Record: &record}, nil
}

// applyWithRetry performs the atomic counter-update-plus-ledger-append,
// retrying once on a storage error. The unit of work either fully commits
// or leaves no trace, so a retry never double-applies.
func (s *stockService) applyWithRetry(record *models.StockAdjustment) (*models.StockItem, error) {
	item, err := s.repo.ApplyAdjustment(record)
	if err != nil && errors.Is(err, repositories.ErrDatabaseError) {
		utils.LogWarn("Retrying stock adjustment after storage error", map[string]interface{}{
			"stock_id": record.StockID,
			"delta":    record.Delta,
		})
		item, err = s.repo.ApplyAdjustment(record)
	}
	return item, err
}

func (s *stockService) GetLedger(stockID string) (*Ledger, error) {
	item, err := s.repo.GetItemByStockID(stockID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStockNotFound
		}
		return nil, fmt.Errorf("failed to get stock item for ledger: %w", err)
	}

	records, err := s.repo.GetAdjustments(stockID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stock adjustments: %w", err)
	}

	return &Ledger{Item: item, Records: records}, nil
}

func (s *stockService) DeleteItem(stockID string) error {
	lock := s.lockFor(stockID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.repo.DeleteItemWithLedger(stockID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrStockNotFound
		}
		return fmt.Errorf("failed to delete stock item: %w", err)
	}

	s.locks.Delete(stockID)
	return nil
}

func (s *stockService) Reconcile(stockID string) (*ReconcileResult, error) {
	lock := s.lockFor(stockID)
	lock.Lock()
	defer lock.Unlock()

	item, err := s.repo.GetItemByStockID(stockID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStockNotFound
		}
		return nil, fmt.Errorf("failed to get stock item for reconciliation: %w", err)
	}

	sum, err := s.repo.SumDeltas(stockID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum ledger deltas: %w", err)
	}

	result := &ReconcileResult{
		StockID:     stockID,
		StoredCount: item.Count,
		LedgerSum:   sum,
	}

	if sum < 0 {
		utils.LogError(ErrConsistency, fmt.Sprintf(
			"Reconcile: ledger sum for %q is negative (stored=%d ledger=%d); manual repair required",
			stockID, item.Count, sum))
		return nil, fmt.Errorf("%w: ledger sum for %q is %d", ErrConsistency, stockID, sum)
	}

	if item.Count == sum {
		return result, nil
	}

	if err = s.repo.SetCount(stockID, sum); err != nil {
		utils.LogError(err, fmt.Sprintf(
			"Reconcile: failed to repair count for %q (stored=%d ledger=%d)", stockID, item.Count, sum))
		return nil, fmt.Errorf("%w: could not repair %q (stored=%d ledger=%d): %v",
			ErrConsistency, stockID, item.Count, sum, err)
	}

	result.Corrected = true
	result.CorrectionDelta = sum - item.Count
	utils.LogWarn("Reconcile corrected drifted stock count", map[string]interface{}{
		"stock_id":         stockID,
		"stored_count":     item.Count,
		"ledger_sum":       sum,
		"correction_delta": result.CorrectionDelta,
	})
	return result, nil
}
