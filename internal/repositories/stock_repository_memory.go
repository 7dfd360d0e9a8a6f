package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"incubator_backend/internal/models"
)

// memoryStockRepository is an in-memory StockRepository. It backs the
// reconciler test-suite and can serve as a dev-mode store. All mutations
// happen under one mutex, so each method is atomic the same way the
// Postgres methods are transactional.
type memoryStockRepository struct {
	mu          sync.Mutex
	items       map[string]*models.StockItem
	ledgers     map[string][]models.StockAdjustment
	nextItemID  int64
	nextEntryID int64
}

// NewMemoryStockRepository creates an empty in-memory StockRepository.
func NewMemoryStockRepository() StockRepository {
	return &memoryStockRepository{
		items:       make(map[string]*models.StockItem),
		ledgers:     make(map[string][]models.StockAdjustment),
		nextItemID:  1,
		nextEntryID: 1,
	}
}

func (r *memoryStockRepository) CreateItem(item *models.StockItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.StockID]; exists {
		return fmt.Errorf("%w: stock_id %q", ErrDuplicateKey, item.StockID)
	}

	now := time.Now()
	item.ID = r.nextItemID
	r.nextItemID++
	item.CreatedAt = now
	item.UpdatedAt = now

	stored := *item
	r.items[item.StockID] = &stored
	return nil
}

func (r *memoryStockRepository) GetItemByStockID(stockID string) (*models.StockItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[stockID]
	if !exists {
		return nil, ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *memoryStockRepository) GetItems(category *string, page, pageSize int) ([]models.StockItem, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]models.StockItem, 0, len(r.items))
	for _, item := range r.items {
		if category != nil && *category != "" && item.Category != *category {
			continue
		}
		all = append(all, *item)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Name != all[j].Name {
			return all[i].Name < all[j].Name
		}
		return strings.Compare(all[i].StockID, all[j].StockID) < 0
	})

	totalCount := len(all)
	start := (page - 1) * pageSize
	if start >= totalCount {
		return []models.StockItem{}, totalCount, nil
	}
	end := start + pageSize
	if end > totalCount {
		end = totalCount
	}
	return all[start:end], totalCount, nil
}

func (r *memoryStockRepository) SetItemImage(stockID string, imageID *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[stockID]
	if !exists {
		return ErrNotFound
	}
	item.ImageID = imageID
	item.UpdatedAt = time.Now()
	return nil
}

func (r *memoryStockRepository) ApplyAdjustment(record *models.StockAdjustment) (*models.StockItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[record.StockID]
	if !exists {
		return nil, ErrNotFound
	}

	newCount := item.Count + record.Delta
	if newCount < 0 {
		return nil, fmt.Errorf("%w: item %q has %d, change %d", ErrCountBelowZero, item.StockID, item.Count, record.Delta)
	}

	record.ID = r.nextEntryID
	r.nextEntryID++
	record.CreatedAt = time.Now()

	item.Count = newCount
	item.UpdatedAt = record.CreatedAt
	r.ledgers[record.StockID] = append(r.ledgers[record.StockID], *record)

	copied := *item
	return &copied, nil
}

func (r *memoryStockRepository) GetAdjustments(stockID string) ([]models.StockAdjustment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := make([]models.StockAdjustment, len(r.ledgers[stockID]))
	copy(records, r.ledgers[stockID])
	return records, nil
}

func (r *memoryStockRepository) DeleteItemWithLedger(stockID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[stockID]; !exists {
		return ErrNotFound
	}
	delete(r.items, stockID)
	delete(r.ledgers, stockID)
	return nil
}

func (r *memoryStockRepository) SumDeltas(stockID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sum int64
	for _, record := range r.ledgers[stockID] {
		sum += record.Delta
	}
	return sum, nil
}

func (r *memoryStockRepository) SetCount(stockID string, count int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[stockID]
	if !exists {
		return ErrNotFound
	}
	item.Count = count
	item.UpdatedAt = time.Now()
	return nil
}

// CorruptCount overwrites the stored count without touching the ledger.
// Test hook for simulating drift left behind by non-transactional writers.
func (r *memoryStockRepository) CorruptCount(stockID string, count int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item, exists := r.items[stockID]; exists {
		item.Count = count
	}
}

// CorruptLedger appends a raw ledger record, skipping the negative-count
// guard and leaving the stored count alone. Test hook for simulating a
// damaged ledger.
func (r *memoryStockRepository) CorruptLedger(stockID string, delta int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[stockID]; !exists {
		return
	}
	record := models.StockAdjustment{
		ID:        r.nextEntryID,
		StockID:   stockID,
		Delta:     delta,
		CreatedAt: time.Now(),
	}
	r.nextEntryID++
	r.ledgers[stockID] = append(r.ledgers[stockID], record)
}
