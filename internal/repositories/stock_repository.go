package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"incubator_backend/internal/models"
)

// ErrCountBelowZero is returned when an adjustment would drive an item's
// count negative. The repository checks this inside the transaction, after
// taking the row lock, so concurrent writers cannot slip past the guard.
var ErrCountBelowZero = errors.New("stock count cannot go below zero")

// StockRepository persists stock items and their append-only adjustment
// ledger. ApplyAdjustment and DeleteItemWithLedger are each a single unit
// of work: both of their writes land together or not at all.
type StockRepository interface {
	CreateItem(item *models.StockItem) error
	GetItemByStockID(stockID string) (*models.StockItem, error)
	GetItems(category *string, page, pageSize int) ([]models.StockItem, int, error)
	SetItemImage(stockID string, imageID *string) error

	// ApplyAdjustment atomically updates the item count by record.Delta and
	// appends the ledger record. Returns the updated item. Fails with
	// ErrNotFound for an unknown stockID and ErrCountBelowZero when the
	// resulting count would be negative, in both cases without state change.
	ApplyAdjustment(record *models.StockAdjustment) (*models.StockItem, error)

	// GetAdjustments returns the ledger for an item ordered by creation
	// time, then id, ascending.
	GetAdjustments(stockID string) ([]models.StockAdjustment, error)

	// DeleteItemWithLedger removes the item and all its adjustments in one
	// transaction.
	DeleteItemWithLedger(stockID string) error

	// SumDeltas recomputes the ledger-derived count for an item.
	SumDeltas(stockID string) (int64, error)

	// SetCount overwrites the stored count. Used only by reconciliation.
	SetCount(stockID string, count int64) error
}

type stockRepository struct {
	db *sql.DB
}

// NewStockRepository creates a Postgres-backed StockRepository.
func NewStockRepository(db *sql.DB) StockRepository {
	return &stockRepository{db: db}
}

const stockItemColumns = "id, stock_id, name, category, count, image_id, created_at, updated_at"

func scanStockItem(s scanner) (*models.StockItem, error) {
	var item models.StockItem
	var imageID sql.NullString
	if err := s.Scan(&item.ID, &item.StockID, &item.Name, &item.Category, &item.Count,
		&imageID, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	if imageID.Valid {
		item.ImageID = &imageID.String
	}
	return &item, nil
}

func (r *stockRepository) CreateItem(item *models.StockItem) error {
	query := `INSERT INTO stock_items (stock_id, name, category, count, image_id)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, item.StockID, item.Name, item.Category, item.Count, item.ImageID).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err, "stock_items_stock_id_key") {
			return fmt.Errorf("%w: stock_id %q", ErrDuplicateKey, item.StockID)
		}
		return fmt.Errorf("%w: creating stock item: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *stockRepository) GetItemByStockID(stockID string) (*models.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE stock_id = $1`
	item, err := scanStockItem(r.db.QueryRow(query, stockID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("%w: getting stock item: %v", ErrDatabaseError, err)
	}
	return item, nil
}

func (r *stockRepository) GetItems(category *string, page, pageSize int) ([]models.StockItem, int, error) {
	items := []models.StockItem{}
	totalCount := 0

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT id, stock_id, name, category, count, image_id, created_at, updated_at,
	    COUNT(*) OVER() AS total_count
	  FROM stock_items`)

	var args []interface{}
	argCount := 1
	if category != nil && *category != "" {
		queryBuilder.WriteString(fmt.Sprintf(" WHERE category = $%d", argCount))
		args = append(args, *category)
		argCount++
	}
	queryBuilder.WriteString(" ORDER BY name, stock_id")
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: getting stock items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.StockItem
		var imageID sql.NullString
		if err := rows.Scan(&item.ID, &item.StockID, &item.Name, &item.Category, &item.Count,
			&imageID, &item.CreatedAt, &item.UpdatedAt, &totalCount); err != nil {
			return nil, 0, fmt.Errorf("%w: scanning stock item: %v", ErrDatabaseError, err)
		}
		if imageID.Valid {
			item.ImageID = &imageID.String
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating stock items: %v", ErrDatabaseError, err)
	}

	return items, totalCount, nil
}

func (r *stockRepository) SetItemImage(stockID string, imageID *string) error {
	result, err := r.db.Exec(`UPDATE stock_items SET image_id = $1, updated_at = $2 WHERE stock_id = $3`,
		imageID, time.Now(), stockID)
	if err != nil {
		return fmt.Errorf("%w: updating stock image: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking stock image update: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *stockRepository) ApplyAdjustment(record *models.StockAdjustment) (*models.StockItem, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("%w: starting adjustment transaction: %v", ErrDatabaseError, err)
	}
	defer tx.Rollback()

	// Row lock serializes concurrent adjustments on the same item across
	// processes; the count check happens after the lock is held.
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE stock_id = $1 FOR UPDATE`
	item, err := scanStockItem(tx.QueryRow(query, record.StockID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("%w: locking stock item: %v", ErrDatabaseError, err)
	}

	newCount := item.Count + record.Delta
	if newCount < 0 {
		return nil, fmt.Errorf("%w: item %q has %d, change %d", ErrCountBelowZero, item.StockID, item.Count, record.Delta)
	}

	now := time.Now()
	if _, err = tx.Exec(`UPDATE stock_items SET count = $1, updated_at = $2 WHERE stock_id = $3`,
		newCount, now, record.StockID); err != nil {
		return nil, fmt.Errorf("%w: updating stock count: %v", ErrDatabaseError, err)
	}

	insert := `INSERT INTO stock_adjustments (stock_id, delta, actor_id, actor_name, unit_price)
	           VALUES ($1, $2, $3, $4, $5)
	           RETURNING id, created_at`
	if err = tx.QueryRow(insert, record.StockID, record.Delta, record.ActorID, record.ActorName, record.UnitPrice).
		Scan(&record.ID, &record.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: appending stock adjustment: %v", ErrDatabaseError, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: committing adjustment: %v", ErrDatabaseError, err)
	}

	item.Count = newCount
	item.UpdatedAt = now
	return item, nil
}

func (r *stockRepository) GetAdjustments(stockID string) ([]models.StockAdjustment, error) {
	query := `SELECT id, stock_id, delta, actor_id, actor_name, unit_price, created_at
	          FROM stock_adjustments
	          WHERE stock_id = $1
	          ORDER BY created_at, id`
	rows, err := r.db.Query(query, stockID)
	if err != nil {
		return nil, fmt.Errorf("%w: getting stock adjustments: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	records := []models.StockAdjustment{}
	for rows.Next() {
		var record models.StockAdjustment
		var unitPrice sql.NullFloat64
		if err := rows.Scan(&record.ID, &record.StockID, &record.Delta, &record.ActorID,
			&record.ActorName, &unitPrice, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning stock adjustment: %v", ErrDatabaseError, err)
		}
		if unitPrice.Valid {
			record.UnitPrice = &unitPrice.Float64
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating stock adjustments: %v", ErrDatabaseError, err)
	}

	return records, nil
}

func (r *stockRepository) DeleteItemWithLedger(stockID string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: starting delete transaction: %v", ErrDatabaseError, err)
	}
	defer tx.Rollback()

	if _, err = tx.Exec(`DELETE FROM stock_adjustments WHERE stock_id = $1`, stockID); err != nil {
		return fmt.Errorf("%w: deleting stock adjustments: %v", ErrDatabaseError, err)
	}

	result, err := tx.Exec(`DELETE FROM stock_items WHERE stock_id = $1`, stockID)
	if err != nil {
		return fmt.Errorf("%w: deleting stock item: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking stock item delete: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

func (r *stockRepository) SumDeltas(stockID string) (int64, error) {
	var sum int64
	query := `SELECT COALESCE(SUM(delta), 0) FROM stock_adjustments WHERE stock_id = $1`
	if err := r.db.QueryRow(query, stockID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("%w: summing stock adjustments: %v", ErrDatabaseError, err)
	}
	return sum, nil
}

func (r *stockRepository) SetCount(stockID string, count int64) error {
	result, err := r.db.Exec(`UPDATE stock_items SET count = $1, updated_at = $2 WHERE stock_id = $3`,
		count, time.Now(), stockID)
	if err != nil {
		return fmt.Errorf("%w: setting stock count: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking stock count update: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
