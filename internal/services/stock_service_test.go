package services

import (
	"sync"
	"testing"

	"incubator_backend/internal/models"
	"incubator_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countCorrupter is implemented by the in-memory repository to simulate
// drift left behind by a non-transactional writer.
type countCorrupter interface {
	CorruptCount(stockID string, count int64)
}

// ledgerCorrupter is implemented by the in-memory repository to simulate a
// damaged ledger whose deltas no longer sum to a valid count.
type ledgerCorrupter interface {
	CorruptLedger(stockID string, delta int64)
}

func newTestStockService(t *testing.T) (StockService, repositories.StockRepository) {
	t.Helper()
	repo := repositories.NewMemoryStockRepository()
	return NewStockService(repo), repo
}

func createBatteries(t *testing.T, svc StockService, initial int64) *models.StockItem {
	t.Helper()
	item, err := svc.CreateItem(CreateStockItemRequest{
		StockID:      "BATT-1",
		Name:         "AA Batteries",
		Category:     models.StockCategoryElectronic,
		InitialCount: initial,
		ActorID:      "u-admin",
		ActorName:    "Admin",
	})
	require.NoError(t, err)
	return item
}

// requireInvariant asserts that the stored count equals the ledger sum and
// never went negative.
func requireInvariant(t *testing.T, svc StockService, stockID string) {
	t.Helper()
	ledger, err := svc.GetLedger(stockID)
	require.NoError(t, err)

	var sum int64
	for _, record := range ledger.Records {
		sum += record.Delta
	}
	require.Equal(t, sum, ledger.Item.Count, "count must equal the sum of ledger deltas")
	require.GreaterOrEqual(t, ledger.Item.Count, int64(0))
}

func TestCreateItemSeedsLedger(t *testing.T) {
	svc, _ := newTestStockService(t)

	item := createBatteries(t, svc, 10)
	assert.Equal(t, int64(10), item.Count)

	ledger, err := svc.GetLedger("BATT-1")
	require.NoError(t, err)
	require.Len(t, ledger.Records, 1)
	assert.Equal(t, int64(10), ledger.Records[0].Delta)
	assert.Equal(t, "u-admin", ledger.Records[0].ActorID)
	assert.Equal(t, "Admin", ledger.Records[0].ActorName)
	requireInvariant(t, svc, "BATT-1")
}

func TestCreateItemZeroCountHasEmptyLedger(t *testing.T) {
	svc, _ := newTestStockService(t)

	item, err := svc.CreateItem(CreateStockItemRequest{
		StockID:  "PEN-1",
		Name:     "Ball Pens",
		Category: models.StockCategoryStationeryItems,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), item.Count)

	ledger, err := svc.GetLedger("PEN-1")
	require.NoError(t, err)
	assert.Empty(t, ledger.Records)
}

func TestCreateItemRejectsDuplicates(t *testing.T) {
	svc, _ := newTestStockService(t)
	createBatteries(t, svc, 10)

	_, err := svc.CreateItem(CreateStockItemRequest{
		StockID:  "BATT-1",
		Name:     "More Batteries",
		Category: models.StockCategoryElectronic,
	})
	assert.ErrorIs(t, err, ErrStockExists)
}

func TestCreateItemValidation(t *testing.T) {
	svc, _ := newTestStockService(t)

	tests := []struct {
		name string
		req  CreateStockItemRequest
	}{
		{"missing stock id", CreateStockItemRequest{Name: "X", Category: models.StockCategoryElectronic}},
		{"unknown category", CreateStockItemRequest{StockID: "X-1", Name: "X", Category: "Furniture"}},
		{"negative initial count", CreateStockItemRequest{StockID: "X-1", Name: "X", Category: models.StockCategoryElectronic, InitialCount: -1}},
		{"seed without actor", CreateStockItemRequest{StockID: "X-1", Name: "X", Category: models.StockCategoryElectronic, InitialCount: 5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateItem(tc.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestApplyAdjustmentUpdatesCountAndLedger(t *testing.T) {
	svc, _ := newTestStockService(t)
	createBatteries(t, svc, 10)

	result, err := svc.ApplyAdjustment(ApplyAdjustmentRequest{
		StockID:   "BATT-1",
		Delta:     -3,
		ActorID:   "u-alice",
		ActorName: "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.Item.Count)
	assert.Equal(t, int64(-3), result.Record.Delta)
	assert.NotZero(t, result.Record.ID)
	requireInvariant(t, svc, "BATT-1")
}

func TestApplyAdjustmentRecordsUnitPrice(t *testing.T) {
	svc, _ := newTestStockService(t)
	createBatteries(t, svc, 10)

	price := 49.90
	result, err := svc.ApplyAdjustment(ApplyAdjustmentRequest{
		StockID:   "BATT-1",
		Delta:     5,
		ActorID:   "u-carol",
		ActorName: "Carol",
		UnitPrice: &price,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Record.UnitPrice)
	assert.Equal(t, price, *result.Record.UnitPrice)
}

func TestApplyAdjustmentRejectsOverdraw(t *testing.T) {
	svc, _ := newTestStockService(t)
	createBatteries(t, svc, 10)

	_, err := svc.ApplyAdjustment(ApplyAdjustmentRequest{
		StockID: "BATT-1", Delta: -3, ActorID: "u-alice", ActorName: "Alice",
	})
	require.NoError(t, err)

	// 7 on hand, taking 10 must fail and leave no trace.
	_, err = svc.ApplyAdjustment(ApplyAdjustmentRequest{
		StockID: "BATT-1", Delta: -10, ActorID: "u-bob", ActorName: "Bob",
	})
	assert.ErrorIs(t, err, ErrInvalidAdjustment)

	ledger, err := svc.GetLedger("BATT-1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), ledger.Item.Count)
	assert.Len(t, ledger.Records, 2) // seed + alice

	// The item stays usable afterwards.
	result, err := svc.ApplyAdjustment(ApplyAdjustmentRequest{
		StockID: "BATT-1", Delta: 5, ActorID: "u-carol", ActorName: "Carol",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), result.Item.Count)
	requireInvariant(t, svc, "BATT-1")
}

func TestApplyAdjustmentValidation(t *testing.T) {
	svc, _ := newTestStockService(t)
	createBatteries(t, svc, 10)

	_, err := svc.ApplyAdjustment(ApplyAdjustmentRequest{
		StockID: "BATT-1", Delta: 0, ActorID: "u-alice", ActorName: "Alice",
	})
	assert.ErrorIs(t, err, ErrInvalidAdjustment)

	_, err = svc.ApplyAdjustment(ApplyAdjustmentRequest{
		StockID: "BATT-1", Delta: 1, ActorName: "Alice",
	})
	assert.ErrorIs(t, err, ErrValidation)

	negativePrice := -1.0
	_, err = svc.ApplyAdjustment(ApplyAdjustmentRequest{
		StockID: "BATT-1", Delta: 1, ActorID: "u-alice", ActorName: "Alice", UnitPrice: &negativePrice,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestApplyAdjustmentUnknownItem(t *testing.T) {
	svc, _ := newTestStockService(t)

	_, err := svc.ApplyAdjustment(ApplyAdjustmentRequest{
		StockID: "NOPE-1", Delta: 1, ActorID: "u-alice", ActorName: "Alice",
	})
	assert.ErrorIs(t, err, ErrStockNotFound)
}

func TestGetLedgerOrdersOldestFirst(t *testing.T) {
	svc, _ := newTestStockService(t)
	createBatteries(t, svc, 10)

	deltas := []int64{-1, 2, -3}
	for _, delta := range deltas {
		_, err := svc.ApplyAdjustment(ApplyAdjustmentRequest{
			StockID: "BATT-1", Delta: delta, ActorID: "u-alice", ActorName: "Alice",
		})
		require.NoError(t, err)
	}

	ledger, err := svc.GetLedger("BATT-1")
	require.NoError(t, err)
	require.Len(t, ledger.Records, 4)
	assert.Equal(t, int64(10), ledger.Records[0].Delta)
	for i := 1; i < len(ledger.Records); i++ {
		assert.Equal(t, deltas[i-1], ledger.Records[i].Delta)
		assert.Less(t, ledger.Records[i-1].ID, ledger.Records[i].ID)
	}
}

func TestDeleteItemCascadesToLedger(t *testing.T) {
	svc, _ := newTestStockService(t)
	createBatteries(t, svc, 10)

	require.NoError(t, svc.DeleteItem("BATT-1"))

	_, err := svc.GetItem("BATT-1")
	assert.ErrorIs(t, err, ErrStockNotFound)
	_, err = svc.GetLedger("BATT-1")
	assert.ErrorIs(t, err, ErrStockNotFound)

	assert.ErrorIs(t, svc.DeleteItem("BATT-1"), ErrStockNotFound)
}

func TestReconcileCleanItemIsNoOp(t *testing.T) {
	svc, _ := newTestStockService(t)
	createBatteries(t, svc, 10)

	result, err := svc.Reconcile("BATT-1")
	require.NoError(t, err)
	assert.False(t, result.Corrected)
	assert.Equal(t, int64(10), result.StoredCount)
	assert.Equal(t, int64(10), result.LedgerSum)
	assert.Zero(t, result.CorrectionDelta)
}

func TestReconcileRepairsDrift(t *testing.T) {
	svc, repo := newTestStockService(t)
	createBatteries(t, svc, 10)

	_, err := svc.ApplyAdjustment(ApplyAdjustmentRequest{
		StockID: "BATT-1", Delta: 2, ActorID: "u-alice", ActorName: "Alice",
	})
	require.NoError(t, err)

	corrupter, ok := repo.(countCorrupter)
	require.True(t, ok)
	corrupter.CorruptCount("BATT-1", 99)

	result, err := svc.Reconcile("BATT-1")
	require.NoError(t, err)
	assert.True(t, result.Corrected)
	assert.Equal(t, int64(99), result.StoredCount)
	assert.Equal(t, int64(12), result.LedgerSum)
	assert.Equal(t, int64(-87), result.CorrectionDelta)

	item, err := svc.GetItem("BATT-1")
	require.NoError(t, err)
	assert.Equal(t, int64(12), item.Count)
	requireInvariant(t, svc, "BATT-1")

	// A second pass finds nothing to fix.
	result, err = svc.Reconcile("BATT-1")
	require.NoError(t, err)
	assert.False(t, result.Corrected)
}

func TestReconcileRefusesNegativeLedgerSum(t *testing.T) {
	svc, repo := newTestStockService(t)
	createBatteries(t, svc, 10)

	corrupter, ok := repo.(ledgerCorrupter)
	require.True(t, ok)
	corrupter.CorruptLedger("BATT-1", -25)

	result, err := svc.Reconcile("BATT-1")
	assert.Nil(t, result)
	require.ErrorIs(t, err, ErrConsistency)

	// A negative ledger sum is never written back as a count.
	item, err := svc.GetItem("BATT-1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), item.Count)
}

func TestReconcileUnknownItem(t *testing.T) {
	svc, _ := newTestStockService(t)
	_, err := svc.Reconcile("NOPE-1")
	assert.ErrorIs(t, err, ErrStockNotFound)
}

func TestConcurrentAdjustmentsKeepInvariant(t *testing.T) {
	svc, _ := newTestStockService(t)
	createBatteries(t, svc, 100)

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		delta := int64(1)
		if i%2 == 0 {
			delta = -1
		}
		go func(delta int64) {
			defer wg.Done()
			_, err := svc.ApplyAdjustment(ApplyAdjustmentRequest{
				StockID: "BATT-1", Delta: delta, ActorID: "u-worker", ActorName: "Worker",
			})
			assert.NoError(t, err)
		}(delta)
	}
	wg.Wait()

	item, err := svc.GetItem("BATT-1")
	require.NoError(t, err)
	assert.Equal(t, int64(100), item.Count)
	requireInvariant(t, svc, "BATT-1")

	ledger, err := svc.GetLedger("BATT-1")
	require.NoError(t, err)
	assert.Len(t, ledger.Records, workers+1)
}

func TestConcurrentOverdrawNeverGoesNegative(t *testing.T) {
	svc, _ := newTestStockService(t)
	createBatteries(t, svc, 10)

	// 30 withdrawals of 1 against a stock of 10: exactly 10 succeed.
	const workers = 30
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, _ = svc.ApplyAdjustment(ApplyAdjustmentRequest{
				StockID: "BATT-1", Delta: -1, ActorID: "u-worker", ActorName: "Worker",
			})
		}()
	}
	wg.Wait()

	item, err := svc.GetItem("BATT-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), item.Count)

	ledger, err := svc.GetLedger("BATT-1")
	require.NoError(t, err)
	assert.Len(t, ledger.Records, 11) // seed + the 10 that made it
	requireInvariant(t, svc, "BATT-1")
}
