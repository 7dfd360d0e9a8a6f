package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"incubator_backend/internal/repositories"
	"incubator_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStockTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	stockService := services.NewStockService(repositories.NewMemoryStockRepository())
	handler := NewStockHandler(stockService, nil)

	engine := gin.New()
	engine.POST("/stock", handler.CreateStockItem)
	engine.GET("/stock", handler.GetStockItems)
	engine.GET("/stock/:stockId", handler.GetStockItem)
	engine.DELETE("/stock/:stockId", handler.DeleteStockItem)
	engine.POST("/update-stock", handler.UpdateStock)
	engine.GET("/update-records/:stockId", handler.GetUpdateRecords)
	engine.POST("/stock/:stockId/reconcile", handler.ReconcileStock)
	return engine
}

func performJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func createTestItem(t *testing.T, engine *gin.Engine) {
	t.Helper()
	recorder := performJSON(t, engine, http.MethodPost, "/stock", gin.H{
		"stock_id":   "LAP-1",
		"name":       "Laptops",
		"category":   "Electronic",
		"count":      5,
		"actor_id":   "u-admin",
		"actor_name": "Admin",
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
}

func TestCreateStockItemEndpoint(t *testing.T) {
	engine := newStockTestRouter(t)
	createTestItem(t, engine)

	var item map[string]interface{}
	recorder := performJSON(t, engine, http.MethodGet, "/stock/LAP-1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &item))
	assert.Equal(t, "LAP-1", item["stock_id"])
	assert.Equal(t, float64(5), item["count"])

	// Duplicate registration conflicts.
	recorder = performJSON(t, engine, http.MethodPost, "/stock", gin.H{
		"stock_id": "LAP-1", "name": "Laptops", "category": "Electronic",
	})
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestUpdateStockEndpoint(t *testing.T) {
	engine := newStockTestRouter(t)
	createTestItem(t, engine)

	recorder := performJSON(t, engine, http.MethodPost, "/update-stock", gin.H{
		"stockId":         "LAP-1",
		"countChanged":    -2,
		"userId":          "u-alice",
		"userName":        "Alice",
		"priceTheyBought": 1200.50,
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var result struct {
		Item struct {
			Count int64 `json:"count"`
		} `json:"stockDetail"`
		Record struct {
			Delta     int64    `json:"delta"`
			ActorName string   `json:"actor_name"`
			UnitPrice *float64 `json:"unit_price"`
		} `json:"updateRecord"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	assert.Equal(t, int64(3), result.Item.Count)
	assert.Equal(t, int64(-2), result.Record.Delta)
	assert.Equal(t, "Alice", result.Record.ActorName)
	require.NotNil(t, result.Record.UnitPrice)
	assert.Equal(t, 1200.50, *result.Record.UnitPrice)
}

func TestUpdateStockEndpointRejectsOverdraw(t *testing.T) {
	engine := newStockTestRouter(t)
	createTestItem(t, engine)

	recorder := performJSON(t, engine, http.MethodPost, "/update-stock", gin.H{
		"stockId":      "LAP-1",
		"countChanged": -10,
		"userId":       "u-alice",
		"userName":     "Alice",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// Count is untouched by the rejected change.
	recorder = performJSON(t, engine, http.MethodGet, "/stock/LAP-1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var item map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &item))
	assert.Equal(t, float64(5), item["count"])
}

func TestUpdateStockEndpointUnknownItem(t *testing.T) {
	engine := newStockTestRouter(t)

	recorder := performJSON(t, engine, http.MethodPost, "/update-stock", gin.H{
		"stockId":      "NOPE-1",
		"countChanged": 1,
		"userId":       "u-alice",
		"userName":     "Alice",
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetUpdateRecordsEndpoint(t *testing.T) {
	engine := newStockTestRouter(t)
	createTestItem(t, engine)

	recorder := performJSON(t, engine, http.MethodPost, "/update-stock", gin.H{
		"stockId": "LAP-1", "countChanged": 3, "userId": "u-bob", "userName": "Bob",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = performJSON(t, engine, http.MethodGet, "/update-records/LAP-1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var ledger struct {
		Item struct {
			Count int64 `json:"count"`
		} `json:"stockDetail"`
		Records []struct {
			Delta     int64  `json:"delta"`
			ActorName string `json:"actor_name"`
		} `json:"updateRecords"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &ledger))
	assert.Equal(t, int64(8), ledger.Item.Count)
	require.Len(t, ledger.Records, 2)
	assert.Equal(t, int64(5), ledger.Records[0].Delta)
	assert.Equal(t, int64(3), ledger.Records[1].Delta)
	assert.Equal(t, "Bob", ledger.Records[1].ActorName)
}

func TestDeleteStockItemEndpointCascades(t *testing.T) {
	engine := newStockTestRouter(t)
	createTestItem(t, engine)

	recorder := performJSON(t, engine, http.MethodDelete, "/stock/LAP-1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = performJSON(t, engine, http.MethodGet, "/stock/LAP-1", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	recorder = performJSON(t, engine, http.MethodGet, "/update-records/LAP-1", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestReconcileStockEndpoint(t *testing.T) {
	engine := newStockTestRouter(t)
	createTestItem(t, engine)

	recorder := performJSON(t, engine, http.MethodPost, "/stock/LAP-1/reconcile", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var result struct {
		StoredCount int64 `json:"stored_count"`
		LedgerSum   int64 `json:"ledger_sum"`
		Corrected   bool  `json:"corrected"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	assert.Equal(t, int64(5), result.StoredCount)
	assert.Equal(t, int64(5), result.LedgerSum)
	assert.False(t, result.Corrected)

	recorder = performJSON(t, engine, http.MethodPost, "/stock/NOPE-1/reconcile", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetStockItemsEndpointPagination(t *testing.T) {
	engine := newStockTestRouter(t)

	for _, id := range []string{"A-1", "B-1", "C-1"} {
		recorder := performJSON(t, engine, http.MethodPost, "/stock", gin.H{
			"stock_id": id, "name": "Item " + id, "category": "StationeryItems",
		})
		require.Equal(t, http.StatusCreated, recorder.Code)
	}

	recorder := performJSON(t, engine, http.MethodGet, "/stock?page=1&page_size=2", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var page struct {
		Data     []json.RawMessage `json:"data"`
		Total    int               `json:"total"`
		Page     int               `json:"page"`
		PageSize int               `json:"page_size"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &page))
	assert.Len(t, page.Data, 2)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.PageSize)

	// Unknown category filter is rejected.
	recorder = performJSON(t, engine, http.MethodGet, "/stock?category=Furniture", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
