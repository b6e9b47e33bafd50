package sellers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mirador/internal/dataset"
	"mirador/internal/pipeline"
	"mirador/internal/testutil"
)

func newController(t *testing.T) *Controller {
	t.Helper()
	store := dataset.NewStore(testutil.NewSnapshot(t))
	return NewModule(store, zap.NewNop())
}

func TestController_HandleRevenue(t *testing.T) {
	ctrl := newController(t)

	req := httptest.NewRequest(http.MethodGet, "/api/sellers/revenue?limit=2", nil)
	rec := httptest.NewRecorder()
	ctrl.HandleRevenue(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var table pipeline.Table
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &table))
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "s1", table.Rows[0][0])
}

func TestController_HandleTopSellers_InvalidScoreRange(t *testing.T) {
	ctrl := newController(t)

	req := httptest.NewRequest(http.MethodGet, "/api/sellers/top?minScore=abc", nil)
	rec := httptest.NewRecorder()
	ctrl.HandleTopSellers(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body["error"])
	assert.NotEmpty(t, body["traceId"])
}

func TestController_HandleTopSellers_InvertedRange(t *testing.T) {
	ctrl := newController(t)

	req := httptest.NewRequest(http.MethodGet, "/api/sellers/top?minPrice=50&maxPrice=10", nil)
	rec := httptest.NewRecorder()
	ctrl.HandleTopSellers(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestController_HandleFreight_NonPositiveLimit(t *testing.T) {
	ctrl := newController(t)

	req := httptest.NewRequest(http.MethodGet, "/api/sellers/freight?limit=0", nil)
	rec := httptest.NewRecorder()
	ctrl.HandleFreight(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestController_HandleBounds(t *testing.T) {
	ctrl := newController(t)

	req := httptest.NewRequest(http.MethodGet, "/api/sellers/bounds?states=SP,RJ", nil)
	rec := httptest.NewRecorder()
	ctrl.HandleBounds(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var bounds pipeline.SalesBounds
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bounds))
	assert.True(t, bounds.TotalPrice.OK)
	assert.InDelta(t, 12.50, bounds.TotalPrice.Min, 1e-9)
}

func TestController_HandleBounds_UnmatchedState(t *testing.T) {
	ctrl := newController(t)

	req := httptest.NewRequest(http.MethodGet, "/api/sellers/bounds?states=AC", nil)
	rec := httptest.NewRecorder()
	ctrl.HandleBounds(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var bounds pipeline.SalesBounds
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bounds))
	assert.False(t, bounds.TotalPrice.OK)
	assert.False(t, bounds.Score.OK)
}
