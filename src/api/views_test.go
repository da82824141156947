package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"server/src/repositories"
	"server/src/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	store := repositories.NewMemoryStore()
	deps := serviceDeps{
		portfolioRepo: repositories.NewMemoryPortfolioRepository(store),
		assetRepo:     repositories.NewMemoryAssetRepository(store),
		groupRepo:     repositories.NewMemoryAssetGroupRepository(store),
		categoryRepo:  repositories.NewMemoryStockCategoryRepository(store),
		historyRepo:   repositories.NewMemoryAssetHistoryRepository(store),
		cardRepo:      repositories.NewMemoryCreditCardRepository(store),
		txRunner:      repositories.NewMemoryTxRunner(store),
	}
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	clock := utils.FixedClock{Instant: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	return newServer("8000", logger, deps, clock)
}

func do(t *testing.T, server *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	return recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), out))
}

func TestHealthcheck(t *testing.T) {
	server := newTestServer()
	resp := do(t, server, http.MethodGet, "/alive", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "OK", resp.Body.String())
}

func TestAssetLifecycleOverHTTP(t *testing.T) {
	server := newTestServer()

	resp := do(t, server, http.MethodPost, "/api/portfolios", map[string]any{
		"portfolioName":     "Main",
		"initialInvestment": "10000",
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	var portfolio struct {
		PortfolioID int64  `json:"portfolioId"`
		CreatedDate string `json:"createdDate"`
	}
	decode(t, resp, &portfolio)
	assert.Equal(t, "2026-03-10", portfolio.CreatedDate)

	// wishlist asset, then the one-way buy conversion
	resp = do(t, server, http.MethodPost, "/api/portfolios/1/assets", map[string]any{
		"assetName":    "Dream ETF",
		"assetType":    "ETF",
		"quantity":     "10",
		"currentPrice": "99",
		"isWishlist":   true,
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	var asset struct {
		AssetID    int64 `json:"assetId"`
		IsWishlist bool  `json:"isWishlist"`
	}
	decode(t, resp, &asset)
	assert.True(t, asset.IsWishlist)

	resp = do(t, server, http.MethodPost, "/api/assets/2/buy", map[string]any{
		"buyPrice": "95",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	// buying again is rejected
	resp = do(t, server, http.MethodPost, "/api/assets/2/buy", map[string]any{
		"buyPrice": "90",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = do(t, server, http.MethodGet, "/api/assets/2/history", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var history []struct {
		ActionType string `json:"actionType"`
		Remarks    string `json:"remarks"`
	}
	decode(t, resp, &history)
	require.Len(t, history, 1)
	assert.Equal(t, "BUY", history[0].ActionType)
	assert.Equal(t, "Converted from wishlist to holding", history[0].Remarks)

	resp = do(t, server, http.MethodGet, "/api/portfolios/1/summary", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var summary struct {
		TotalInvestedAmount string            `json:"totalInvestedAmount"`
		AssetAllocation     map[string]string `json:"assetAllocation"`
	}
	decode(t, resp, &summary)
	assert.Equal(t, "950", summary.TotalInvestedAmount)
	assert.Equal(t, "100", summary.AssetAllocation["ETF"])

	resp = do(t, server, http.MethodDelete, "/api/assets/2", nil)
	assert.Equal(t, http.StatusNoContent, resp.Code)

	// history survives the deletion
	resp = do(t, server, http.MethodGet, "/api/assets/2/history", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	decode(t, resp, &history)
	assert.Len(t, history, 1)
}

func TestErrorStatusMapping(t *testing.T) {
	server := newTestServer()

	resp := do(t, server, http.MethodGet, "/api/portfolios/42", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	var body struct {
		Error string `json:"error"`
	}
	decode(t, resp, &body)
	assert.Contains(t, body.Error, "portfolio not found")

	resp = do(t, server, http.MethodPost, "/api/portfolios", map[string]any{
		"portfolioName":     "",
		"initialInvestment": "100",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	do(t, server, http.MethodPost, "/api/portfolios", map[string]any{
		"portfolioName": "Main", "initialInvestment": "100",
	})
	resp = do(t, server, http.MethodPost, "/api/portfolios", map[string]any{
		"portfolioName": "Main", "initialInvestment": "100",
	})
	assert.Equal(t, http.StatusConflict, resp.Code)

	resp = do(t, server, http.MethodGet, "/api/assets/notanumber", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGroupRoutes(t *testing.T) {
	server := newTestServer()

	do(t, server, http.MethodPost, "/api/portfolios", map[string]any{
		"portfolioName": "Main", "initialInvestment": "100",
	})
	resp := do(t, server, http.MethodPost, "/api/portfolios/1/assets", map[string]any{
		"assetName": "Gold", "assetType": "OTHER",
		"quantity": "2", "buyPrice": "10", "currentPrice": "15",
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	var asset struct {
		AssetID int64 `json:"assetId"`
	}
	decode(t, resp, &asset)

	resp = do(t, server, http.MethodPost, "/api/asset-groups", map[string]any{
		"groupName": "Metals",
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	var group struct {
		GroupID int64 `json:"groupId"`
	}
	decode(t, resp, &group)

	resp = do(t, server, http.MethodPost, fmt.Sprintf("/api/assets/%d/groups", asset.AssetID), map[string]any{
		"groupIds": []int64{group.GroupID},
	})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = do(t, server, http.MethodGet, fmt.Sprintf("/api/asset-groups/%d/performance?portfolioId=1", group.GroupID), nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var perf struct {
		HoldingCount     int    `json:"holdingCount"`
		PercentageReturn string `json:"percentageReturn"`
	}
	decode(t, resp, &perf)
	assert.Equal(t, 1, perf.HoldingCount)
	assert.Equal(t, "50", perf.PercentageReturn)
}
