package services

import (
	"context"
	"testing"
	"time"

	"server/src/models"
	"server/src/repositories"
	"server/src/schemas"
	"server/src/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// testEnv wires every service over a shared in-memory store so the tests
// exercise the real transaction boundaries and cross-service lookups.
type testEnv struct {
	store      *repositories.MemoryStore
	clock      *utils.FixedClock
	portfolios *PortfolioService
	categories *StockCategoryService
	assets     *AssetService
	groups     *AssetGroupService
	history    *AssetHistoryService
	cards      *CreditCardService
}

func newTestEnv() *testEnv {
	store := repositories.NewMemoryStore()
	clock := &utils.FixedClock{Instant: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}

	portfolioRepo := repositories.NewMemoryPortfolioRepository(store)
	assetRepo := repositories.NewMemoryAssetRepository(store)
	groupRepo := repositories.NewMemoryAssetGroupRepository(store)
	categoryRepo := repositories.NewMemoryStockCategoryRepository(store)
	historyRepo := repositories.NewMemoryAssetHistoryRepository(store)
	cardRepo := repositories.NewMemoryCreditCardRepository(store)
	txRunner := repositories.NewMemoryTxRunner(store)

	portfolios := NewPortfolioService(portfolioRepo, assetRepo, groupRepo, txRunner, clock)
	categories := NewStockCategoryService(categoryRepo, assetRepo, portfolios)
	history := NewAssetHistoryService(historyRepo, clock)
	assets := NewAssetService(assetRepo, groupRepo, portfolios, categories, history, txRunner)
	groups := NewAssetGroupService(groupRepo, assets, txRunner, clock)
	cards := NewCreditCardService(cardRepo, portfolios, clock)

	return &testEnv{
		store:      store,
		clock:      clock,
		portfolios: portfolios,
		categories: categories,
		assets:     assets,
		groups:     groups,
		history:    history,
		cards:      cards,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string { return &s }

func (e *testEnv) mustPortfolio(t *testing.T, name string) int64 {
	t.Helper()
	resp, err := e.portfolios.CreatePortfolio(context.Background(), &schemas.PortfolioRequest{
		PortfolioName:     name,
		InitialInvestment: dec("10000"),
	})
	require.NoError(t, err)
	return resp.PortfolioID
}

func (e *testEnv) mustCategory(t *testing.T, name string) int64 {
	t.Helper()
	resp, err := e.categories.CreateCategory(context.Background(), &schemas.StockCategoryRequest{
		CategoryName: name,
	})
	require.NoError(t, err)
	return resp.CategoryID
}

func (e *testEnv) mustHolding(t *testing.T, portfolioID int64, name string, assetType models.AssetType,
	quantity, buyPrice, currentPrice string, categoryID *int64) *schemas.AssetResponse {
	t.Helper()
	resp, err := e.assets.CreateAsset(context.Background(), portfolioID, &schemas.AssetRequest{
		AssetName:       name,
		AssetType:       assetType,
		Quantity:        dec(quantity),
		BuyPrice:        decPtr(buyPrice),
		CurrentPrice:    dec(currentPrice),
		IsWishlist:      false,
		StockCategoryID: categoryID,
	})
	require.NoError(t, err)
	return resp
}

func (e *testEnv) mustWishlist(t *testing.T, portfolioID int64, name string, assetType models.AssetType,
	quantity, currentPrice string, categoryID *int64) *schemas.AssetResponse {
	t.Helper()
	resp, err := e.assets.CreateAsset(context.Background(), portfolioID, &schemas.AssetRequest{
		AssetName:       name,
		AssetType:       assetType,
		Quantity:        dec(quantity),
		CurrentPrice:    dec(currentPrice),
		IsWishlist:      true,
		StockCategoryID: categoryID,
	})
	require.NoError(t, err)
	return resp
}

func (e *testEnv) mustGroup(t *testing.T, name string) int64 {
	t.Helper()
	resp, err := e.groups.CreateGroup(context.Background(), &schemas.AssetGroupRequest{GroupName: name})
	require.NoError(t, err)
	return resp.GroupID
}

func requireHTTPStatus(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	var httpErr *utils.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, code, httpErr.Code)
}
