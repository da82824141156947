package services

import (
	"context"
	"net/http"
	"testing"

	"server/src/models"
	"server/src/schemas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePortfolioValidation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.portfolios.CreatePortfolio(ctx, &schemas.PortfolioRequest{
		PortfolioName: "", InitialInvestment: dec("100"),
	})
	requireHTTPStatus(t, err, http.StatusBadRequest)

	_, err = env.portfolios.CreatePortfolio(ctx, &schemas.PortfolioRequest{
		PortfolioName: "Retirement", InitialInvestment: dec("-5"),
	})
	requireHTTPStatus(t, err, http.StatusBadRequest)
}

func TestCreatePortfolioDuplicateName(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.mustPortfolio(t, "Retirement")
	_, err := env.portfolios.CreatePortfolio(ctx, &schemas.PortfolioRequest{
		PortfolioName: "Retirement", InitialInvestment: dec("100"),
	})
	requireHTTPStatus(t, err, http.StatusConflict)
}

func TestGetPortfolioNotFound(t *testing.T) {
	env := newTestEnv()
	_, err := env.portfolios.GetPortfolio(context.Background(), 42)
	requireHTTPStatus(t, err, http.StatusNotFound)
}

func TestCreatePortfolioUsesClockDate(t *testing.T) {
	env := newTestEnv()

	resp, err := env.portfolios.CreatePortfolio(context.Background(), &schemas.PortfolioRequest{
		PortfolioName: "Retirement", InitialInvestment: dec("100"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", resp.CreatedDate)
}

func TestPortfolioSummaryExcludesWishlist(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	portfolioID := env.mustPortfolio(t, "Main")
	categoryID := env.mustCategory(t, "Tech")

	env.mustHolding(t, portfolioID, "AAPL", models.AssetTypeStock, "2", "10", "15", &categoryID)
	env.mustHolding(t, portfolioID, "Gov Bond", models.AssetTypeBond, "1", "100", "120", nil)
	env.mustWishlist(t, portfolioID, "Dream ETF", models.AssetTypeETF, "50", "999", nil)

	summary, err := env.portfolios.GetPortfolioSummary(ctx, portfolioID)
	require.NoError(t, err)

	assert.True(t, summary.TotalInvestedAmount.Equal(dec("120")))
	assert.True(t, summary.CurrentPortfolioValue.Equal(dec("150")))
	assert.True(t, summary.AbsoluteReturn.Equal(dec("30")))
	assert.True(t, summary.PercentageReturn.Equal(dec("25")))

	require.Len(t, summary.AssetAllocation, 2)
	assert.True(t, summary.AssetAllocation["STOCK"].Equal(dec("20")))
	assert.True(t, summary.AssetAllocation["BOND"].Equal(dec("80")))
}

func TestPortfolioSummaryEmptyPortfolio(t *testing.T) {
	env := newTestEnv()

	portfolioID := env.mustPortfolio(t, "Empty")
	summary, err := env.portfolios.GetPortfolioSummary(context.Background(), portfolioID)
	require.NoError(t, err)

	assert.True(t, summary.TotalInvestedAmount.IsZero())
	assert.True(t, summary.CurrentPortfolioValue.IsZero())
	assert.True(t, summary.PercentageReturn.IsZero())
	assert.Empty(t, summary.AssetAllocation)
}

func TestDeletePortfolioRemovesAssetsAndMemberships(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	portfolioID := env.mustPortfolio(t, "Main")
	asset := env.mustHolding(t, portfolioID, "Gold", models.AssetTypeOther, "1", "50", "60", nil)
	groupID := env.mustGroup(t, "Metals")

	_, err := env.groups.AddGroupsToAsset(ctx, asset.AssetID, &schemas.AssetGroupMemberRequest{GroupIDs: []int64{groupID}})
	require.NoError(t, err)

	require.NoError(t, env.portfolios.DeletePortfolio(ctx, portfolioID))

	_, err = env.portfolios.GetPortfolio(ctx, portfolioID)
	requireHTTPStatus(t, err, http.StatusNotFound)
	_, err = env.assets.GetAsset(ctx, asset.AssetID)
	requireHTTPStatus(t, err, http.StatusNotFound)

	// the group itself survives, just empty
	group, err := env.groups.GetGroup(ctx, groupID)
	require.NoError(t, err)
	assert.Zero(t, group.AssetCount)
}
