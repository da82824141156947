package services

import (
	"context"
	"testing"
	"time"

	"server/src/models"
	"server/src/schemas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryOrderedNewestFirst(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	portfolioID := env.mustPortfolio(t, "Main")

	asset := env.mustHolding(t, portfolioID, "Gold", models.AssetTypeOther, "2", "50", "55", nil)

	env.clock.Instant = env.clock.Instant.Add(24 * time.Hour)
	_, err := env.assets.UpdateAsset(ctx, asset.AssetID, &schemas.AssetUpdateRequest{
		CurrentPrice: decPtr("58"),
	})
	require.NoError(t, err)

	env.clock.Instant = env.clock.Instant.Add(24 * time.Hour)
	_, err = env.assets.UpdateAsset(ctx, asset.AssetID, &schemas.AssetUpdateRequest{
		Quantity: decPtr("3"),
	})
	require.NoError(t, err)

	entries, err := env.history.GetHistory(ctx, asset.AssetID)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, models.ActionQuantityUpdate, entries[0].ActionType)
	assert.Equal(t, "2026-03-12", entries[0].ActionDate)
	assert.Equal(t, models.ActionPriceUpdate, entries[1].ActionType)
	assert.Equal(t, "2026-03-11", entries[1].ActionDate)
	assert.Equal(t, models.ActionBuy, entries[2].ActionType)
	assert.Equal(t, "2026-03-10", entries[2].ActionDate)
}

func TestHistoryEmptyForUnknownAsset(t *testing.T) {
	env := newTestEnv()
	entries, err := env.history.GetHistory(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
