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

func TestCreateGroupDuplicateName(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.mustGroup(t, "Metals")
	_, err := env.groups.CreateGroup(ctx, &schemas.AssetGroupRequest{GroupName: "Metals"})
	requireHTTPStatus(t, err, http.StatusConflict)
}

func TestAddGroupsToAssetIsIdempotent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	portfolioID := env.mustPortfolio(t, "Main")
	asset := env.mustHolding(t, portfolioID, "Gold", models.AssetTypeOther, "1", "50", "60", nil)
	groupID := env.mustGroup(t, "Metals")

	req := &schemas.AssetGroupMemberRequest{GroupIDs: []int64{groupID, groupID}}
	groups, err := env.groups.AddGroupsToAsset(ctx, asset.AssetID, req)
	require.NoError(t, err)
	require.Len(t, groups, 1)

	// re-adding is a silent no-op
	groups, err = env.groups.AddGroupsToAsset(ctx, asset.AssetID, req)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, 1, groups[0].AssetCount)
}

func TestAddGroupsToAssetUnknownGroupWritesNothing(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	portfolioID := env.mustPortfolio(t, "Main")
	asset := env.mustHolding(t, portfolioID, "Gold", models.AssetTypeOther, "1", "50", "60", nil)
	groupID := env.mustGroup(t, "Metals")

	_, err := env.groups.AddGroupsToAsset(ctx, asset.AssetID, &schemas.AssetGroupMemberRequest{
		GroupIDs: []int64{groupID, 999},
	})
	requireHTTPStatus(t, err, http.StatusNotFound)

	groups, err := env.groups.GetGroupsForAsset(ctx, asset.AssetID)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestReplaceGroupsForAsset(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	portfolioID := env.mustPortfolio(t, "Main")
	asset := env.mustHolding(t, portfolioID, "Gold", models.AssetTypeOther, "1", "50", "60", nil)
	metals := env.mustGroup(t, "Metals")
	commodities := env.mustGroup(t, "Commodities")
	safeHaven := env.mustGroup(t, "Safe Haven")

	_, err := env.groups.AddGroupsToAsset(ctx, asset.AssetID, &schemas.AssetGroupMemberRequest{
		GroupIDs: []int64{metals, commodities},
	})
	require.NoError(t, err)

	replaced, err := env.groups.ReplaceGroupsForAsset(ctx, asset.AssetID, &schemas.AssetGroupMemberRequest{
		GroupIDs: []int64{safeHaven},
	})
	require.NoError(t, err)
	require.Len(t, replaced, 1)
	assert.Equal(t, "Safe Haven", replaced[0].GroupName)
}

func TestRemoveAssetFromGroupSilentWhenNotMember(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	portfolioID := env.mustPortfolio(t, "Main")
	asset := env.mustHolding(t, portfolioID, "Gold", models.AssetTypeOther, "1", "50", "60", nil)
	groupID := env.mustGroup(t, "Metals")

	require.NoError(t, env.groups.RemoveAssetFromGroup(ctx, asset.AssetID, groupID))
}

func TestDeleteGroupKeepsAssets(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	portfolioID := env.mustPortfolio(t, "Main")
	asset := env.mustHolding(t, portfolioID, "Gold", models.AssetTypeOther, "1", "50", "60", nil)
	groupID := env.mustGroup(t, "Metals")

	_, err := env.groups.AddGroupsToAsset(ctx, asset.AssetID, &schemas.AssetGroupMemberRequest{GroupIDs: []int64{groupID}})
	require.NoError(t, err)

	require.NoError(t, env.groups.DeleteGroup(ctx, groupID))

	_, err = env.groups.GetGroup(ctx, groupID)
	requireHTTPStatus(t, err, http.StatusNotFound)

	got, err := env.assets.GetAsset(ctx, asset.AssetID)
	require.NoError(t, err)
	assert.Empty(t, got.GroupNames)
}

func TestGroupPerformanceFiltersPortfolioAndWishlist(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	mainID := env.mustPortfolio(t, "Main")
	otherID := env.mustPortfolio(t, "Other")
	groupID := env.mustGroup(t, "Mixed")

	inScope := env.mustHolding(t, mainID, "Gold", models.AssetTypeOther, "2", "10", "15", nil)
	wished := env.mustWishlist(t, mainID, "Dream ETF", models.AssetTypeETF, "10", "99", nil)
	elsewhere := env.mustHolding(t, otherID, "Silver", models.AssetTypeOther, "100", "1", "2", nil)

	for _, id := range []int64{inScope.AssetID, wished.AssetID, elsewhere.AssetID} {
		_, err := env.groups.AddGroupsToAsset(ctx, id, &schemas.AssetGroupMemberRequest{GroupIDs: []int64{groupID}})
		require.NoError(t, err)
	}

	perf, err := env.groups.GetGroupPerformance(ctx, groupID, mainID)
	require.NoError(t, err)
	assert.Equal(t, 1, perf.HoldingCount)
	assert.True(t, perf.TotalInvested.Equal(dec("20")))
	assert.True(t, perf.CurrentValue.Equal(dec("30")))
	assert.True(t, perf.PercentageReturn.Equal(dec("50")))
}

func TestAllGroupPerformanceOmitsEmptyGroups(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	portfolioID := env.mustPortfolio(t, "Main")
	metals := env.mustGroup(t, "Metals")
	env.mustGroup(t, "Unused")

	asset := env.mustHolding(t, portfolioID, "Gold", models.AssetTypeOther, "1", "50", "60", nil)
	_, err := env.groups.AddGroupsToAsset(ctx, asset.AssetID, &schemas.AssetGroupMemberRequest{GroupIDs: []int64{metals}})
	require.NoError(t, err)

	all, err := env.groups.GetAllGroupPerformanceForPortfolio(ctx, portfolioID)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Metals", all[0].GroupName)
}
