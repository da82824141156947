package services

import (
	"context"
	"fmt"

	"server/src/models"
	"server/src/repositories"
	"server/src/schemas"
	"server/src/utils"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AssetGroupService owns group CRUD, the asset-to-group membership relation,
// and group-scoped performance. Groups are global and span portfolios;
// performance is always scoped to one portfolio and excludes wishlist assets.
type AssetGroupService struct {
	groupRepo repositories.AssetGroupRepository
	assetSvc  *AssetService
	txRunner  repositories.TxRunner
	clock     utils.Clock
}

func NewAssetGroupService(
	groupRepo repositories.AssetGroupRepository,
	assetSvc *AssetService,
	txRunner repositories.TxRunner,
	clock utils.Clock,
) *AssetGroupService {
	return &AssetGroupService{
		groupRepo: groupRepo,
		assetSvc:  assetSvc,
		txRunner:  txRunner,
		clock:     clock,
	}
}

func (s *AssetGroupService) CreateGroup(ctx context.Context, req *schemas.AssetGroupRequest) (*schemas.AssetGroupResponse, error) {
	if req.GroupName == "" {
		return nil, utils.BadRequest("groupName must not be blank")
	}
	exists, err := s.groupRepo.ExistsByName(ctx, req.GroupName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.AlreadyExists(fmt.Sprintf("group '%s' already exists", req.GroupName))
	}

	group := &models.AssetGroup{
		Name:        req.GroupName,
		Description: req.Description,
		CreatedDate: s.clock.Now(),
	}
	if err := s.groupRepo.Create(ctx, group, nil); err != nil {
		return nil, err
	}

	utils.LoggerFromContext(ctx).Infof("Group created: %d", group.ID)
	return s.mapToResponse(ctx, group)
}

func (s *AssetGroupService) GetAllGroups(ctx context.Context) ([]schemas.AssetGroupResponse, error) {
	groups, err := s.groupRepo.GetAllOrderedByName(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]schemas.AssetGroupResponse, 0, len(groups))
	for i := range groups {
		resp, err := s.mapToResponse(ctx, &groups[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *AssetGroupService) GetGroup(ctx context.Context, groupID int64) (*schemas.AssetGroupResponse, error) {
	group, err := s.findGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return s.mapToResponse(ctx, group)
}

func (s *AssetGroupService) UpdateGroup(ctx context.Context, groupID int64, req *schemas.AssetGroupRequest) (*schemas.AssetGroupResponse, error) {
	group, err := s.findGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if req.GroupName != "" && req.GroupName != group.Name {
		exists, err := s.groupRepo.ExistsByName(ctx, req.GroupName)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, utils.AlreadyExists(fmt.Sprintf("group '%s' already exists", req.GroupName))
		}
		group.Name = req.GroupName
	}
	if req.Description != "" {
		group.Description = req.Description
	}

	if err := s.groupRepo.Update(ctx, group, nil); err != nil {
		return nil, err
	}
	return s.mapToResponse(ctx, group)
}

// DeleteGroup clears the group's membership rows, then removes the group.
func (s *AssetGroupService) DeleteGroup(ctx context.Context, groupID int64) error {
	group, err := s.findGroupByID(ctx, groupID)
	if err != nil {
		return err
	}

	err = s.txRunner.WithinTx(ctx, func(tx pgx.Tx) error {
		if err := s.groupRepo.RemoveAllForGroup(ctx, group.ID, tx); err != nil {
			return err
		}
		return s.groupRepo.Delete(ctx, group.ID, tx)
	})
	if err != nil {
		return err
	}

	utils.LoggerFromContext(ctx).Infof("Group %d deleted", groupID)
	return nil
}

// AddGroupsToAsset inserts the asset into each supplied group. Re-adding an
// existing membership is a silent no-op. All supplied groups are resolved
// before anything is written, so an unknown id fails the whole call.
func (s *AssetGroupService) AddGroupsToAsset(ctx context.Context, assetID int64, req *schemas.AssetGroupMemberRequest) ([]schemas.AssetGroupResponse, error) {
	asset, err := s.assetSvc.findAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	groups, err := s.resolveGroups(ctx, req.GroupIDs)
	if err != nil {
		return nil, err
	}

	err = s.txRunner.WithinTx(ctx, func(tx pgx.Tx) error {
		for _, g := range groups {
			if err := s.groupRepo.AddMember(ctx, g.ID, asset.ID, tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.groupResponsesForAsset(ctx, asset.ID)
}

// ReplaceGroupsForAsset swaps the asset's membership to exactly the supplied
// set, inside one transaction so no reader sees the asset in neither or both.
func (s *AssetGroupService) ReplaceGroupsForAsset(ctx context.Context, assetID int64, req *schemas.AssetGroupMemberRequest) ([]schemas.AssetGroupResponse, error) {
	asset, err := s.assetSvc.findAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	groups, err := s.resolveGroups(ctx, req.GroupIDs)
	if err != nil {
		return nil, err
	}

	err = s.txRunner.WithinTx(ctx, func(tx pgx.Tx) error {
		if err := s.groupRepo.RemoveAllForAsset(ctx, asset.ID, tx); err != nil {
			return err
		}
		for _, g := range groups {
			if err := s.groupRepo.AddMember(ctx, g.ID, asset.ID, tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.groupResponsesForAsset(ctx, asset.ID)
}

// RemoveAssetFromGroup silently succeeds when the asset is not a member.
func (s *AssetGroupService) RemoveAssetFromGroup(ctx context.Context, assetID, groupID int64) error {
	asset, err := s.assetSvc.findAssetByID(ctx, assetID)
	if err != nil {
		return err
	}
	group, err := s.findGroupByID(ctx, groupID)
	if err != nil {
		return err
	}
	return s.groupRepo.RemoveMember(ctx, group.ID, asset.ID, nil)
}

func (s *AssetGroupService) GetGroupsForAsset(ctx context.Context, assetID int64) ([]schemas.AssetGroupResponse, error) {
	asset, err := s.assetSvc.findAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	return s.groupResponsesForAsset(ctx, asset.ID)
}

// GetGroupPerformance aggregates the group's holding assets belonging to the
// given portfolio.
func (s *AssetGroupService) GetGroupPerformance(ctx context.Context, groupID, portfolioID int64) (*schemas.AssetGroupPerformanceResponse, error) {
	group, err := s.findGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return s.buildPerformance(ctx, group, portfolioID)
}

// GetAllGroupPerformanceForPortfolio computes performance for every group
// against the portfolio, omitting groups with no holdings there.
func (s *AssetGroupService) GetAllGroupPerformanceForPortfolio(ctx context.Context, portfolioID int64) ([]schemas.AssetGroupPerformanceResponse, error) {
	groups, err := s.groupRepo.GetAllOrderedByName(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]schemas.AssetGroupPerformanceResponse, 0, len(groups))
	for i := range groups {
		perf, err := s.buildPerformance(ctx, &groups[i], portfolioID)
		if err != nil {
			return nil, err
		}
		if perf.HoldingCount > 0 {
			result = append(result, *perf)
		}
	}
	return result, nil
}

func (s *AssetGroupService) buildPerformance(ctx context.Context, group *models.AssetGroup, portfolioID int64) (*schemas.AssetGroupPerformanceResponse, error) {
	members, err := s.groupRepo.GetMemberAssets(ctx, group.ID)
	if err != nil {
		return nil, err
	}

	totalInvested := decimal.Zero
	currentValue := decimal.Zero
	holdingCount := 0
	for i := range members {
		a := &members[i]
		if a.PortfolioID != portfolioID || a.Wishlist {
			continue
		}
		holdingCount++
		totalInvested = totalInvested.Add(models.InvestedValue(a))
		currentValue = currentValue.Add(models.CurrentValue(a))
	}

	absoluteReturn := currentValue.Sub(totalInvested)
	percentageReturn := decimal.Zero
	if totalInvested.IsPositive() {
		percentageReturn = models.PercentageOf(absoluteReturn, totalInvested)
	}

	return &schemas.AssetGroupPerformanceResponse{
		GroupID:          group.ID,
		GroupName:        group.Name,
		HoldingCount:     holdingCount,
		TotalInvested:    totalInvested,
		CurrentValue:     currentValue,
		AbsoluteReturn:   absoluteReturn,
		PercentageReturn: percentageReturn,
	}, nil
}

func (s *AssetGroupService) findGroupByID(ctx context.Context, groupID int64) (*models.AssetGroup, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, utils.NotFound(fmt.Sprintf("asset group not found with ID: %d", groupID))
	}
	return group, nil
}

func (s *AssetGroupService) resolveGroups(ctx context.Context, groupIDs []int64) ([]models.AssetGroup, error) {
	resolved := make([]models.AssetGroup, 0, len(groupIDs))
	seen := make(map[int64]struct{})
	for _, id := range groupIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		group, err := s.findGroupByID(ctx, id)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, *group)
	}
	return resolved, nil
}

func (s *AssetGroupService) groupResponsesForAsset(ctx context.Context, assetID int64) ([]schemas.AssetGroupResponse, error) {
	groups, err := s.groupRepo.GetGroupsForAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	responses := make([]schemas.AssetGroupResponse, 0, len(groups))
	for i := range groups {
		resp, err := s.mapToResponse(ctx, &groups[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *AssetGroupService) mapToResponse(ctx context.Context, group *models.AssetGroup) (*schemas.AssetGroupResponse, error) {
	members, err := s.groupRepo.GetMemberAssets(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	assetResponses, err := s.assetSvc.mapAllToResponse(ctx, members)
	if err != nil {
		return nil, err
	}

	return &schemas.AssetGroupResponse{
		GroupID:     group.ID,
		GroupName:   group.Name,
		Description: group.Description,
		CreatedDate: group.CreatedDate.Format(utils.ShortDashDateLayout),
		AssetCount:  len(members),
		Assets:      assetResponses,
	}, nil
}
