package services

import (
	"context"
	"fmt"

	"server/src/models"
	"server/src/repositories"
	"server/src/schemas"
	"server/src/utils"

	"github.com/jackc/pgx/v5"
)

// AssetService owns the asset lifecycle: creation as wishlist or holding,
// partial updates, the one-way wishlist to holding conversion, and deletion.
// Every mutation and its history entries run inside one transaction.
type AssetService struct {
	assetRepo    repositories.AssetRepository
	groupRepo    repositories.AssetGroupRepository
	portfolioSvc *PortfolioService
	categorySvc  *StockCategoryService
	historySvc   *AssetHistoryService
	txRunner     repositories.TxRunner
}

func NewAssetService(
	assetRepo repositories.AssetRepository,
	groupRepo repositories.AssetGroupRepository,
	portfolioSvc *PortfolioService,
	categorySvc *StockCategoryService,
	historySvc *AssetHistoryService,
	txRunner repositories.TxRunner,
) *AssetService {
	return &AssetService{
		assetRepo:    assetRepo,
		groupRepo:    groupRepo,
		portfolioSvc: portfolioSvc,
		categorySvc:  categorySvc,
		historySvc:   historySvc,
		txRunner:     txRunner,
	}
}

// CreateAsset validates the wishlist/holding state, resolves the stock
// category for STOCK assets, persists the asset and, for holdings, records
// the initial BUY history entry.
func (s *AssetService) CreateAsset(ctx context.Context, portfolioID int64, req *schemas.AssetRequest) (*schemas.AssetResponse, error) {
	logger := utils.LoggerFromContext(ctx)
	logger.Infof("Creating asset '%s' in portfolio %d", req.AssetName, portfolioID)

	if _, err := s.portfolioSvc.findPortfolioByID(ctx, portfolioID); err != nil {
		return nil, err
	}
	if !req.AssetType.Valid() {
		return nil, utils.BadRequest(fmt.Sprintf("unknown asset type '%s'", req.AssetType))
	}
	if !req.Quantity.IsPositive() {
		return nil, utils.BadRequest("quantity must be positive")
	}
	if !req.CurrentPrice.IsPositive() {
		return nil, utils.BadRequest("currentPrice must be positive")
	}

	if req.IsWishlist && req.BuyPrice != nil {
		return nil, utils.BadRequest("buyPrice must be null for wishlist assets")
	}
	if !req.IsWishlist {
		if req.BuyPrice == nil {
			return nil, utils.BadRequest("buyPrice is required for holding assets")
		}
		if !req.BuyPrice.IsPositive() {
			return nil, utils.BadRequest("buyPrice must be positive")
		}
	}

	var categoryID *int64
	if req.AssetType == models.AssetTypeStock {
		if req.StockCategoryID == nil {
			return nil, utils.BadRequest("stockCategoryId is mandatory for STOCK assets")
		}
		category, err := s.categorySvc.findCategoryByID(ctx, *req.StockCategoryID)
		if err != nil {
			return nil, err
		}
		categoryID = &category.ID
	}

	asset := &models.Asset{
		PortfolioID:  portfolioID,
		Name:         req.AssetName,
		AssetType:    req.AssetType,
		Quantity:     req.Quantity,
		BuyPrice:     req.BuyPrice,
		CurrentPrice: req.CurrentPrice,
		Wishlist:     req.IsWishlist,
		CategoryID:   categoryID,
	}

	err := s.txRunner.WithinTx(ctx, func(tx pgx.Tx) error {
		if err := s.assetRepo.Create(ctx, asset, tx); err != nil {
			return err
		}
		if !asset.Wishlist {
			return s.historySvc.RecordBuy(ctx, asset, asset.Quantity, *asset.BuyPrice, "Initial purchase", tx)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Infof("Asset created with ID: %d", asset.ID)
	return s.mapToResponse(ctx, asset)
}

func (s *AssetService) GetAsset(ctx context.Context, assetID int64) (*schemas.AssetResponse, error) {
	asset, err := s.findAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	return s.mapToResponse(ctx, asset)
}

// GetPortfolioAssets returns holdings and wishlist items alike.
func (s *AssetService) GetPortfolioAssets(ctx context.Context, portfolioID int64) ([]schemas.AssetResponse, error) {
	if _, err := s.portfolioSvc.findPortfolioByID(ctx, portfolioID); err != nil {
		return nil, err
	}
	assets, err := s.assetRepo.GetByPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, err
	}
	return s.mapAllToResponse(ctx, assets)
}

func (s *AssetService) GetWishlistAssets(ctx context.Context, portfolioID int64) ([]schemas.AssetResponse, error) {
	if _, err := s.portfolioSvc.findPortfolioByID(ctx, portfolioID); err != nil {
		return nil, err
	}
	assets, err := s.assetRepo.GetByPortfolioAndWishlist(ctx, portfolioID, true)
	if err != nil {
		return nil, err
	}
	return s.mapAllToResponse(ctx, assets)
}

func (s *AssetService) GetPerformance(ctx context.Context, assetID int64) (*schemas.AssetPerformanceResponse, error) {
	a, err := s.findAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	return &schemas.AssetPerformanceResponse{
		AssetID:          a.ID,
		AssetName:        a.Name,
		AssetType:        a.AssetType,
		IsWishlist:       a.Wishlist,
		Quantity:         a.Quantity,
		BuyPrice:         a.BuyPrice,
		CurrentPrice:     a.CurrentPrice,
		InvestedValue:    models.InvestedValue(a),
		CurrentValue:     models.CurrentValue(a),
		AbsoluteReturn:   models.AbsoluteReturn(a),
		PercentageReturn: models.PercentageReturn(a),
	}, nil
}

// UpdateAsset applies the non-nil fields of the request. A real quantity or
// current price change records a history entry computed from the old values;
// a no-op change records nothing. buyPrice and the wishlist flag cannot be
// changed here.
func (s *AssetService) UpdateAsset(ctx context.Context, assetID int64, req *schemas.AssetUpdateRequest) (*schemas.AssetResponse, error) {
	asset, err := s.findAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	if req.AssetName != nil {
		asset.Name = *req.AssetName
	}
	if req.AssetType != nil {
		if !req.AssetType.Valid() {
			return nil, utils.BadRequest(fmt.Sprintf("unknown asset type '%s'", *req.AssetType))
		}
		asset.AssetType = *req.AssetType
		if *req.AssetType == models.AssetTypeStock && asset.CategoryID == nil && req.StockCategoryID == nil {
			return nil, utils.BadRequest("stockCategoryId is mandatory when assetType is STOCK")
		}
	}
	if req.StockCategoryID != nil {
		category, err := s.categorySvc.findCategoryByID(ctx, *req.StockCategoryID)
		if err != nil {
			return nil, err
		}
		asset.CategoryID = &category.ID
	}

	quantityChanged := req.Quantity != nil && !req.Quantity.Equal(asset.Quantity)
	if quantityChanged && !req.Quantity.IsPositive() {
		return nil, utils.BadRequest("quantity must be positive")
	}
	priceChanged := req.CurrentPrice != nil && !req.CurrentPrice.Equal(asset.CurrentPrice)
	if priceChanged && !req.CurrentPrice.IsPositive() {
		return nil, utils.BadRequest("currentPrice must be positive")
	}

	oldQuantity := asset.Quantity
	oldPrice := asset.CurrentPrice

	err = s.txRunner.WithinTx(ctx, func(tx pgx.Tx) error {
		if quantityChanged {
			// recorded before the price mutation so the entry carries the
			// price in effect at the time of the quantity change
			if err := s.historySvc.RecordQuantityUpdate(ctx, asset, oldQuantity, *req.Quantity, tx); err != nil {
				return err
			}
			asset.Quantity = *req.Quantity
		}
		if priceChanged {
			if err := s.historySvc.RecordPriceUpdate(ctx, asset, oldPrice, *req.CurrentPrice, tx); err != nil {
				return err
			}
			asset.CurrentPrice = *req.CurrentPrice
		}
		return s.assetRepo.Update(ctx, asset, tx)
	})
	if err != nil {
		return nil, err
	}

	utils.LoggerFromContext(ctx).Infof("Asset %d updated", assetID)
	return s.mapToResponse(ctx, asset)
}

// BuyAsset converts a wishlist asset to a holding. The transition is one-way:
// buying an asset that is already a holding fails.
func (s *AssetService) BuyAsset(ctx context.Context, assetID int64, req *schemas.AssetBuyRequest) (*schemas.AssetResponse, error) {
	asset, err := s.findAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	if !asset.Wishlist {
		return nil, utils.BadRequest(fmt.Sprintf("asset %d is already a holding, cannot buy again", assetID))
	}
	if !req.BuyPrice.IsPositive() {
		return nil, utils.BadRequest("buyPrice must be positive")
	}

	quantity := asset.Quantity
	if req.Quantity != nil {
		if !req.Quantity.IsPositive() {
			return nil, utils.BadRequest("quantity must be positive")
		}
		quantity = *req.Quantity
	}

	buyPrice := req.BuyPrice
	asset.Wishlist = false
	asset.BuyPrice = &buyPrice
	asset.Quantity = quantity

	remarks := req.Remarks
	if remarks == "" {
		remarks = "Converted from wishlist to holding"
	}

	err = s.txRunner.WithinTx(ctx, func(tx pgx.Tx) error {
		if err := s.assetRepo.Update(ctx, asset, tx); err != nil {
			return err
		}
		return s.historySvc.RecordBuy(ctx, asset, quantity, buyPrice, remarks, tx)
	})
	if err != nil {
		return nil, err
	}

	utils.LoggerFromContext(ctx).Infof("Asset %d converted from wishlist to holding", assetID)
	return s.mapToResponse(ctx, asset)
}

// DeleteAsset detaches the asset from every group, then removes it. History
// rows are kept.
func (s *AssetService) DeleteAsset(ctx context.Context, assetID int64) error {
	asset, err := s.findAssetByID(ctx, assetID)
	if err != nil {
		return err
	}

	err = s.txRunner.WithinTx(ctx, func(tx pgx.Tx) error {
		if err := s.groupRepo.RemoveAllForAsset(ctx, asset.ID, tx); err != nil {
			return err
		}
		return s.assetRepo.Delete(ctx, asset.ID, tx)
	})
	if err != nil {
		return err
	}

	utils.LoggerFromContext(ctx).Infof("Asset %d deleted", assetID)
	return nil
}

func (s *AssetService) findAssetByID(ctx context.Context, assetID int64) (*models.Asset, error) {
	asset, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, utils.NotFound(fmt.Sprintf("asset not found with ID: %d", assetID))
	}
	return asset, nil
}

func (s *AssetService) mapAllToResponse(ctx context.Context, assets []models.Asset) ([]schemas.AssetResponse, error) {
	responses := make([]schemas.AssetResponse, 0, len(assets))
	for i := range assets {
		resp, err := s.mapToResponse(ctx, &assets[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *AssetService) mapToResponse(ctx context.Context, a *models.Asset) (*schemas.AssetResponse, error) {
	var categoryName *string
	if a.CategoryID != nil {
		category, err := s.categorySvc.categoryRepo.GetByID(ctx, *a.CategoryID)
		if err != nil {
			return nil, err
		}
		if category != nil {
			categoryName = &category.Name
		}
	}

	groups, err := s.groupRepo.GetGroupsForAsset(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	groupNames := make([]string, 0, len(groups))
	for _, g := range groups {
		groupNames = append(groupNames, g.Name)
	}

	return &schemas.AssetResponse{
		AssetID:           a.ID,
		PortfolioID:       a.PortfolioID,
		AssetName:         a.Name,
		AssetType:         a.AssetType,
		Quantity:          a.Quantity,
		BuyPrice:          a.BuyPrice,
		CurrentPrice:      a.CurrentPrice,
		IsWishlist:        a.Wishlist,
		InvestedValue:     models.InvestedValue(a),
		CurrentValue:      models.CurrentValue(a),
		AbsoluteReturn:    models.AbsoluteReturn(a),
		PercentageReturn:  models.PercentageReturn(a),
		StockCategoryName: categoryName,
		GroupNames:        groupNames,
	}, nil
}
