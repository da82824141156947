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

// AssetHistoryService appends immutable audit entries for asset mutations.
// The Record methods take the caller's transaction so an entry lands in the
// same atomic unit as the mutation it describes. Entries are never updated
// or deleted; they remain retrievable by asset id after the asset is gone.
type AssetHistoryService struct {
	historyRepo repositories.AssetHistoryRepository
	clock       utils.Clock
}

func NewAssetHistoryService(historyRepo repositories.AssetHistoryRepository, clock utils.Clock) *AssetHistoryService {
	return &AssetHistoryService{historyRepo: historyRepo, clock: clock}
}

func (s *AssetHistoryService) GetHistory(ctx context.Context, assetID int64) ([]schemas.AssetHistoryResponse, error) {
	entries, err := s.historyRepo.GetByAssetNewestFirst(ctx, assetID)
	if err != nil {
		return nil, err
	}
	responses := make([]schemas.AssetHistoryResponse, 0, len(entries))
	for _, h := range entries {
		responses = append(responses, mapHistoryToResponse(&h))
	}
	return responses, nil
}

func (s *AssetHistoryService) RecordBuy(ctx context.Context, asset *models.Asset, quantity, price decimal.Decimal, remarks string, tx pgx.Tx) error {
	return s.record(ctx, asset.ID, models.ActionBuy, &quantity, price, remarks, tx)
}

func (s *AssetHistoryService) RecordSell(ctx context.Context, asset *models.Asset, quantity, price decimal.Decimal, remarks string, tx pgx.Tx) error {
	delta := quantity.Neg()
	return s.record(ctx, asset.ID, models.ActionSell, &delta, price, remarks, tx)
}

func (s *AssetHistoryService) RecordPriceUpdate(ctx context.Context, asset *models.Asset, oldPrice, newPrice decimal.Decimal, tx pgx.Tx) error {
	remarks := fmt.Sprintf("Price changed from %s to %s", oldPrice, newPrice)
	return s.record(ctx, asset.ID, models.ActionPriceUpdate, nil, newPrice, remarks, tx)
}

func (s *AssetHistoryService) RecordQuantityUpdate(ctx context.Context, asset *models.Asset, oldQty, newQty decimal.Decimal, tx pgx.Tx) error {
	delta := newQty.Sub(oldQty)
	remarks := fmt.Sprintf("Quantity changed from %s to %s", oldQty, newQty)
	return s.record(ctx, asset.ID, models.ActionQuantityUpdate, &delta, asset.CurrentPrice, remarks, tx)
}

func (s *AssetHistoryService) record(ctx context.Context, assetID int64, actionType models.ActionType,
	quantityChanged *decimal.Decimal, price decimal.Decimal, remarks string, tx pgx.Tx) error {
	entry := &models.AssetHistory{
		AssetID:         assetID,
		ActionType:      actionType,
		QuantityChanged: quantityChanged,
		PriceAtTime:     price,
		ActionDate:      s.clock.Now(),
		Remarks:         remarks,
	}
	if err := s.historyRepo.Create(ctx, entry, tx); err != nil {
		return err
	}
	utils.LoggerFromContext(ctx).Infof("History recorded: %s for asset %d", actionType, assetID)
	return nil
}

func mapHistoryToResponse(h *models.AssetHistory) schemas.AssetHistoryResponse {
	return schemas.AssetHistoryResponse{
		HistoryID:       h.ID,
		AssetID:         h.AssetID,
		ActionType:      h.ActionType,
		QuantityChanged: h.QuantityChanged,
		PriceAtTime:     h.PriceAtTime,
		ActionDate:      h.ActionDate.Format(utils.ShortDashDateLayout),
		Remarks:         h.Remarks,
	}
}
