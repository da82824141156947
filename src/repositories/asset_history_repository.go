package repositories

import (
	"context"

	"server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AssetHistoryRepository interface {
	Create(ctx context.Context, h *models.AssetHistory, tx pgx.Tx) error
	GetByAssetNewestFirst(ctx context.Context, assetID int64) ([]models.AssetHistory, error)
}

type assetHistoryRepo struct {
	db *pgxpool.Pool
}

func NewAssetHistoryRepository(db *pgxpool.Pool) AssetHistoryRepository {
	return &assetHistoryRepo{db: db}
}

func (r *assetHistoryRepo) q(tx pgx.Tx) querier {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *assetHistoryRepo) Create(ctx context.Context, h *models.AssetHistory, tx pgx.Tx) error {
	return r.q(tx).QueryRow(ctx,
		`INSERT INTO asset_history (asset_id, action_type, quantity_changed, price_at_time, action_date, remarks)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING history_id`,
		h.AssetID, h.ActionType, h.QuantityChanged, h.PriceAtTime, h.ActionDate, h.Remarks,
	).Scan(&h.ID)
}

func (r *assetHistoryRepo) GetByAssetNewestFirst(ctx context.Context, assetID int64) ([]models.AssetHistory, error) {
	rows, err := r.db.Query(ctx,
		`SELECT history_id, asset_id, action_type, quantity_changed, price_at_time, action_date, remarks
		 FROM asset_history
		 WHERE asset_id = $1
		 ORDER BY action_date DESC, history_id DESC`, assetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.AssetHistory
	for rows.Next() {
		var h models.AssetHistory
		if err := rows.Scan(&h.ID, &h.AssetID, &h.ActionType, &h.QuantityChanged,
			&h.PriceAtTime, &h.ActionDate, &h.Remarks); err != nil {
			return nil, err
		}
		entries = append(entries, h)
	}
	return entries, rows.Err()
}
