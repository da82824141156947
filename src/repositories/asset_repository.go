package repositories

import (
	"context"
	"errors"

	"server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AssetRepository interface {
	Create(ctx context.Context, a *models.Asset, tx pgx.Tx) error
	GetByID(ctx context.Context, id int64) (*models.Asset, error)
	GetByPortfolio(ctx context.Context, portfolioID int64) ([]models.Asset, error)
	GetByPortfolioAndWishlist(ctx context.Context, portfolioID int64, wishlist bool) ([]models.Asset, error)
	GetHoldingStocksByPortfolio(ctx context.Context, portfolioID int64) ([]models.Asset, error)
	GetHoldingStocksByPortfolioAndCategory(ctx context.Context, portfolioID, categoryID int64) ([]models.Asset, error)
	CountByCategory(ctx context.Context, categoryID int64) (int, error)
	Update(ctx context.Context, a *models.Asset, tx pgx.Tx) error
	Delete(ctx context.Context, id int64, tx pgx.Tx) error
}

type assetRepo struct {
	db *pgxpool.Pool
}

func NewAssetRepository(db *pgxpool.Pool) AssetRepository {
	return &assetRepo{db: db}
}

func (r *assetRepo) q(tx pgx.Tx) querier {
	if tx != nil {
		return tx
	}
	return r.db
}

const assetColumns = `asset_id, portfolio_id, asset_name, asset_type, quantity, buy_price, current_price, is_wishlist, category_id`

func scanAsset(row pgx.Row, a *models.Asset) error {
	return row.Scan(&a.ID, &a.PortfolioID, &a.Name, &a.AssetType, &a.Quantity,
		&a.BuyPrice, &a.CurrentPrice, &a.Wishlist, &a.CategoryID)
}

func (r *assetRepo) queryAssets(ctx context.Context, sql string, args ...any) ([]models.Asset, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []models.Asset
	for rows.Next() {
		var a models.Asset
		if err := scanAsset(rows, &a); err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

func (r *assetRepo) Create(ctx context.Context, a *models.Asset, tx pgx.Tx) error {
	return r.q(tx).QueryRow(ctx,
		`INSERT INTO assets (portfolio_id, asset_name, asset_type, quantity, buy_price, current_price, is_wishlist, category_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING asset_id`,
		a.PortfolioID, a.Name, a.AssetType, a.Quantity, a.BuyPrice, a.CurrentPrice, a.Wishlist, a.CategoryID,
	).Scan(&a.ID)
}

func (r *assetRepo) GetByID(ctx context.Context, id int64) (*models.Asset, error) {
	var a models.Asset
	err := scanAsset(r.db.QueryRow(ctx,
		`SELECT `+assetColumns+` FROM assets WHERE asset_id = $1`, id), &a)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assetRepo) GetByPortfolio(ctx context.Context, portfolioID int64) ([]models.Asset, error) {
	return r.queryAssets(ctx,
		`SELECT `+assetColumns+` FROM assets WHERE portfolio_id = $1 ORDER BY asset_id`, portfolioID)
}

func (r *assetRepo) GetByPortfolioAndWishlist(ctx context.Context, portfolioID int64, wishlist bool) ([]models.Asset, error) {
	return r.queryAssets(ctx,
		`SELECT `+assetColumns+` FROM assets WHERE portfolio_id = $1 AND is_wishlist = $2 ORDER BY asset_id`,
		portfolioID, wishlist)
}

func (r *assetRepo) GetHoldingStocksByPortfolio(ctx context.Context, portfolioID int64) ([]models.Asset, error) {
	return r.queryAssets(ctx,
		`SELECT `+assetColumns+` FROM assets
		 WHERE portfolio_id = $1 AND is_wishlist = FALSE AND asset_type = 'STOCK'
		 ORDER BY asset_id`, portfolioID)
}

func (r *assetRepo) GetHoldingStocksByPortfolioAndCategory(ctx context.Context, portfolioID, categoryID int64) ([]models.Asset, error) {
	return r.queryAssets(ctx,
		`SELECT `+assetColumns+` FROM assets
		 WHERE portfolio_id = $1 AND is_wishlist = FALSE AND asset_type = 'STOCK' AND category_id = $2
		 ORDER BY asset_id`, portfolioID, categoryID)
}

func (r *assetRepo) CountByCategory(ctx context.Context, categoryID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM assets WHERE category_id = $1`, categoryID).Scan(&count)
	return count, err
}

func (r *assetRepo) Update(ctx context.Context, a *models.Asset, tx pgx.Tx) error {
	_, err := r.q(tx).Exec(ctx,
		`UPDATE assets
		 SET asset_name = $1, asset_type = $2, quantity = $3, buy_price = $4,
		     current_price = $5, is_wishlist = $6, category_id = $7
		 WHERE asset_id = $8`,
		a.Name, a.AssetType, a.Quantity, a.BuyPrice, a.CurrentPrice, a.Wishlist, a.CategoryID, a.ID)
	return err
}

func (r *assetRepo) Delete(ctx context.Context, id int64, tx pgx.Tx) error {
	_, err := r.q(tx).Exec(ctx, `DELETE FROM assets WHERE asset_id = $1`, id)
	return err
}
