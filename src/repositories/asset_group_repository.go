package repositories

import (
	"context"
	"errors"

	"server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AssetGroupRepository owns both the asset_groups table and the
// asset_group_members join table. Membership is stored only there; neither
// assets nor groups mirror it.
type AssetGroupRepository interface {
	Create(ctx context.Context, g *models.AssetGroup, tx pgx.Tx) error
	GetByID(ctx context.Context, id int64) (*models.AssetGroup, error)
	GetAllOrderedByName(ctx context.Context) ([]models.AssetGroup, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Update(ctx context.Context, g *models.AssetGroup, tx pgx.Tx) error
	Delete(ctx context.Context, id int64, tx pgx.Tx) error

	AddMember(ctx context.Context, groupID, assetID int64, tx pgx.Tx) error
	RemoveMember(ctx context.Context, groupID, assetID int64, tx pgx.Tx) error
	RemoveAllForAsset(ctx context.Context, assetID int64, tx pgx.Tx) error
	RemoveAllForGroup(ctx context.Context, groupID int64, tx pgx.Tx) error
	RemoveAllForPortfolio(ctx context.Context, portfolioID int64, tx pgx.Tx) error
	GetGroupsForAsset(ctx context.Context, assetID int64) ([]models.AssetGroup, error)
	GetMemberAssets(ctx context.Context, groupID int64) ([]models.Asset, error)
}

type assetGroupRepo struct {
	db *pgxpool.Pool
}

func NewAssetGroupRepository(db *pgxpool.Pool) AssetGroupRepository {
	return &assetGroupRepo{db: db}
}

func (r *assetGroupRepo) q(tx pgx.Tx) querier {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *assetGroupRepo) Create(ctx context.Context, g *models.AssetGroup, tx pgx.Tx) error {
	return r.q(tx).QueryRow(ctx,
		`INSERT INTO asset_groups (group_name, description, created_date)
		 VALUES ($1, $2, $3)
		 RETURNING group_id`,
		g.Name, g.Description, g.CreatedDate,
	).Scan(&g.ID)
}

func (r *assetGroupRepo) GetByID(ctx context.Context, id int64) (*models.AssetGroup, error) {
	var g models.AssetGroup
	err := r.db.QueryRow(ctx,
		`SELECT group_id, group_name, description, created_date
		 FROM asset_groups WHERE group_id = $1`, id).
		Scan(&g.ID, &g.Name, &g.Description, &g.CreatedDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *assetGroupRepo) GetAllOrderedByName(ctx context.Context) ([]models.AssetGroup, error) {
	rows, err := r.db.Query(ctx,
		`SELECT group_id, group_name, description, created_date
		 FROM asset_groups ORDER BY group_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []models.AssetGroup
	for rows.Next() {
		var g models.AssetGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.CreatedDate); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (r *assetGroupRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM asset_groups WHERE group_name = $1)`, name).
		Scan(&exists)
	return exists, err
}

func (r *assetGroupRepo) Update(ctx context.Context, g *models.AssetGroup, tx pgx.Tx) error {
	_, err := r.q(tx).Exec(ctx,
		`UPDATE asset_groups SET group_name = $1, description = $2 WHERE group_id = $3`,
		g.Name, g.Description, g.ID)
	return err
}

func (r *assetGroupRepo) Delete(ctx context.Context, id int64, tx pgx.Tx) error {
	_, err := r.q(tx).Exec(ctx, `DELETE FROM asset_groups WHERE group_id = $1`, id)
	return err
}

// AddMember is idempotent: re-adding an existing member is a no-op.
func (r *assetGroupRepo) AddMember(ctx context.Context, groupID, assetID int64, tx pgx.Tx) error {
	_, err := r.q(tx).Exec(ctx,
		`INSERT INTO asset_group_members (group_id, asset_id)
		 VALUES ($1, $2)
		 ON CONFLICT (group_id, asset_id) DO NOTHING`,
		groupID, assetID)
	return err
}

// RemoveMember silently succeeds when the pair is not a member.
func (r *assetGroupRepo) RemoveMember(ctx context.Context, groupID, assetID int64, tx pgx.Tx) error {
	_, err := r.q(tx).Exec(ctx,
		`DELETE FROM asset_group_members WHERE group_id = $1 AND asset_id = $2`,
		groupID, assetID)
	return err
}

func (r *assetGroupRepo) RemoveAllForAsset(ctx context.Context, assetID int64, tx pgx.Tx) error {
	_, err := r.q(tx).Exec(ctx,
		`DELETE FROM asset_group_members WHERE asset_id = $1`, assetID)
	return err
}

func (r *assetGroupRepo) RemoveAllForGroup(ctx context.Context, groupID int64, tx pgx.Tx) error {
	_, err := r.q(tx).Exec(ctx,
		`DELETE FROM asset_group_members WHERE group_id = $1`, groupID)
	return err
}

func (r *assetGroupRepo) RemoveAllForPortfolio(ctx context.Context, portfolioID int64, tx pgx.Tx) error {
	_, err := r.q(tx).Exec(ctx,
		`DELETE FROM asset_group_members
		 WHERE asset_id IN (SELECT asset_id FROM assets WHERE portfolio_id = $1)`,
		portfolioID)
	return err
}

func (r *assetGroupRepo) GetGroupsForAsset(ctx context.Context, assetID int64) ([]models.AssetGroup, error) {
	rows, err := r.db.Query(ctx,
		`SELECT g.group_id, g.group_name, g.description, g.created_date
		 FROM asset_groups g
		 JOIN asset_group_members m ON m.group_id = g.group_id
		 WHERE m.asset_id = $1
		 ORDER BY g.group_name`, assetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []models.AssetGroup
	for rows.Next() {
		var g models.AssetGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.CreatedDate); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (r *assetGroupRepo) GetMemberAssets(ctx context.Context, groupID int64) ([]models.Asset, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.asset_id, a.portfolio_id, a.asset_name, a.asset_type, a.quantity,
		        a.buy_price, a.current_price, a.is_wishlist, a.category_id
		 FROM assets a
		 JOIN asset_group_members m ON m.asset_id = a.asset_id
		 WHERE m.group_id = $1
		 ORDER BY a.asset_name`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []models.Asset
	for rows.Next() {
		var a models.Asset
		if err := rows.Scan(&a.ID, &a.PortfolioID, &a.Name, &a.AssetType, &a.Quantity,
			&a.BuyPrice, &a.CurrentPrice, &a.Wishlist, &a.CategoryID); err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}
