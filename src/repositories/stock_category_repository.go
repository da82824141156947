package repositories

import (
	"context"
	"errors"

	"server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StockCategoryRepository interface {
	Create(ctx context.Context, c *models.StockCategory, tx pgx.Tx) error
	GetByID(ctx context.Context, id int64) (*models.StockCategory, error)
	GetAll(ctx context.Context) ([]models.StockCategory, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Update(ctx context.Context, c *models.StockCategory, tx pgx.Tx) error
	Delete(ctx context.Context, id int64, tx pgx.Tx) error
}

type stockCategoryRepo struct {
	db *pgxpool.Pool
}

func NewStockCategoryRepository(db *pgxpool.Pool) StockCategoryRepository {
	return &stockCategoryRepo{db: db}
}

func (r *stockCategoryRepo) q(tx pgx.Tx) querier {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *stockCategoryRepo) Create(ctx context.Context, c *models.StockCategory, tx pgx.Tx) error {
	return r.q(tx).QueryRow(ctx,
		`INSERT INTO stock_categories (category_name, description)
		 VALUES ($1, $2)
		 RETURNING category_id`,
		c.Name, c.Description,
	).Scan(&c.ID)
}

func (r *stockCategoryRepo) GetByID(ctx context.Context, id int64) (*models.StockCategory, error) {
	var c models.StockCategory
	err := r.db.QueryRow(ctx,
		`SELECT category_id, category_name, description
		 FROM stock_categories WHERE category_id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *stockCategoryRepo) GetAll(ctx context.Context) ([]models.StockCategory, error) {
	rows, err := r.db.Query(ctx,
		`SELECT category_id, category_name, description
		 FROM stock_categories ORDER BY category_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.StockCategory
	for rows.Next() {
		var c models.StockCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *stockCategoryRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM stock_categories WHERE category_name = $1)`, name).
		Scan(&exists)
	return exists, err
}

func (r *stockCategoryRepo) Update(ctx context.Context, c *models.StockCategory, tx pgx.Tx) error {
	_, err := r.q(tx).Exec(ctx,
		`UPDATE stock_categories SET category_name = $1, description = $2 WHERE category_id = $3`,
		c.Name, c.Description, c.ID)
	return err
}

func (r *stockCategoryRepo) Delete(ctx context.Context, id int64, tx pgx.Tx) error {
	_, err := r.q(tx).Exec(ctx, `DELETE FROM stock_categories WHERE category_id = $1`, id)
	return err
}
