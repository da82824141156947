package repositories

import (
	"context"
	"errors"

	"server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PortfolioRepository interface {
	Create(ctx context.Context, p *models.Portfolio, tx pgx.Tx) error
	GetByID(ctx context.Context, id int64) (*models.Portfolio, error)
	GetAll(ctx context.Context) ([]models.Portfolio, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Delete(ctx context.Context, id int64, tx pgx.Tx) error
}

type portfolioRepo struct {
	db *pgxpool.Pool
}

func NewPortfolioRepository(db *pgxpool.Pool) PortfolioRepository {
	return &portfolioRepo{db: db}
}

func (r *portfolioRepo) q(tx pgx.Tx) querier {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *portfolioRepo) Create(ctx context.Context, p *models.Portfolio, tx pgx.Tx) error {
	return r.q(tx).QueryRow(ctx,
		`INSERT INTO portfolios (portfolio_name, initial_investment, created_date)
		 VALUES ($1, $2, $3)
		 RETURNING portfolio_id`,
		p.Name, p.InitialInvestment, p.CreatedDate,
	).Scan(&p.ID)
}

func (r *portfolioRepo) GetByID(ctx context.Context, id int64) (*models.Portfolio, error) {
	var p models.Portfolio
	err := r.db.QueryRow(ctx,
		`SELECT portfolio_id, portfolio_name, initial_investment, created_date
		 FROM portfolios WHERE portfolio_id = $1`, id).
		Scan(&p.ID, &p.Name, &p.InitialInvestment, &p.CreatedDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *portfolioRepo) GetAll(ctx context.Context) ([]models.Portfolio, error) {
	rows, err := r.db.Query(ctx,
		`SELECT portfolio_id, portfolio_name, initial_investment, created_date
		 FROM portfolios ORDER BY portfolio_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var portfolios []models.Portfolio
	for rows.Next() {
		var p models.Portfolio
		if err := rows.Scan(&p.ID, &p.Name, &p.InitialInvestment, &p.CreatedDate); err != nil {
			return nil, err
		}
		portfolios = append(portfolios, p)
	}
	return portfolios, rows.Err()
}

func (r *portfolioRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM portfolios WHERE portfolio_name = $1)`, name).
		Scan(&exists)
	return exists, err
}

func (r *portfolioRepo) Delete(ctx context.Context, id int64, tx pgx.Tx) error {
	_, err := r.q(tx).Exec(ctx, `DELETE FROM portfolios WHERE portfolio_id = $1`, id)
	return err
}
