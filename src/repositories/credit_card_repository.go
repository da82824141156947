package repositories

import (
	"context"
	"errors"
	"time"

	"server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CreditCardRepository interface {
	Create(ctx context.Context, c *models.CreditCard, tx pgx.Tx) error
	GetByID(ctx context.Context, id int64) (*models.CreditCard, error)
	GetByPortfolio(ctx context.Context, portfolioID int64) ([]models.CreditCard, error)
	GetDueBetween(ctx context.Context, portfolioID int64, from, to time.Time) ([]models.CreditCard, error)
	GetOverdue(ctx context.Context, portfolioID int64, today time.Time) ([]models.CreditCard, error)
	Update(ctx context.Context, c *models.CreditCard, tx pgx.Tx) error
	Delete(ctx context.Context, id int64, tx pgx.Tx) error
}

type creditCardRepo struct {
	db *pgxpool.Pool
}

func NewCreditCardRepository(db *pgxpool.Pool) CreditCardRepository {
	return &creditCardRepo{db: db}
}

func (r *creditCardRepo) q(tx pgx.Tx) querier {
	if tx != nil {
		return tx
	}
	return r.db
}

const cardColumns = `card_id, portfolio_id, card_name, credit_limit, outstanding_amount, due_date`

func (r *creditCardRepo) queryCards(ctx context.Context, sql string, args ...any) ([]models.CreditCard, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []models.CreditCard
	for rows.Next() {
		var c models.CreditCard
		if err := rows.Scan(&c.ID, &c.PortfolioID, &c.Name, &c.CreditLimit,
			&c.OutstandingAmount, &c.DueDate); err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

func (r *creditCardRepo) Create(ctx context.Context, c *models.CreditCard, tx pgx.Tx) error {
	return r.q(tx).QueryRow(ctx,
		`INSERT INTO credit_cards (portfolio_id, card_name, credit_limit, outstanding_amount, due_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING card_id`,
		c.PortfolioID, c.Name, c.CreditLimit, c.OutstandingAmount, c.DueDate,
	).Scan(&c.ID)
}

func (r *creditCardRepo) GetByID(ctx context.Context, id int64) (*models.CreditCard, error) {
	var c models.CreditCard
	err := r.db.QueryRow(ctx,
		`SELECT `+cardColumns+` FROM credit_cards WHERE card_id = $1`, id).
		Scan(&c.ID, &c.PortfolioID, &c.Name, &c.CreditLimit, &c.OutstandingAmount, &c.DueDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *creditCardRepo) GetByPortfolio(ctx context.Context, portfolioID int64) ([]models.CreditCard, error) {
	return r.queryCards(ctx,
		`SELECT `+cardColumns+` FROM credit_cards WHERE portfolio_id = $1 ORDER BY due_date`, portfolioID)
}

func (r *creditCardRepo) GetDueBetween(ctx context.Context, portfolioID int64, from, to time.Time) ([]models.CreditCard, error) {
	return r.queryCards(ctx,
		`SELECT `+cardColumns+` FROM credit_cards
		 WHERE portfolio_id = $1 AND due_date BETWEEN $2 AND $3
		 ORDER BY due_date`, portfolioID, from, to)
}

func (r *creditCardRepo) GetOverdue(ctx context.Context, portfolioID int64, today time.Time) ([]models.CreditCard, error) {
	return r.queryCards(ctx,
		`SELECT `+cardColumns+` FROM credit_cards
		 WHERE portfolio_id = $1 AND due_date < $2
		 ORDER BY due_date`, portfolioID, today)
}

func (r *creditCardRepo) Update(ctx context.Context, c *models.CreditCard, tx pgx.Tx) error {
	_, err := r.q(tx).Exec(ctx,
		`UPDATE credit_cards
		 SET card_name = $1, credit_limit = $2, outstanding_amount = $3, due_date = $4
		 WHERE card_id = $5`,
		c.Name, c.CreditLimit, c.OutstandingAmount, c.DueDate, c.ID)
	return err
}

func (r *creditCardRepo) Delete(ctx context.Context, id int64, tx pgx.Tx) error {
	_, err := r.q(tx).Exec(ctx, `DELETE FROM credit_cards WHERE card_id = $1`, id)
	return err
}
