package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Portfolio struct {
	ID                int64           `db:"portfolio_id"`
	Name              string          `db:"portfolio_name"`
	InitialInvestment decimal.Decimal `db:"initial_investment"`
	CreatedDate       time.Time       `db:"created_date"`
}
