package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type DueStatus string

const (
	DueStatusOK      DueStatus = "OK"
	DueStatusWarning DueStatus = "WARNING"
	DueStatusOverdue DueStatus = "OVERDUE"
)

type CreditCard struct {
	ID                int64           `db:"card_id"`
	PortfolioID       int64           `db:"portfolio_id"`
	Name              string          `db:"card_name"`
	CreditLimit       decimal.Decimal `db:"credit_limit"`
	OutstandingAmount decimal.Decimal `db:"outstanding_amount"`
	DueDate           time.Time       `db:"due_date"`
}

// AvailableCredit is the remaining limit on the card.
func AvailableCredit(card *CreditCard) decimal.Decimal {
	return card.CreditLimit.Sub(card.OutstandingAmount)
}

// CreditUtilization is the outstanding amount as a percentage of the limit,
// zero when the limit is zero.
func CreditUtilization(card *CreditCard) decimal.Decimal {
	if card.CreditLimit.IsZero() {
		return decimal.Zero
	}
	return card.OutstandingAmount.DivRound(card.CreditLimit, 4).Mul(decimal.NewFromInt(100))
}

// DaysUntilDue counts whole days from now to the due date. Negative means
// the card is overdue.
func DaysUntilDue(card *CreditCard, now time.Time) int64 {
	today := now.Truncate(24 * time.Hour)
	due := card.DueDate.Truncate(24 * time.Hour)
	return int64(due.Sub(today).Hours() / 24)
}

// CardDueStatus classifies the card by how close the due date is:
// OVERDUE when past due, WARNING within 5 days, OK otherwise.
func CardDueStatus(card *CreditCard, now time.Time) DueStatus {
	days := DaysUntilDue(card, now)
	switch {
	case days < 0:
		return DueStatusOverdue
	case days <= 5:
		return DueStatusWarning
	default:
		return DueStatusOK
	}
}
