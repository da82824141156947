package schemas

import "github.com/shopspring/decimal"

type CreditCardRequest struct {
	PortfolioID       int64            `json:"portfolioId"`
	CardName          string           `json:"cardName"`
	CreditLimit       *decimal.Decimal `json:"creditLimit"`
	OutstandingAmount *decimal.Decimal `json:"outstandingAmount"`
	DueDate           string           `json:"dueDate"`
}

type CreditCardResponse struct {
	CardID            int64           `json:"cardId"`
	PortfolioID       int64           `json:"portfolioId"`
	CardName          string          `json:"cardName"`
	CreditLimit       decimal.Decimal `json:"creditLimit"`
	OutstandingAmount decimal.Decimal `json:"outstandingAmount"`
	AvailableCredit   decimal.Decimal `json:"availableCredit"`
	CreditUtilization decimal.Decimal `json:"creditUtilization"`
	DueDate           string          `json:"dueDate"`
	DaysUntilDue      int64           `json:"daysUntilDue"`
	DueStatus         string          `json:"dueStatus"`
	AlertMessage      string          `json:"alertMessage"`
}
