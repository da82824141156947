package schemas

import "github.com/shopspring/decimal"

type PortfolioRequest struct {
	PortfolioName     string          `json:"portfolioName"`
	InitialInvestment decimal.Decimal `json:"initialInvestment"`
}

type PortfolioResponse struct {
	PortfolioID       int64           `json:"portfolioId"`
	PortfolioName     string          `json:"portfolioName"`
	CreatedDate       string          `json:"createdDate"`
	InitialInvestment decimal.Decimal `json:"initialInvestment"`
}

type PortfolioSummaryResponse struct {
	PortfolioID           int64                      `json:"portfolioId"`
	PortfolioName         string                     `json:"portfolioName"`
	TotalInvestedAmount   decimal.Decimal            `json:"totalInvestedAmount"`
	CurrentPortfolioValue decimal.Decimal            `json:"currentPortfolioValue"`
	AbsoluteReturn        decimal.Decimal            `json:"absoluteReturn"`
	PercentageReturn      decimal.Decimal            `json:"percentageReturn"`
	AssetAllocation       map[string]decimal.Decimal `json:"assetAllocation"`
}
