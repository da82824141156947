package schemas

import "github.com/shopspring/decimal"

type StockCategoryRequest struct {
	CategoryName string `json:"categoryName"`
	Description  string `json:"description"`
}

type StockCategoryResponse struct {
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Description  string `json:"description"`
}

type StockCategoryPerformanceResponse struct {
	CategoryID       int64           `json:"categoryId"`
	CategoryName     string          `json:"categoryName"`
	Description      string          `json:"description"`
	StockCount       int             `json:"stockCount"`
	TotalInvested    decimal.Decimal `json:"totalInvested"`
	CurrentValue     decimal.Decimal `json:"currentValue"`
	AbsoluteReturn   decimal.Decimal `json:"absoluteReturn"`
	PercentageReturn decimal.Decimal `json:"percentageReturn"`
}
