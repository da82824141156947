package schemas

import (
	"server/src/models"

	"github.com/shopspring/decimal"
)

type AssetRequest struct {
	AssetName       string           `json:"assetName"`
	AssetType       models.AssetType `json:"assetType"`
	Quantity        decimal.Decimal  `json:"quantity"`
	BuyPrice        *decimal.Decimal `json:"buyPrice"`
	CurrentPrice    decimal.Decimal  `json:"currentPrice"`
	IsWishlist      bool             `json:"isWishlist"`
	StockCategoryID *int64           `json:"stockCategoryId"`
}

// AssetUpdateRequest is a partial update: only non-nil fields are applied.
// BuyPrice and the wishlist flag are deliberately absent; they change only
// through the buy conversion.
type AssetUpdateRequest struct {
	AssetName       *string           `json:"assetName"`
	AssetType       *models.AssetType `json:"assetType"`
	Quantity        *decimal.Decimal  `json:"quantity"`
	CurrentPrice    *decimal.Decimal  `json:"currentPrice"`
	StockCategoryID *int64            `json:"stockCategoryId"`
}

type AssetBuyRequest struct {
	BuyPrice decimal.Decimal  `json:"buyPrice"`
	Quantity *decimal.Decimal `json:"quantity"`
	Remarks  string           `json:"remarks"`
}

type AssetResponse struct {
	AssetID           int64            `json:"assetId"`
	PortfolioID       int64            `json:"portfolioId"`
	AssetName         string           `json:"assetName"`
	AssetType         models.AssetType `json:"assetType"`
	Quantity          decimal.Decimal  `json:"quantity"`
	BuyPrice          *decimal.Decimal `json:"buyPrice"`
	CurrentPrice      decimal.Decimal  `json:"currentPrice"`
	IsWishlist        bool             `json:"isWishlist"`
	InvestedValue     decimal.Decimal  `json:"investedValue"`
	CurrentValue      decimal.Decimal  `json:"currentValue"`
	AbsoluteReturn    decimal.Decimal  `json:"absoluteReturn"`
	PercentageReturn  decimal.Decimal  `json:"percentageReturn"`
	StockCategoryName *string          `json:"stockCategoryName"`
	GroupNames        []string         `json:"groupNames"`
}

type AssetPerformanceResponse struct {
	AssetID          int64            `json:"assetId"`
	AssetName        string           `json:"assetName"`
	AssetType        models.AssetType `json:"assetType"`
	IsWishlist       bool             `json:"isWishlist"`
	Quantity         decimal.Decimal  `json:"quantity"`
	BuyPrice         *decimal.Decimal `json:"buyPrice"`
	CurrentPrice     decimal.Decimal  `json:"currentPrice"`
	InvestedValue    decimal.Decimal  `json:"investedValue"`
	CurrentValue     decimal.Decimal  `json:"currentValue"`
	AbsoluteReturn   decimal.Decimal  `json:"absoluteReturn"`
	PercentageReturn decimal.Decimal  `json:"percentageReturn"`
}

type AssetHistoryResponse struct {
	HistoryID       int64             `json:"historyId"`
	AssetID         int64             `json:"assetId"`
	ActionType      models.ActionType `json:"actionType"`
	QuantityChanged *decimal.Decimal  `json:"quantityChanged"`
	PriceAtTime     decimal.Decimal   `json:"priceAtTime"`
	ActionDate      string            `json:"actionDate"`
	Remarks         string            `json:"remarks"`
}
