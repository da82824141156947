package models

import (
	"github.com/shopspring/decimal"
)

type AssetType string

const (
	AssetTypeStock      AssetType = "STOCK"
	AssetTypeMutualFund AssetType = "MUTUAL_FUND"
	AssetTypeBond       AssetType = "BOND"
	AssetTypeETF        AssetType = "ETF"
	AssetTypeCash       AssetType = "CASH"
	AssetTypeOther      AssetType = "OTHER"
)

func (t AssetType) Valid() bool {
	switch t {
	case AssetTypeStock, AssetTypeMutualFund, AssetTypeBond, AssetTypeETF, AssetTypeCash, AssetTypeOther:
		return true
	}
	return false
}

// Asset is an investment tracked inside a portfolio.
//
// Two states:
//
//	Holding  - Wishlist = false, BuyPrice is set, participates in value sums.
//	Wishlist - Wishlist = true, BuyPrice is nil, excluded from all sums.
//
// STOCK assets always carry a category id.
type Asset struct {
	ID           int64            `db:"asset_id"`
	PortfolioID  int64            `db:"portfolio_id"`
	Name         string           `db:"asset_name"`
	AssetType    AssetType        `db:"asset_type"`
	Quantity     decimal.Decimal  `db:"quantity"`
	BuyPrice     *decimal.Decimal `db:"buy_price"`
	CurrentPrice decimal.Decimal  `db:"current_price"`
	Wishlist     bool             `db:"is_wishlist"`
	CategoryID   *int64           `db:"category_id"`
}
