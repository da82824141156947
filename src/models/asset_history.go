package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ActionType string

const (
	ActionBuy            ActionType = "BUY"
	ActionSell           ActionType = "SELL"
	ActionPriceUpdate    ActionType = "PRICE_UPDATE"
	ActionQuantityUpdate ActionType = "QUANTITY_UPDATE"
)

// AssetHistory is an append-only audit entry. Rows are never updated or
// deleted, and deliberately carry no foreign key to assets so they survive
// the parent asset's deletion.
type AssetHistory struct {
	ID              int64            `db:"history_id"`
	AssetID         int64            `db:"asset_id"`
	ActionType      ActionType       `db:"action_type"`
	QuantityChanged *decimal.Decimal `db:"quantity_changed"`
	PriceAtTime     decimal.Decimal  `db:"price_at_time"`
	ActionDate      time.Time        `db:"action_date"`
	Remarks         string           `db:"remarks"`
}
