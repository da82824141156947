package models

import "time"

// AssetGroup is a global, uniquely named grouping of assets. The same group
// can span portfolios; membership lives in the asset_group_members table and
// is never mirrored on the group or asset structs.
type AssetGroup struct {
	ID          int64     `db:"group_id"`
	Name        string    `db:"group_name"`
	Description string    `db:"description"`
	CreatedDate time.Time `db:"created_date"`
}
