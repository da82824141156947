package models

type StockCategory struct {
	ID          int64  `db:"category_id"`
	Name        string `db:"category_name"`
	Description string `db:"description"`
}
