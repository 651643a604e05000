package model

type MenuItem struct {
	ID          int64   `db:"item_id" json:"item_id"`
	Name        string  `db:"name" json:"name"`
	Price       float64 `db:"price" json:"price"`
	CategoryID  int64   `db:"category_id" json:"category_id"`
	IsAvailable bool    `db:"is_available" json:"is_available"`
}
