package model

type TableStatus string

const (
	TableStatusFree     TableStatus = "Free"
	TableStatusOccupied TableStatus = "Occupied"
)

type Table struct {
	ID     int64       `db:"table_id" json:"table_id"`
	Name   string      `db:"name" json:"name"`
	Status TableStatus `db:"status" json:"status"`
}
