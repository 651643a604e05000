package dto

type CreateTableInput struct {
	Name string
	// Status defaults to Free when omitted.
	Status string
}

type UpdateTableInput struct {
	ID     int64
	Name   string
	Status string
}
