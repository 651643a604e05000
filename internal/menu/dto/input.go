package dto

type CreateMenuItemInput struct {
	Name string
	// Category arrives as a display name from the UI and is mapped to a
	// category id before insertion.
	Category    string
	Price       float64
	IsAvailable *bool
}

type UpdateMenuItemInput struct {
	ID          int64
	Name        string
	Category    string
	Price       float64
	IsAvailable *bool
}
