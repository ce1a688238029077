package model

// Book is a catalog entry available for purchase.
type Book struct {
	ID          int64
	Title       string
	Author      string
	Description string
	PriceCents  int64
	Stock       int32
	ImageURL    string
	CategoryID  *int64
}

// Category groups books in the catalog.
type Category struct {
	ID   int64
	Name string
}
