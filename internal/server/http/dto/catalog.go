package dto

// BookRequest describes a catalog create/update payload.
type BookRequest struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int32   `json:"stock"`
	ImageURL    string  `json:"imageUrl"`
	CategoryID  *int64  `json:"categoryId"`
}

// BookResponse describes a catalog entry.
type BookResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int32   `json:"stock"`
	ImageURL    string  `json:"imageUrl"`
	CategoryID  *int64  `json:"categoryId,omitempty"`
}

// CategoryRequest describes a category create payload.
type CategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse describes a category.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
