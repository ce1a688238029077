package dto

// CartAddRequest puts a book into the cart.
type CartAddRequest struct {
	BookID   int64 `json:"bookId"`
	Quantity int32 `json:"quantity"`
}

// CartUpdateRequest replaces the quantity of one cart line.
type CartUpdateRequest struct {
	Quantity int32 `json:"quantity"`
}

// CartItemResponse is one cart line.
type CartItemResponse struct {
	ID       int64 `json:"id"`
	BookID   int64 `json:"bookId"`
	Quantity int32 `json:"quantity"`
}

// WishlistAddRequest saves a book for later.
type WishlistAddRequest struct {
	BookID int64 `json:"bookId"`
}

// WishlistEntryResponse is one saved book.
type WishlistEntryResponse struct {
	ID     int64 `json:"id"`
	BookID int64 `json:"bookId"`
}
