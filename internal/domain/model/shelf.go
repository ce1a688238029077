package model

// CartItem holds a book a user intends to buy.
type CartItem struct {
	ID       int64
	UserID   int64
	BookID   int64
	Quantity int32
}

// WishlistEntry marks a book a user saved for later.
type WishlistEntry struct {
	ID     int64
	UserID int64
	BookID int64
}
