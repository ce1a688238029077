package repository

import (
	"context"

	"github.com/techreads/backend/internal/domain/model"
)

// CartRepository stores per-user cart contents.
type CartRepository interface {
	// Add accumulates quantity when the book is already in the cart.
	Add(ctx context.Context, userID, bookID int64, quantity int32) (*model.CartItem, error)
	SetQuantity(ctx context.Context, userID, bookID int64, quantity int32) error
	Remove(ctx context.Context, userID, bookID int64) error
	ListByUser(ctx context.Context, userID int64) ([]model.CartItem, error)
}

// WishlistRepository stores per-user saved books.
type WishlistRepository interface {
	// Add is a no-op when the book is already saved.
	Add(ctx context.Context, userID, bookID int64) (*model.WishlistEntry, error)
	Remove(ctx context.Context, userID, bookID int64) error
	ListByUser(ctx context.Context, userID int64) ([]model.WishlistEntry, error)
}
