package usecase

import (
	"context"

	domainErrors "github.com/techreads/backend/internal/domain/errors"
	"github.com/techreads/backend/internal/domain/model"
	"github.com/techreads/backend/internal/domain/repository"
)

// ShelfUseCase manages per-user carts and wishlists.
type ShelfUseCase struct {
	carts     repository.CartRepository
	wishlists repository.WishlistRepository
	books     repository.BookRepository
}

// NewShelfUseCase constructs ShelfUseCase.
func NewShelfUseCase(carts repository.CartRepository, wishlists repository.WishlistRepository, books repository.BookRepository) *ShelfUseCase {
	return &ShelfUseCase{carts: carts, wishlists: wishlists, books: books}
}

// AddToCart puts a book in the cart, accumulating quantity on repeat adds.
func (u *ShelfUseCase) AddToCart(ctx context.Context, userID, bookID int64, quantity int32) (*model.CartItem, error) {
	if quantity <= 0 {
		return nil, domainErrors.ErrInvalidQuantity
	}
	if _, err := u.books.GetByID(ctx, bookID); err != nil {
		return nil, err
	}
	return u.carts.Add(ctx, userID, bookID, quantity)
}

// SetCartQuantity replaces the stored quantity for one cart line.
func (u *ShelfUseCase) SetCartQuantity(ctx context.Context, userID, bookID int64, quantity int32) error {
	if quantity <= 0 {
		return domainErrors.ErrInvalidQuantity
	}
	return u.carts.SetQuantity(ctx, userID, bookID, quantity)
}

// RemoveFromCart drops one book from the cart.
func (u *ShelfUseCase) RemoveFromCart(ctx context.Context, userID, bookID int64) error {
	return u.carts.Remove(ctx, userID, bookID)
}

// Cart lists the user's cart contents.
func (u *ShelfUseCase) Cart(ctx context.Context, userID int64) ([]model.CartItem, error) {
	return u.carts.ListByUser(ctx, userID)
}

// AddToWishlist saves a book; saving twice is a no-op.
func (u *ShelfUseCase) AddToWishlist(ctx context.Context, userID, bookID int64) (*model.WishlistEntry, error) {
	if _, err := u.books.GetByID(ctx, bookID); err != nil {
		return nil, err
	}
	return u.wishlists.Add(ctx, userID, bookID)
}

// RemoveFromWishlist drops a saved book.
func (u *ShelfUseCase) RemoveFromWishlist(ctx context.Context, userID, bookID int64) error {
	return u.wishlists.Remove(ctx, userID, bookID)
}

// Wishlist lists the user's saved books.
func (u *ShelfUseCase) Wishlist(ctx context.Context, userID int64) ([]model.WishlistEntry, error) {
	return u.wishlists.ListByUser(ctx, userID)
}
