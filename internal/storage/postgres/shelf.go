package postgres

import (
	"context"

	domainErrors "github.com/techreads/backend/internal/domain/errors"
	"github.com/techreads/backend/internal/domain/model"
)

type cartRepository struct {
	storage *Storage
}

type wishlistRepository struct {
	storage *Storage
}

func (r *cartRepository) Add(ctx context.Context, userID, bookID int64, quantity int32) (*model.CartItem, error) {
	const query = `INSERT INTO cart_items (user_id, book_id, quantity)
                   VALUES ($1, $2, $3)
                   ON CONFLICT (user_id, book_id) DO UPDATE
                   SET quantity = cart_items.quantity + EXCLUDED.quantity
                   RETURNING id, quantity`
	item := model.CartItem{UserID: userID, BookID: bookID}
	if err := r.storage.pool.QueryRow(ctx, query, userID, bookID, quantity).Scan(&item.ID, &item.Quantity); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) SetQuantity(ctx context.Context, userID, bookID int64, quantity int32) error {
	const query = `UPDATE cart_items SET quantity=$1 WHERE user_id=$2 AND book_id=$3`
	tag, err := r.storage.pool.Exec(ctx, query, quantity, userID, bookID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) Remove(ctx context.Context, userID, bookID int64) error {
	const query = `DELETE FROM cart_items WHERE user_id=$1 AND book_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, userID, bookID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) ListByUser(ctx context.Context, userID int64) ([]model.CartItem, error) {
	const query = `SELECT id, user_id, book_id, quantity FROM cart_items WHERE user_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.CartItem
	for rows.Next() {
		var it model.CartItem
		if err := rows.Scan(&it.ID, &it.UserID, &it.BookID, &it.Quantity); err != nil {
			return nil, err
		}
		result = append(result, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *wishlistRepository) Add(ctx context.Context, userID, bookID int64) (*model.WishlistEntry, error) {
	const query = `INSERT INTO wishlist_entries (user_id, book_id)
                   VALUES ($1, $2)
                   ON CONFLICT (user_id, book_id) DO UPDATE SET book_id=EXCLUDED.book_id
                   RETURNING id`
	entry := model.WishlistEntry{UserID: userID, BookID: bookID}
	if err := r.storage.pool.QueryRow(ctx, query, userID, bookID).Scan(&entry.ID); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *wishlistRepository) Remove(ctx context.Context, userID, bookID int64) error {
	const query = `DELETE FROM wishlist_entries WHERE user_id=$1 AND book_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, userID, bookID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *wishlistRepository) ListByUser(ctx context.Context, userID int64) ([]model.WishlistEntry, error) {
	const query = `SELECT id, user_id, book_id FROM wishlist_entries WHERE user_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.WishlistEntry
	for rows.Next() {
		var e model.WishlistEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.BookID); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
