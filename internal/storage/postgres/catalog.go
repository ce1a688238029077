package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/techreads/backend/internal/domain/errors"
	"github.com/techreads/backend/internal/domain/model"
)

type bookRepository struct {
	storage *Storage
}

type categoryRepository struct {
	storage *Storage
}

func (r *bookRepository) Create(ctx context.Context, book *model.Book) (*model.Book, error) {
	const query = `INSERT INTO books (title, author, description, price_cents, stock, image_url, category_id)
                   VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	created := *book
	err := r.storage.pool.QueryRow(ctx, query,
		book.Title, book.Author, book.Description, book.PriceCents, book.Stock, book.ImageURL, book.CategoryID).
		Scan(&created.ID)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *bookRepository) Update(ctx context.Context, book *model.Book) (*model.Book, error) {
	const query = `UPDATE books
                   SET title=$1, author=$2, description=$3, price_cents=$4, stock=$5, image_url=$6, category_id=$7
                   WHERE id=$8`
	tag, err := r.storage.pool.Exec(ctx, query,
		book.Title, book.Author, book.Description, book.PriceCents, book.Stock, book.ImageURL, book.CategoryID, book.ID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domainErrors.ErrNotFound
	}
	updated := *book
	return &updated, nil
}

func (r *bookRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM books WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	const query = `SELECT id, title, author, description, price_cents, stock, image_url, category_id
                   FROM books WHERE id=$1`
	var b model.Book
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&b.ID, &b.Title, &b.Author, &b.Description, &b.PriceCents, &b.Stock, &b.ImageURL, &b.CategoryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *bookRepository) List(ctx context.Context) ([]model.Book, error) {
	const query = `SELECT id, title, author, description, price_cents, stock, image_url, category_id
                   FROM books ORDER BY title`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Book
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Description, &b.PriceCents, &b.Stock, &b.ImageURL, &b.CategoryID); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *categoryRepository) Create(ctx context.Context, name string) (*model.Category, error) {
	const query = `INSERT INTO categories (name) VALUES ($1) RETURNING id`
	var c model.Category
	err := r.storage.pool.QueryRow(ctx, query, name).Scan(&c.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	c.Name = name
	return &c, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM categories WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	const query = `SELECT id, name FROM categories ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
