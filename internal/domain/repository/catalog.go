package repository

import (
	"context"

	"github.com/techreads/backend/internal/domain/model"
)

// BookRepository describes catalog persistence for books.
type BookRepository interface {
	Create(ctx context.Context, book *model.Book) (*model.Book, error)
	Update(ctx context.Context, book *model.Book) (*model.Book, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Book, error)
	List(ctx context.Context) ([]model.Book, error)
}

// CategoryRepository describes catalog persistence for categories.
type CategoryRepository interface {
	Create(ctx context.Context, name string) (*model.Category, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]model.Category, error)
}
