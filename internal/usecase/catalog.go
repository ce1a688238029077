package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/techreads/backend/internal/domain/errors"
	"github.com/techreads/backend/internal/domain/model"
	"github.com/techreads/backend/internal/domain/repository"
)

// CatalogUseCase manages books and categories.
type CatalogUseCase struct {
	books      repository.BookRepository
	categories repository.CategoryRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(books repository.BookRepository, categories repository.CategoryRepository) *CatalogUseCase {
	return &CatalogUseCase{books: books, categories: categories}
}

func validBook(book *model.Book) bool {
	return strings.TrimSpace(book.Title) != "" &&
		strings.TrimSpace(book.Author) != "" &&
		book.PriceCents > 0 &&
		book.Stock >= 0
}

// CreateBook adds a catalog entry.
func (u *CatalogUseCase) CreateBook(ctx context.Context, book *model.Book) (*model.Book, error) {
	if !validBook(book) {
		return nil, domainErrors.ErrInvalidBook
	}
	return u.books.Create(ctx, book)
}

// UpdateBook overwrites a catalog entry.
func (u *CatalogUseCase) UpdateBook(ctx context.Context, book *model.Book) (*model.Book, error) {
	if book.ID <= 0 || !validBook(book) {
		return nil, domainErrors.ErrInvalidBook
	}
	return u.books.Update(ctx, book)
}

// DeleteBook removes a catalog entry.
func (u *CatalogUseCase) DeleteBook(ctx context.Context, id int64) error {
	return u.books.Delete(ctx, id)
}

// GetBook fetches a single book.
func (u *CatalogUseCase) GetBook(ctx context.Context, id int64) (*model.Book, error) {
	return u.books.GetByID(ctx, id)
}

// ListBooks returns the catalog sorted by title.
func (u *CatalogUseCase) ListBooks(ctx context.Context) ([]model.Book, error) {
	return u.books.List(ctx)
}

// CreateCategory adds a category.
func (u *CatalogUseCase) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainErrors.ErrInvalidCategory
	}
	return u.categories.Create(ctx, name)
}

// DeleteCategory removes a category; books keep existing without one.
func (u *CatalogUseCase) DeleteCategory(ctx context.Context, id int64) error {
	return u.categories.Delete(ctx, id)
}

// ListCategories returns all categories sorted by name.
func (u *CatalogUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	return u.categories.List(ctx)
}
