package repository

import (
	"context"

	"github.com/techreads/backend/internal/domain/model"
)

// OrderRepository describes persistence operations with orders and their items.
type OrderRepository interface {
	// Create persists the order together with all its items in one transaction.
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	// UpdateStatus applies the change only when the stored status still equals from.
	UpdateStatus(ctx context.Context, orderID int64, from, to model.OrderStatus) error
	// Delete removes the order; items and payments go with it.
	Delete(ctx context.Context, orderID int64) error
}
