package usecase

import (
	"context"
	"log/slog"

	domainErrors "github.com/techreads/backend/internal/domain/errors"
	"github.com/techreads/backend/internal/domain/model"
	"github.com/techreads/backend/internal/domain/repository"
)

// StatusNotifier delivers order status change notifications to the owner.
// Implementations must not block and must swallow delivery failures.
type StatusNotifier interface {
	NotifyStatusChange(email string, orderID int64, status model.OrderStatus)
}

// OrderUseCase encapsulates the order workflow.
type OrderUseCase struct {
	orders   repository.OrderRepository
	users    repository.UserRepository
	notifier StatusNotifier
	logger   *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, users repository.UserRepository, notifier StatusNotifier, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{orders: orders, users: users, notifier: notifier, logger: logger}
}

// Create validates the line items and persists the order atomically.
// Nothing is written when validation fails.
func (u *OrderUseCase) Create(ctx context.Context, userID, totalCents int64, items []model.OrderItem) (*model.Order, error) {
	if len(items) == 0 {
		return nil, domainErrors.ErrEmptyOrder
	}
	for _, item := range items {
		if item.BookID <= 0 || item.Quantity <= 0 || item.UnitCents <= 0 {
			return nil, domainErrors.ErrInvalidOrderItem
		}
	}

	order := model.Order{
		UserID:     userID,
		Status:     model.OrderStatusPending,
		TotalCents: totalCents,
		Items:      items,
	}
	if order.ItemsTotal() != totalCents {
		return nil, domainErrors.ErrTotalMismatch
	}

	return u.orders.Create(ctx, &order)
}

// UpdateStatus applies a status change and notifies the owner when the
// status actually changed. Notification failures never fail the update.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, domainErrors.ErrInvalidOrderStatus
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status == status {
		return order, nil
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, domainErrors.ErrInvalidTransition
	}

	if err := u.orders.UpdateStatus(ctx, orderID, order.Status, status); err != nil {
		return nil, err
	}
	order.Status = status

	owner, err := u.users.GetByID(ctx, order.UserID)
	if err != nil {
		u.logger.Warn("order owner lookup failed, skipping notification",
			slog.Int64("order_id", orderID), slog.String("error", err.Error()))
		return order, nil
	}
	u.notifier.NotifyStatusChange(owner.Email, orderID, status)

	return order, nil
}

// Get returns the order with its items.
func (u *OrderUseCase) Get(ctx context.Context, orderID int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, orderID)
}

// ListByUser returns the user's orders sorted by creation time.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// ListAll returns every order, newest first.
func (u *OrderUseCase) ListAll(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}

// Delete removes the order together with its items and payments.
func (u *OrderUseCase) Delete(ctx context.Context, orderID int64) error {
	return u.orders.Delete(ctx, orderID)
}
