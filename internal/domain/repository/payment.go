package repository

import (
	"context"

	"github.com/techreads/backend/internal/domain/model"
)

// PaymentRepository manages settlement records, one per order.
type PaymentRepository interface {
	GetByOrder(ctx context.Context, orderID int64) (*model.Payment, error)
	// Upsert inserts the payment or, when the order already has one,
	// overwrites its method, amount, status and transaction id.
	Upsert(ctx context.Context, payment *model.Payment) (*model.Payment, error)
	// Reconcile marks the order's payment Completed with the gateway
	// transaction id and moves a Pending order to Paid, all in one
	// transaction. Replaying the same transaction id is a no-op.
	Reconcile(ctx context.Context, orderID, amountCents int64, transactionID, method string) (*model.Payment, error)
}
