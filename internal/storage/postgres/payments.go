package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/techreads/backend/internal/domain/errors"
	"github.com/techreads/backend/internal/domain/model"
)

type paymentRepository struct {
	storage *Storage
}

func (r *paymentRepository) GetByOrder(ctx context.Context, orderID int64) (*model.Payment, error) {
	const query = `SELECT id, order_id, method, amount_cents, status, transaction_id, created_at, updated_at
                   FROM payments WHERE order_id=$1`
	return scanPayment(r.storage.pool.QueryRow(ctx, query, orderID))
}

func (r *paymentRepository) Upsert(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	const query = `INSERT INTO payments (order_id, method, amount_cents, status, transaction_id)
                   VALUES ($1, $2, $3, $4, $5)
                   ON CONFLICT (order_id) DO UPDATE
                   SET method=EXCLUDED.method,
                       amount_cents=EXCLUDED.amount_cents,
                       status=EXCLUDED.status,
                       transaction_id=EXCLUDED.transaction_id,
                       updated_at=NOW()
                   RETURNING id, created_at, updated_at`
	stored := *payment
	err := r.storage.pool.QueryRow(ctx, query,
		payment.OrderID, payment.Method, payment.AmountCents, payment.Status, payment.TransactionID).
		Scan(&stored.ID, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *paymentRepository) Reconcile(ctx context.Context, orderID, amountCents int64, transactionID, method string) (*model.Payment, error) {
	var result model.Payment
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lockQuery = `SELECT id, order_id, method, amount_cents, status, transaction_id, created_at, updated_at
                           FROM payments WHERE order_id=$1 FOR UPDATE`
		existing, err := scanPayment(tx.QueryRow(ctx, lockQuery, orderID))
		if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
			return err
		}

		if existing != nil && existing.Status == model.PaymentStatusCompleted && existing.TransactionID == transactionID {
			// Replayed callback, nothing left to apply.
			result = *existing
			return nil
		}

		if existing != nil {
			const update = `UPDATE payments
                            SET status=$1, transaction_id=$2, amount_cents=$3, method=$4, updated_at=NOW()
                            WHERE order_id=$5
                            RETURNING id, created_at, updated_at`
			result = model.Payment{
				OrderID:       orderID,
				Method:        method,
				AmountCents:   amountCents,
				Status:        model.PaymentStatusCompleted,
				TransactionID: transactionID,
			}
			if err := tx.QueryRow(ctx, update,
				model.PaymentStatusCompleted, transactionID, amountCents, method, orderID).
				Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt); err != nil {
				return err
			}
		} else {
			const insert = `INSERT INTO payments (order_id, method, amount_cents, status, transaction_id)
                            VALUES ($1, $2, $3, $4, $5)
                            RETURNING id, created_at, updated_at`
			result = model.Payment{
				OrderID:       orderID,
				Method:        method,
				AmountCents:   amountCents,
				Status:        model.PaymentStatusCompleted,
				TransactionID: transactionID,
			}
			if err := tx.QueryRow(ctx, insert,
				orderID, method, amountCents, model.PaymentStatusCompleted, transactionID).
				Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt); err != nil {
				return err
			}
		}

		const markPaid = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2 AND status=$3`
		if _, err := tx.Exec(ctx, markPaid, model.OrderStatusPaid, orderID, model.OrderStatusPending); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func scanPayment(row pgx.Row) (*model.Payment, error) {
	var p model.Payment
	var txID *string
	err := row.Scan(&p.ID, &p.OrderID, &p.Method, &p.AmountCents, &p.Status, &txID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if txID != nil {
		p.TransactionID = *txID
	}
	return &p, nil
}
