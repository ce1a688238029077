package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/techreads/backend/internal/adapter/daraja"
	domainErrors "github.com/techreads/backend/internal/domain/errors"
	"github.com/techreads/backend/internal/domain/model"
	"github.com/techreads/backend/internal/domain/repository"
)

const mpesaMethod = "M-Pesa"

// PaymentUseCase reconciles settlement records with orders.
type PaymentUseCase struct {
	orders   repository.OrderRepository
	payments repository.PaymentRepository
	gateway  daraja.Client
	logger   *slog.Logger
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(orders repository.OrderRepository, payments repository.PaymentRepository, gateway daraja.Client, logger *slog.Logger) *PaymentUseCase {
	return &PaymentUseCase{orders: orders, payments: payments, gateway: gateway, logger: logger}
}

// Submit records a client-reported settlement for the caller's order.
func (u *PaymentUseCase) Submit(ctx context.Context, userID, orderID int64, method, transactionID string, admin bool) (*model.Payment, error) {
	method = strings.TrimSpace(method)
	transactionID = strings.TrimSpace(transactionID)
	if method == "" || transactionID == "" {
		return nil, domainErrors.ErrInvalidPayment
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID && !admin {
		return nil, domainErrors.ErrNotFound
	}

	payment := model.Payment{
		OrderID:       orderID,
		Method:        method,
		AmountCents:   order.TotalCents,
		Status:        model.PaymentStatusCompleted,
		TransactionID: transactionID,
	}
	return u.payments.Upsert(ctx, &payment)
}

// HandleCallback reconciles a gateway webhook with the referenced order.
// Replaying a callback with the same receipt applies no further changes.
func (u *PaymentUseCase) HandleCallback(ctx context.Context, envelope *daraja.CallbackEnvelope) (*model.Payment, error) {
	cb := envelope.Body.STKCallback
	if !cb.Succeeded() {
		u.logger.Info("payment declined by gateway",
			slog.Int("result_code", cb.ResultCode), slog.String("desc", cb.ResultDesc))
		return nil, fmt.Errorf("%w: %s", domainErrors.ErrPaymentFailed, cb.ResultDesc)
	}

	receipt, ok := cb.CallbackMetadata.String(daraja.MetadataReceiptNumber)
	if !ok || receipt == "" {
		return nil, fmt.Errorf("%w: missing receipt number", domainErrors.ErrInvalidCallback)
	}

	reference, ok := cb.CallbackMetadata.String(daraja.MetadataAccountReference)
	if !ok {
		return nil, fmt.Errorf("%w: missing account reference", domainErrors.ErrInvalidCallback)
	}
	orderID, err := strconv.ParseInt(reference, 10, 64)
	if err != nil || orderID <= 0 {
		return nil, fmt.Errorf("%w: bad account reference %q", domainErrors.ErrInvalidCallback, reference)
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	amount, ok := cb.CallbackMetadata.AmountCents()
	if !ok {
		amount = order.TotalCents
	}

	payment, err := u.payments.Reconcile(ctx, orderID, amount, receipt, mpesaMethod)
	if err != nil {
		return nil, err
	}
	u.logger.Info("payment reconciled",
		slog.Int64("order_id", orderID), slog.String("transaction_id", receipt))
	return payment, nil
}

// InitiateSTKPush asks the gateway to prompt the customer's phone for the
// order total and records a pending settlement keyed to the push.
func (u *PaymentUseCase) InitiateSTKPush(ctx context.Context, userID, orderID int64, phone string, admin bool) (*daraja.STKPushResponse, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, domainErrors.ErrInvalidPhoneNumber
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID && !admin {
		return nil, domainErrors.ErrNotFound
	}

	// M-Pesa only accepts whole-shilling amounts. Truncating here would
	// under-collect, so fractional totals are refused up front.
	if order.TotalCents%100 != 0 {
		return nil, fmt.Errorf("%w: order total %d cents", domainErrors.ErrFractionalAmount, order.TotalCents)
	}

	resp, err := u.gateway.STKPush(ctx, daraja.STKPushRequest{
		PhoneNumber:      phone,
		AmountCents:      order.TotalCents,
		AccountReference: strconv.FormatInt(orderID, 10),
		Description:      fmt.Sprintf("TechReads order %d", orderID),
	})
	if err != nil {
		return nil, err
	}

	pending := model.Payment{
		OrderID:       orderID,
		Method:        mpesaMethod,
		AmountCents:   order.TotalCents,
		Status:        model.PaymentStatusPending,
		TransactionID: resp.CheckoutRequestID,
	}
	if _, err := u.payments.Upsert(ctx, &pending); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetByOrder returns the settlement record for an order. Non-owners see
// ErrNotFound unless they are admins.
func (u *PaymentUseCase) GetByOrder(ctx context.Context, userID, orderID int64, admin bool) (*model.Payment, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID && !admin {
		return nil, domainErrors.ErrNotFound
	}
	return u.payments.GetByOrder(ctx, orderID)
}
