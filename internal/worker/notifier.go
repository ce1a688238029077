package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/techreads/backend/internal/adapter/mailer"
	"github.com/techreads/backend/internal/domain/model"
)

// Notification is one status-change email awaiting delivery.
type Notification struct {
	Email   string
	OrderID int64
	Status  model.OrderStatus
}

// Notifier delivers order notifications asynchronously through a mail
// relay. Delivery is best effort: failures are logged and dropped, and an
// overflowing queue sheds new notifications rather than blocking callers.
type Notifier struct {
	mailer      mailer.Mailer
	sendTimeout time.Duration
	workers     int
	logger      *slog.Logger

	jobs   chan Notification
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewNotifier constructs the notification dispatcher.
func NewNotifier(m mailer.Mailer, queueSize, workers int, sendTimeout time.Duration, logger *slog.Logger) *Notifier {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	if sendTimeout <= 0 {
		sendTimeout = 10 * time.Second
	}
	return &Notifier{
		mailer:      m,
		sendTimeout: sendTimeout,
		workers:     workers,
		logger:      logger,
		jobs:        make(chan Notification, queueSize),
	}
}

// NotifyStatusChange enqueues a notification without blocking the caller.
func (n *Notifier) NotifyStatusChange(email string, orderID int64, status model.OrderStatus) {
	select {
	case n.jobs <- Notification{Email: email, OrderID: orderID, Status: status}:
	default:
		n.logger.Warn("notification queue full, dropping",
			slog.Int64("order_id", orderID), slog.String("status", string(status)))
	}
}

// Start launches the delivery workers.
func (n *Notifier) Start(ctx context.Context) {
	n.mu.Lock()
	defer n.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	n.cancel = cancel

	for i := 0; i < n.workers; i++ {
		n.wg.Add(1)
		go n.worker(runCtx)
	}
}

// Stop waits for all workers to finish.
func (n *Notifier) Stop() {
	n.mu.Lock()
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
	n.mu.Unlock()

	n.wg.Wait()
}

func (n *Notifier) worker(ctx context.Context) {
	defer n.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-n.jobs:
			if !ok {
				return
			}
			n.deliver(ctx, job)
		}
	}
}

func (n *Notifier) deliver(ctx context.Context, job Notification) {
	sendCtx, cancel := context.WithTimeout(ctx, n.sendTimeout)
	defer cancel()

	subject := fmt.Sprintf("Your order #%d is now %s", job.OrderID, job.Status)
	body := fmt.Sprintf("<p>Hello,</p><p>The status of your order <b>#%d</b> changed to <b>%s</b>.</p><p>Thank you for shopping with TechReads.</p>",
		job.OrderID, job.Status)

	if err := n.mailer.Send(sendCtx, job.Email, subject, body); err != nil {
		n.logger.Error("notification delivery failed",
			slog.Int64("order_id", job.OrderID), slog.String("error", err.Error()))
	}
}
