// Package notifier delivers best-effort owner notifications after a
// transfer commits. Delivery is decoupled from the transfer's
// atomicity boundary: a dropped or failed notification is an accepted
// loss, never a reversal.
package notifier

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/vbalan/bankcore/internal/domain"
	"github.com/vbalan/bankcore/internal/infrastructure/metrics"
)

// Notification tells one account owner about one side of a transfer.
type Notification struct {
	TransactionID string
	AccountNumber string
	Counterparty  string
	Direction     domain.Direction
	Amount        decimal.Decimal
}

// Sender delivers a single notification.
type Sender interface {
	Send(ctx context.Context, n Notification) error
}

// Config for Dispatcher.
type Config struct {
	Sender      Sender
	Logger      zerolog.Logger
	BufferSize  int           // queued notifications before drops, default 256
	SendTimeout time.Duration // bounded attempt window per delivery, default 5s
}

// Dispatcher queues notifications and delivers them on a worker
// goroutine. Enqueueing never blocks the caller.
type Dispatcher struct {
	sender  Sender
	logger  zerolog.Logger
	queue   chan Notification
	timeout time.Duration
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(cfg Config) *Dispatcher {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 256
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = 5 * time.Second
	}

	return &Dispatcher{
		sender:  cfg.Sender,
		logger:  cfg.Logger,
		queue:   make(chan Notification, cfg.BufferSize),
		timeout: cfg.SendTimeout,
	}
}

// TransferApplied implements usecase.TransferNotifier. It enqueues one
// notification per side of the committed transfer and returns
// immediately; a full queue drops with a warning.
func (d *Dispatcher) TransferApplied(record *domain.TransactionRecord) {
	d.enqueue(Notification{
		TransactionID: record.ID,
		AccountNumber: record.SourceAccount,
		Counterparty:  record.DestinationAccount,
		Direction:     domain.DirectionSent,
		Amount:        record.Amount,
	})
	d.enqueue(Notification{
		TransactionID: record.ID,
		AccountNumber: record.DestinationAccount,
		Counterparty:  record.SourceAccount,
		Direction:     domain.DirectionReceived,
		Amount:        record.Amount,
	})
}

func (d *Dispatcher) enqueue(n Notification) {
	select {
	case d.queue <- n:
	default:
		metrics.NotificationsDropped.Inc()
		d.logger.Warn().
			Str("transaction_id", n.TransactionID).
			Str("account", n.AccountNumber).
			Msg("notification queue full, dropping")
	}
}

// Start runs the delivery worker until the context is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	d.logger.Info().Msg("notification dispatcher started")

	for {
		select {
		case <-ctx.Done():
			d.logger.Info().Msg("notification dispatcher shutting down")
			return
		case n := <-d.queue:
			d.deliver(ctx, n)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, n Notification) {
	sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := d.sender.Send(sendCtx, n); err != nil {
		metrics.NotificationsFailed.Inc()
		d.logger.Warn().
			Err(err).
			Str("transaction_id", n.TransactionID).
			Str("account", n.AccountNumber).
			Str("direction", string(n.Direction)).
			Msg("notification delivery failed")
		return
	}

	metrics.NotificationsDelivered.Inc()
}
