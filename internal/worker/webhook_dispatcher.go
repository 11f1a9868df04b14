package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/tareffa/internal/adapter/webhook"
	"github.com/polkiloo/tareffa/internal/domain/model"
)

// NotificationSource exposes the stream of every published notification.
type NotificationSource interface {
	SubscribeAll() (<-chan model.Notification, func())
}

// WebhookDispatcher forwards notifications to the outbound webhook concurrently.
type WebhookDispatcher struct {
	source  NotificationSource
	client  webhook.Client
	workers int
	buffer  int
	logger  *slog.Logger

	jobs   chan model.Notification
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewWebhookDispatcher constructs webhook dispatcher worker pool.
func NewWebhookDispatcher(source NotificationSource, client webhook.Client, workers, buffer int, logger *slog.Logger) *WebhookDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if buffer <= 0 {
		buffer = 1
	}
	return &WebhookDispatcher{
		source:  source,
		client:  client,
		workers: workers,
		buffer:  buffer,
		logger:  logger,
	}
}

// Start launches background delivery. It does nothing when the webhook is disabled.
func (d *WebhookDispatcher) Start(ctx context.Context) {
	if !d.client.Enabled() {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	d.cancel = cancel
	d.jobs = make(chan model.Notification, d.buffer)
	notifications, unsubscribe := d.source.SubscribeAll()

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx, d.jobs)
	}

	d.wg.Add(1)
	go d.dispatch(runCtx, notifications, unsubscribe, d.jobs)
}

// Stop waits for all workers to finish.
func (d *WebhookDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *WebhookDispatcher) dispatch(ctx context.Context, notifications <-chan model.Notification, unsubscribe func(), jobs chan<- model.Notification) {
	defer d.wg.Done()
	defer close(jobs)
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-notifications:
			if !ok {
				return
			}
			select {
			case <-ctx.Done():
				return
			case jobs <- n:
			}
		}
	}
}

func (d *WebhookDispatcher) worker(ctx context.Context, jobs <-chan model.Notification) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-jobs:
			if !ok {
				return
			}
			d.deliver(ctx, n)
		}
	}
}

// deliver sends n, retrying once after the delay requested by a rate limited endpoint.
func (d *WebhookDispatcher) deliver(ctx context.Context, n model.Notification) {
	err := d.client.Send(ctx, n)
	var limited webhook.TooManyRequestsError
	if errors.As(err, &limited) {
		d.logger.Warn("webhook rate limited", slog.Duration("retry_after", limited.RetryAfter))
		if !sleep(ctx, limited.RetryAfter) {
			return
		}
		err = d.client.Send(ctx, n)
	}
	if err != nil {
		d.logger.Error("webhook delivery failed", slog.String("notification", n.ID), slog.String("error", err.Error()))
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
