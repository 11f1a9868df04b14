package notify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/polkiloo/tareffa/internal/domain/model"
)

const defaultBuffer = 16

type subscriber struct {
	recipientID string
	ch          chan model.Notification
}

// Hub fans notifications out to in-process subscribers. Publishing never blocks:
// a subscriber whose buffer is full misses the notification.
type Hub struct {
	buffer int
	logger *slog.Logger

	mu     sync.RWMutex
	nextID int
	subs   map[int]*subscriber
	closed bool
}

// NewHub constructs Hub with per subscriber buffer size.
func NewHub(buffer int, logger *slog.Logger) *Hub {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Hub{buffer: buffer, logger: logger, subs: make(map[int]*subscriber)}
}

// Notify publishes n to every subscriber of its recipient and to catch-all subscribers.
func (h *Hub) Notify(_ context.Context, n model.Notification) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subs {
		if sub.recipientID != "" && sub.recipientID != n.RecipientID {
			continue
		}
		select {
		case sub.ch <- n:
		default:
			h.logger.Warn("notification dropped",
				slog.String("notification", n.ID),
				slog.String("recipient", sub.recipientID),
			)
		}
	}
}

// Subscribe returns notifications addressed to recipientID. The cancel func
// closes the channel and may be called more than once.
func (h *Hub) Subscribe(recipientID string) (<-chan model.Notification, func()) {
	return h.subscribe(recipientID)
}

// SubscribeAll returns every published notification.
func (h *Hub) SubscribeAll() (<-chan model.Notification, func()) {
	return h.subscribe("")
}

// Subscribers reports the number of open subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close ends every subscription. Later subscriptions receive a closed channel.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, sub := range h.subs {
		delete(h.subs, id)
		close(sub.ch)
	}
}

func (h *Hub) subscribe(recipientID string) (<-chan model.Notification, func()) {
	sub := &subscriber{recipientID: recipientID, ch: make(chan model.Notification, h.buffer)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(sub.ch)
		return sub.ch, func() {}
	}
	id := h.nextID
	h.nextID++
	h.subs[id] = sub
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if _, ok := h.subs[id]; !ok {
				return
			}
			delete(h.subs, id)
			close(sub.ch)
		})
	}
	return sub.ch, cancel
}
