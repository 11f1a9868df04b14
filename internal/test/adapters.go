package test

import (
	"context"
	"sync"

	"github.com/polkiloo/tareffa/internal/domain/model"
)

// NotifierRecorder captures published notifications.
type NotifierRecorder struct {
	mu   sync.Mutex
	sent []model.Notification
}

// Notify records n.
func (r *NotifierRecorder) Notify(_ context.Context, n model.Notification) {
	r.mu.Lock()
	r.sent = append(r.sent, n)
	r.mu.Unlock()
}

// Notifications returns a copy of recorded notifications.
func (r *NotifierRecorder) Notifications() []model.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Notification(nil), r.sent...)
}

// Last returns the most recent notification.
func (r *NotifierRecorder) Last() (model.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		return model.Notification{}, false
	}
	return r.sent[len(r.sent)-1], true
}

// PresignerStub returns URLs derived from the object key.
type PresignerStub struct {
	UploadFn   func(context.Context, string, string, int64) (string, error)
	DownloadFn func(context.Context, string) (string, error)
}

func (s PresignerStub) PresignUpload(ctx context.Context, key, contentType string, size int64) (string, error) {
	if s.UploadFn != nil {
		return s.UploadFn(ctx, key, contentType, size)
	}
	return "https://storage.test/put/" + key, nil
}

func (s PresignerStub) PresignDownload(ctx context.Context, key string) (string, error) {
	if s.DownloadFn != nil {
		return s.DownloadFn(ctx, key)
	}
	return "https://storage.test/get/" + key, nil
}

// WebhookClientStub records delivered notifications.
type WebhookClientStub struct {
	SendFn   func(context.Context, model.Notification) error
	Disabled bool

	mu   sync.Mutex
	sent []model.Notification
}

// Send records n and delegates to SendFn when set.
func (s *WebhookClientStub) Send(ctx context.Context, n model.Notification) error {
	s.mu.Lock()
	s.sent = append(s.sent, n)
	s.mu.Unlock()
	if s.SendFn != nil {
		return s.SendFn(ctx, n)
	}
	return nil
}

// Enabled reports whether the stub accepts deliveries.
func (s *WebhookClientStub) Enabled() bool { return !s.Disabled }

// Sent returns a copy of attempted deliveries.
func (s *WebhookClientStub) Sent() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Notification(nil), s.sent...)
}
