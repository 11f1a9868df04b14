package webhook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/polkiloo/tareffa/internal/domain/model"
)

// ErrDisabled is returned by the client used when no webhook is configured.
var ErrDisabled = errors.New("webhook disabled")

// TooManyRequestsError represents rate limiting signal from the receiver.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// Client delivers notifications to an external receiver.
type Client interface {
	Send(ctx context.Context, n model.Notification) error
	Enabled() bool
}

// payload mirrors the JSON document posted to the receiver.
type payload struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Variant     string    `json:"variant"`
	RecipientID string    `json:"recipientId"`
	OrderID     string    `json:"orderId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HTTPClient implements Client by POSTing JSON through resty.
type HTTPClient struct {
	endpoint string
	http     *resty.Client
	logger   *slog.Logger
}

// NewHTTPClient creates webhook client with default timeout.
func NewHTTPClient(endpoint string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse webhook url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("webhook url must be absolute")
	}
	return &HTTPClient{
		endpoint: parsed.String(),
		logger:   logger,
		http: resty.New().
			SetTimeout(10*time.Second).
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json"),
	}, nil
}

func (c *HTTPClient) Enabled() bool { return true }

// Send posts notification to the receiver.
func (c *HTTPClient) Send(ctx context.Context, n model.Notification) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload{
			ID:          n.ID,
			Title:       n.Title,
			Description: n.Description,
			Variant:     string(n.Variant),
			RecipientID: n.RecipientID,
			OrderID:     n.OrderID,
			CreatedAt:   n.CreatedAt,
		}).
		Post(c.endpoint)
	if err != nil {
		return err
	}

	switch code := resp.StatusCode(); {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusTooManyRequests:
		return TooManyRequestsError{RetryAfter: parseRetryAfter(resp.Header().Get("Retry-After"))}
	default:
		c.logger.Error("webhook request failed", slog.Int("status", code), slog.String("body", resp.String()))
		return fmt.Errorf("webhook error: %s", resp.Status())
	}
}

// Disabled drops every notification.
type Disabled struct{}

func (Disabled) Send(context.Context, model.Notification) error { return ErrDisabled }

func (Disabled) Enabled() bool { return false }

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}
