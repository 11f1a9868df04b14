package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

const defaultHeartbeat = 15 * time.Second

// NotificationHandler streams notifications as server-sent events.
type NotificationHandler struct {
	facade    NotificationFacade
	heartbeat time.Duration
}

// NewNotificationHandler constructs NotificationHandler.
func NewNotificationHandler(facade NotificationFacade) *NotificationHandler {
	return &NotificationHandler{facade: facade, heartbeat: defaultHeartbeat}
}

// Stream handles GET /api/notifications until the client disconnects.
func (h *NotificationHandler) Stream(c *gin.Context) {
	notifications, cancel := h.facade.Subscribe(CurrentIdentity(c).ID)
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.SSEvent("ping", time.Now().UTC().Format(time.RFC3339))
		case n, ok := <-notifications:
			if !ok {
				return
			}
			c.SSEvent("notification", toNotificationResponse(n))
		}
		c.Writer.Flush()
	}
}
