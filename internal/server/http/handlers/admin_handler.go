package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/tareffa/internal/domain/model"
	"github.com/polkiloo/tareffa/internal/server/http/dto"
)

// AdminHandler manages studio side order endpoints.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// UpdateStatus handles PATCH /api/admin/orders/:id/status.
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), CurrentIdentity(c), c.Param("id"), model.OrderStatus(req.Status))
	h.respond(c, order, err)
}

// AddComment handles POST /api/admin/orders/:id/comments.
func (h *AdminHandler) AddComment(c *gin.Context) {
	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	order, err := h.facade.AddOrderComment(c.Request.Context(), CurrentIdentity(c), c.Param("id"), req.Text)
	h.respond(c, order, err)
}

// AddDelivery handles POST /api/admin/orders/:id/deliveries.
func (h *AdminHandler) AddDelivery(c *gin.Context) {
	var req dto.AttachmentPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	order, err := h.facade.AddDeliveryFile(c.Request.Context(), CurrentIdentity(c), c.Param("id"), fromAttachmentPayload(req))
	h.respond(c, order, err)
}

func (h *AdminHandler) respond(c *gin.Context, order *model.Order, err error) {
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}
