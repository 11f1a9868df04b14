package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/tareffa/internal/domain/errors"
	"github.com/polkiloo/tareffa/internal/domain/model"
	"github.com/polkiloo/tareffa/internal/server/http/dto"
)

// OrderHandler manages order endpoints available to every identity.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	files := make([]model.Attachment, 0, len(req.Files))
	for _, f := range req.Files {
		files = append(files, fromAttachmentPayload(f))
	}
	order, err := h.facade.CreateOrder(c.Request.Context(), CurrentIdentity(c), model.NewOrder{
		Title:        req.Title,
		Description:  req.Description,
		ServiceType:  model.ServiceType(req.ServiceType),
		Files:        files,
		BriefingData: req.BriefingData,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	orders, err := h.facade.Orders(c.Request.Context(), CurrentIdentity(c), filter)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), CurrentIdentity(c), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Dashboard handles GET /api/dashboard.
func (h *OrderHandler) Dashboard(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	dashboard, err := h.facade.Dashboard(c.Request.Context(), CurrentIdentity(c), filter)
	if err != nil {
		abortWithError(c, err)
		return
	}

	byStatus := make(map[string]int, len(dashboard.ByStatus))
	for status, count := range dashboard.ByStatus {
		byStatus[string(status)] = count
	}
	c.JSON(http.StatusOK, dto.DashboardResponse{
		Total:    dashboard.Total,
		ByStatus: byStatus,
		Recent:   toOrderResponses(dashboard.Recent),
	})
}

func filterFromQuery(c *gin.Context) (model.OrderFilter, error) {
	filter := model.OrderFilter{
		ClientID:    strings.TrimSpace(c.Query("clientId")),
		Status:      model.OrderStatus(strings.ToUpper(strings.TrimSpace(c.Query("status")))),
		ServiceType: model.ServiceType(strings.ToUpper(strings.TrimSpace(c.Query("serviceType")))),
		Search:      strings.TrimSpace(c.Query("search")),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return model.OrderFilter{}, domainErrors.ErrInvalidStatus
	}
	if filter.ServiceType != "" && !filter.ServiceType.Valid() {
		return model.OrderFilter{}, domainErrors.ErrInvalidServiceType
	}
	return filter, nil
}
