package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/tareffa/internal/server/http/dto"
)

// PlanHandler lists subscription tiers.
type PlanHandler struct {
	facade PlanFacade
}

// NewPlanHandler constructs PlanHandler.
func NewPlanHandler(facade PlanFacade) *PlanHandler {
	return &PlanHandler{facade: facade}
}

// List handles GET /api/plans.
func (h *PlanHandler) List(c *gin.Context) {
	plans := h.facade.Plans()
	response := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		response = append(response, toPlanResponse(p))
	}
	c.JSON(http.StatusOK, response)
}
