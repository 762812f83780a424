package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/haniyashafiq/PRO-CRM/middlewares"
	"github.com/haniyashafiq/PRO-CRM/services"
)

type DashboardHandler struct {
	finance *services.FinanceService
}

func NewDashboardHandler(finance *services.FinanceService) *DashboardHandler {
	return &DashboardHandler{finance: finance}
}

func (h *DashboardHandler) GetMetrics(c *gin.Context) {
	metrics, err := h.finance.Dashboard(c.Request.Context(), time.Now())
	if err != nil {
		middlewares.HttpError(c, "Failed to compute dashboard metrics", 500, err)
		return
	}
	c.JSON(200, metrics)
}

// GetAdmissions lists the patients admitted in the current month.
func (h *DashboardHandler) GetAdmissions(c *gin.Context) {
	admissions, err := h.finance.Admissions(c.Request.Context(), time.Now())
	if err != nil {
		middlewares.HttpError(c, "Failed to list admissions", 500, err)
		return
	}
	c.JSON(200, admissions)
}
