package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/haniyashafiq/PRO-CRM/middlewares"
	"github.com/haniyashafiq/PRO-CRM/models"
	"github.com/haniyashafiq/PRO-CRM/services"
)

type CanteenHandler struct {
	service *services.CanteenService
	finance *services.FinanceService
}

func NewCanteenHandler(service *services.CanteenService, finance *services.FinanceService) *CanteenHandler {
	return &CanteenHandler{service: service, finance: finance}
}

type salePayload struct {
	PatientID string `json:"patient_id"`
	Item      string `json:"item"`
	Amount    int64  `json:"amount"`
}

func (h *CanteenHandler) RecordSale(c *gin.Context) {
	var payload salePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if payload.PatientID == "" || payload.Amount <= 0 {
		c.JSON(400, gin.H{"error": "patient_id and a positive amount are required"})
		return
	}

	recordedBy, _ := middlewares.ExtractUserIDFromContext(c.Request.Context())

	sale := models.CanteenSale{
		PatientID:  payload.PatientID,
		Item:       payload.Item,
		Amount:     payload.Amount,
		RecordedBy: recordedBy,
	}
	found, err := h.service.Record(c.Request.Context(), &sale)
	if err != nil {
		middlewares.HttpError(c, "Failed to record sale", 500, err)
		return
	}
	if !found {
		c.JSON(404, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(201, gin.H{"message": "Sale recorded", "id": sale.ID})
}

func (h *CanteenHandler) GetAllSales(c *gin.Context) {
	sales, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, "Failed to list sales", 500, err)
		return
	}
	c.JSON(200, sales)
}

// GetBreakdown returns the per-patient allowance reconciliation for the
// current month.
func (h *CanteenHandler) GetBreakdown(c *gin.Context) {
	breakdown, err := h.finance.CanteenBreakdown(c.Request.Context(), time.Now())
	if err != nil {
		middlewares.HttpError(c, "Failed to compute canteen breakdown", 500, err)
		return
	}
	c.JSON(200, breakdown)
}
