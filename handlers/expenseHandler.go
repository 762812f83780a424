package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/haniyashafiq/PRO-CRM/middlewares"
	"github.com/haniyashafiq/PRO-CRM/models"
	"github.com/haniyashafiq/PRO-CRM/services"
	"gorm.io/gorm"
)

type ExpenseHandler struct {
	service *services.ExpenseService
	finance *services.FinanceService
}

func NewExpenseHandler(service *services.ExpenseService, finance *services.FinanceService) *ExpenseHandler {
	return &ExpenseHandler{service: service, finance: finance}
}

type expensePayload struct {
	Kind     string `json:"kind"`
	Amount   int64  `json:"amount"`
	Category string `json:"category"`
	Note     string `json:"note"`
}

func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var payload expensePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if payload.Kind != models.ExpenseIncoming && payload.Kind != models.ExpenseOutgoing {
		c.JSON(400, gin.H{"error": "kind must be incoming or outgoing"})
		return
	}
	if payload.Amount <= 0 {
		c.JSON(400, gin.H{"error": "a positive amount is required"})
		return
	}

	recordedBy, _ := middlewares.ExtractUserIDFromContext(c.Request.Context())

	expense := models.Expense{
		Kind:       payload.Kind,
		Amount:     payload.Amount,
		Category:   payload.Category,
		Note:       payload.Note,
		RecordedBy: recordedBy,
	}
	if err := h.service.Create(c.Request.Context(), &expense); err != nil {
		middlewares.HttpError(c, "Failed to record expense", 500, err)
		return
	}
	c.JSON(201, gin.H{"message": "Expense recorded", "id": expense.ID})
}

// GetExpenses returns the ledger with the two synthetic incoming entries
// prepended: auto-fees first, then auto-canteen.
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	entries, err := h.finance.ExpenseList(c.Request.Context(), time.Now())
	if err != nil {
		middlewares.HttpError(c, "Failed to list expenses", 500, err)
		return
	}
	c.JSON(200, entries)
}

func (h *ExpenseHandler) GetSummary(c *gin.Context) {
	summary, err := h.finance.ExpenseSummary(c.Request.Context(), time.Now())
	if err != nil {
		middlewares.HttpError(c, "Failed to compute expense summary", 500, err)
		return
	}
	c.JSON(200, summary)
}

func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid expense ID"})
		return
	}
	if err := h.service.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "Expense not found"})
			return
		}
		middlewares.HttpError(c, "Failed to delete expense", 500, err)
		return
	}
	c.JSON(200, gin.H{"message": "Deleted", "id": id})
}
