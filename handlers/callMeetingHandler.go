package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/haniyashafiq/PRO-CRM/middlewares"
	"github.com/haniyashafiq/PRO-CRM/models"
	"github.com/haniyashafiq/PRO-CRM/services"
	"gorm.io/gorm"
)

type CallMeetingHandler struct {
	service *services.CallMeetingService
}

func NewCallMeetingHandler(service *services.CallMeetingService) *CallMeetingHandler {
	return &CallMeetingHandler{service: service}
}

type callMeetingPayload struct {
	PersonName    string `json:"person_name"`
	Day           int    `json:"day"`
	Month         int    `json:"month"`
	Year          int    `json:"year"`
	Type          string `json:"type"`
	AdmissionDate string `json:"admission_date"`
}

// CreateEntry records a contact. A resubmission with the same
// (person, day, month, year) overwrites the earlier entry.
func (h *CallMeetingHandler) CreateEntry(c *gin.Context) {
	var payload callMeetingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if payload.PersonName == "" {
		c.JSON(400, gin.H{"error": "person_name is required"})
		return
	}
	if payload.Type != models.ContactCall && payload.Type != models.ContactMeeting && payload.Type != models.ContactText {
		c.JSON(400, gin.H{"error": "type must be Call, Meeting or Text"})
		return
	}
	if payload.Day < 1 || payload.Day > 31 || payload.Month < 1 || payload.Month > 12 {
		c.JSON(400, gin.H{"error": "invalid day or month"})
		return
	}

	recordedBy, _ := middlewares.ExtractUserIDFromContext(c.Request.Context())

	entry := models.CallMeetingEntry{
		PersonName:    payload.PersonName,
		Day:           payload.Day,
		Month:         payload.Month,
		Year:          payload.Year,
		Type:          payload.Type,
		AdmissionDate: payload.AdmissionDate,
		RecordedBy:    recordedBy,
	}
	if err := h.service.Upsert(c.Request.Context(), &entry); err != nil {
		middlewares.HttpError(c, "Failed to record entry", 500, err)
		return
	}
	c.JSON(201, gin.H{"message": "Entry recorded", "id": entry.ID})
}

func (h *CallMeetingHandler) GetAllEntries(c *gin.Context) {
	entries, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, "Failed to list entries", 500, err)
		return
	}
	c.JSON(200, entries)
}

func (h *CallMeetingHandler) DeleteEntry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid entry ID"})
		return
	}
	if err := h.service.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "Entry not found"})
			return
		}
		middlewares.HttpError(c, "Failed to delete entry", 500, err)
		return
	}
	c.JSON(200, gin.H{"message": "Deleted", "id": id})
}

// GetMonthSummary returns contact counts per type for the given month.
func (h *CallMeetingHandler) GetMonthSummary(c *gin.Context) {
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(400, gin.H{"error": "Invalid month"})
		return
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid year"})
		return
	}

	summary, err := h.service.MonthSummary(c.Request.Context(), month, year)
	if err != nil {
		middlewares.HttpError(c, "Failed to summarize entries", 500, err)
		return
	}
	c.JSON(200, summary)
}
