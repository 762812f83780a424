package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/haniyashafiq/PRO-CRM/middlewares"
	"github.com/haniyashafiq/PRO-CRM/models"
	"github.com/haniyashafiq/PRO-CRM/services"
)

type RecordHandler struct {
	service *services.RecordService
}

func NewRecordHandler(service *services.RecordService) *RecordHandler {
	return &RecordHandler{service: service}
}

type recordPayload struct {
	Text string `json:"text"`
}

// AddNote appends a free-text note to the patient's record stream.
func (h *RecordHandler) AddNote(c *gin.Context) {
	h.append(c, models.RecordNote)
}

// AddSessionNote appends a session note to the patient's record stream.
func (h *RecordHandler) AddSessionNote(c *gin.Context) {
	h.append(c, models.RecordSessionNote)
}

// AddMedicalRecord appends a medical record to the patient's record stream.
func (h *RecordHandler) AddMedicalRecord(c *gin.Context) {
	h.append(c, models.RecordMedicalRecord)
}

func (h *RecordHandler) append(c *gin.Context, recordType string) {
	var payload recordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if payload.Text == "" {
		c.JSON(400, gin.H{"error": "text is required"})
		return
	}

	recordedBy, _ := middlewares.ExtractUserIDFromContext(c.Request.Context())

	record := models.PatientRecord{
		PatientID:  c.Param("patient_id"),
		Type:       recordType,
		Text:       payload.Text,
		RecordedBy: recordedBy,
	}
	found, err := h.service.Append(c.Request.Context(), &record)
	if err != nil {
		middlewares.HttpError(c, "Failed to add record", 500, err)
		return
	}
	if !found {
		c.JSON(404, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(201, gin.H{"message": "Record added", "id": record.ID})
}

func (h *RecordHandler) GetRecords(c *gin.Context) {
	records, err := h.service.GetByPatient(c.Request.Context(), c.Param("patient_id"))
	if err != nil {
		middlewares.HttpError(c, "Failed to get records", 500, err)
		return
	}
	c.JSON(200, records)
}
