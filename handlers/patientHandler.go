package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/haniyashafiq/PRO-CRM/middlewares"
	"github.com/haniyashafiq/PRO-CRM/models"
	"github.com/haniyashafiq/PRO-CRM/services"
	"gorm.io/gorm"
)

type PatientHandler struct {
	service *services.PatientService
}

func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if patient.Name == "" {
		c.JSON(400, gin.H{"error": "name is required"})
		return
	}
	if err := h.service.Create(c.Request.Context(), &patient); err != nil {
		middlewares.HttpError(c, "Failed to create patient", 500, err)
		return
	}
	c.JSON(201, gin.H{"message": "Success", "id": patient.ID})
}

func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	id := c.Param("patient_id")
	patient, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		middlewares.HttpError(c, "Failed to get patient", 500, err)
		return
	}
	if patient == nil {
		c.JSON(404, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(200, patient)
}

func (h *PatientHandler) GetAllPatients(c *gin.Context) {
	patients, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, "Failed to list patients", 500, err)
		return
	}
	c.JSON(200, patients)
}

// UpdatePatient binds the body as a loose field map so partial updates work
// and so the service can drop fields the caller's role may not touch.
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id := c.Param("patient_id")

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	role, err := middlewares.ExtractUserRoleFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "User role not found in context"})
		return
	}

	if err := h.service.Update(c.Request.Context(), id, role, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "Patient not found"})
			return
		}
		middlewares.HttpError(c, "Failed to update patient", 500, err)
		return
	}
	c.JSON(200, gin.H{"message": "Updated", "id": id})
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id := c.Param("patient_id")
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "Patient not found"})
			return
		}
		middlewares.HttpError(c, "Failed to delete patient", 500, err)
		return
	}
	c.JSON(200, gin.H{"message": "Deleted", "id": id})
}
