package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/haniyashafiq/PRO-CRM/middlewares"
	"github.com/haniyashafiq/PRO-CRM/services"
)

const exportFileName = "patients_export.xlsx"

type ExportHandler struct {
	service *services.ExportService
}

func NewExportHandler(service *services.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// exportPayload accepts either {"fields": "all"} or {"fields": [...]}.
type exportPayload struct {
	Fields interface{} `json:"fields"`
}

func (p exportPayload) fieldList() []string {
	switch v := p.Fields.(type) {
	case string:
		// "all" or any other string means the full column set.
		return nil
	case []interface{}:
		fields := make([]string, 0, len(v))
		for _, item := range v {
			if name, ok := item.(string); ok {
				fields = append(fields, name)
			}
		}
		return fields
	default:
		return nil
	}
}

// Export streams an xlsx workbook of the patient registry. Financial and
// identity cells are blanked unless the caller is an Admin.
func (h *ExportHandler) Export(c *gin.Context) {
	// An empty body means a full export.
	var payload exportPayload
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(400, gin.H{"error": "Invalid request body"})
			return
		}
	}

	role, err := middlewares.ExtractUserRoleFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "User role not found in context"})
		return
	}

	file, err := h.service.BuildWorkbook(c.Request.Context(), role, payload.fieldList())
	if err != nil {
		if errors.Is(err, services.ErrNoPatients) {
			c.JSON(404, gin.H{"error": "No patients found"})
			return
		}
		middlewares.HttpError(c, "Failed to build export", 500, err)
		return
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		middlewares.HttpError(c, "Failed to write export", 500, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+exportFileName)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
