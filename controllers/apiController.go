package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/haniyashafiq/PRO-CRM/handlers"
	"github.com/haniyashafiq/PRO-CRM/middlewares"
	"github.com/haniyashafiq/PRO-CRM/models"
)

// APIHandlers bundles the handlers mounted under /api.
type APIHandlers struct {
	Patient     *handlers.PatientHandler
	Record      *handlers.RecordHandler
	Canteen     *handlers.CanteenHandler
	Expense     *handlers.ExpenseHandler
	Dashboard   *handlers.DashboardHandler
	CallMeeting *handlers.CallMeetingHandler
	Export      *handlers.ExportHandler
}

// SetupAPIRoutes mounts the administration API. Every route requires a valid
// session; route groups narrow further by role.
func SetupAPIRoutes(router *gin.Engine, h *APIHandlers) {
	api := router.Group("/api", middlewares.SessionAuth())

	adminOnly := middlewares.RequireRoles(models.RoleAdmin)
	clinical := middlewares.RequireRoles(models.RoleAdmin, models.RoleDoctor)
	canteenStaff := middlewares.RequireRoles(models.RoleAdmin, models.RoleCanteen)

	// Patient registry
	api.GET("/patients", h.Patient.GetAllPatients)
	api.GET("/patients/:patient_id", h.Patient.GetPatientByID)
	api.POST("/patients", clinical, h.Patient.CreatePatient)
	api.PUT("/patients/:patient_id", clinical, h.Patient.UpdatePatient)
	api.DELETE("/patients/:patient_id", adminOnly, h.Patient.DeletePatient)

	// Clinical record streams
	api.POST("/patients/:patient_id/notes",
		middlewares.RequireRoles(models.RoleAdmin, models.RoleDoctor, models.RolePsychologist),
		h.Record.AddNote)
	api.POST("/patients/:patient_id/session_note",
		middlewares.RequireRoles(models.RoleAdmin, models.RolePsychologist),
		h.Record.AddSessionNote)
	api.POST("/patients/:patient_id/medical_record", clinical, h.Record.AddMedicalRecord)
	api.GET("/patients/:patient_id/records", h.Record.GetRecords)

	// Canteen accounting
	api.POST("/canteen/sales", canteenStaff, h.Canteen.RecordSale)
	api.GET("/canteen/sales", h.Canteen.GetAllSales)
	api.GET("/canteen/sales/breakdown", canteenStaff, h.Canteen.GetBreakdown)

	// Expense ledger
	api.GET("/expenses", h.Expense.GetExpenses)
	api.POST("/expenses", adminOnly, h.Expense.CreateExpense)
	api.DELETE("/expenses/:id", adminOnly, h.Expense.DeleteExpense)
	api.GET("/expenses/summary", adminOnly, h.Expense.GetSummary)

	// Dashboard
	api.GET("/dashboard", h.Dashboard.GetMetrics)
	api.GET("/dashboard/admissions", h.Dashboard.GetAdmissions)

	// Call and meeting tracker
	api.GET("/call_meeting_tracker", h.CallMeeting.GetAllEntries)
	api.POST("/call_meeting_tracker", adminOnly, h.CallMeeting.CreateEntry)
	api.DELETE("/call_meeting_tracker/:id", adminOnly, h.CallMeeting.DeleteEntry)
	api.GET("/call_meeting_tracker/summary/:month/:year", h.CallMeeting.GetMonthSummary)

	// Registry export
	api.POST("/export",
		middlewares.RequireRoles(models.RoleAdmin, models.RoleDoctor, models.RolePsychologist),
		h.Export.Export)
}
