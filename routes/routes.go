package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/haniyashafiq/PRO-CRM/cache"
	"github.com/haniyashafiq/PRO-CRM/config"
	"github.com/haniyashafiq/PRO-CRM/controllers"
	"github.com/haniyashafiq/PRO-CRM/handlers"
	"github.com/haniyashafiq/PRO-CRM/middlewares"
	"github.com/haniyashafiq/PRO-CRM/repositories"
	"github.com/haniyashafiq/PRO-CRM/services"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	// Apply gateway bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://procrm.example.com"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories, services, and handlers
	recordRepo := repositories.NewRecordRepository(cache)
	canteenRepo := repositories.NewCanteenRepository(cache)
	expenseRepo := repositories.NewExpenseRepository(cache)
	callMeetingRepo := repositories.NewCallMeetingRepository(cache)
	ledgerRepo := repositories.NewLedgerRepository()

	patientRepo := repositories.NewPatientRepository(cache, recordRepo, canteenRepo)
	userRepo := repositories.NewUserRepository(db, cache)

	financeService := services.NewFinanceService(ledgerRepo)
	patientService := services.NewPatientService(patientRepo)
	recordService := services.NewRecordService(recordRepo, patientRepo)
	canteenService := services.NewCanteenService(canteenRepo, patientRepo)
	expenseService := services.NewExpenseService(expenseRepo)
	callMeetingService := services.NewCallMeetingService(callMeetingRepo)
	exportService := services.NewExportService(patientRepo)
	userService := services.NewUserService(userRepo)

	apiHandlers := &controllers.APIHandlers{
		Patient:     handlers.NewPatientHandler(patientService),
		Record:      handlers.NewRecordHandler(recordService),
		Canteen:     handlers.NewCanteenHandler(canteenService, financeService),
		Expense:     handlers.NewExpenseHandler(expenseService, financeService),
		Dashboard:   handlers.NewDashboardHandler(financeService),
		CallMeeting: handlers.NewCallMeetingHandler(callMeetingService),
		Export:      handlers.NewExportHandler(exportService),
	}
	controllers.SetupAPIRoutes(router, apiHandlers)

	authController := controllers.NewAuthController(handlers.NewAuthHandler(userService))
	authController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	return router
}
