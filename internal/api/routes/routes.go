package routes

import (
	"maintenance-portal-backend/internal/api/handlers"
	"maintenance-portal-backend/internal/api/middleware"
	"maintenance-portal-backend/internal/auth"
	"maintenance-portal-backend/internal/config"
	"maintenance-portal-backend/internal/database/models"
	"maintenance-portal-backend/internal/repository"
	"maintenance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(db)
	complaintRepo := repository.NewComplaintRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	visitRepo := repository.NewVisitRepository(db)
	sessionRepo := repository.NewWorkSessionRepository(db)
	lookupRepo := repository.NewLookupRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Initialize services
	complaintService := service.NewComplaintService(complaintRepo, assignmentRepo, lookupRepo, validator)
	assignmentService := service.NewAssignmentService(db, assignmentRepo, visitRepo, sessionRepo, complaintRepo, profileRepo, validator)
	visitService := service.NewVisitService(db, visitRepo, assignmentRepo, sessionRepo, lookupRepo, validator)
	reportService := service.NewReportService(reportRepo)
	lookupService := service.NewLookupService(lookupRepo)
	workerService := service.NewWorkerService(profileRepo, assignmentRepo)

	// Initialize auth service and middleware
	authConfig := &auth.AuthConfig{
		JWTSecret:       cfg.JWTSecret,
		TokenTTLMinutes: cfg.JWTExpiryMinutes,
	}
	authService, err := auth.NewAuthService(authConfig, profileRepo)
	if err != nil {
		return nil, err
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	complaintHandler := handlers.NewComplaintHandler(complaintService, assignmentService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService, visitService)
	reportHandler := handlers.NewReportHandler(reportService)
	lookupHandler := handlers.NewLookupHandler(lookupService)
	workerHandler := handlers.NewWorkerHandler(workerService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Auth routes
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	// All remaining endpoints require authentication
	v1.Use(authMiddleware.RequireAuth())

	supervisorOnly := authMiddleware.RequireRole(models.ProfileRoleSupervisor)

	{
		// Complaint routes
		complaints := v1.Group("/complaints")
		{
			complaints.POST("", authMiddleware.RequireRole(models.ProfileRoleTenant), complaintHandler.CreateComplaint)
			complaints.GET("/mine", complaintHandler.GetMyComplaints)
			complaints.GET("", supervisorOnly, complaintHandler.GetAllComplaints)
			complaints.GET("/:id", complaintHandler.GetComplaint)
			complaints.PATCH("/:id", supervisorOnly, complaintHandler.UpdateComplaint)
			complaints.GET("/:id/assignments", supervisorOnly, complaintHandler.GetComplaintTeam)
			complaints.POST("/:id/assign", supervisorOnly, complaintHandler.AssignWorkers)
			complaints.PATCH("/:id/assignments", supervisorOnly, complaintHandler.UpdateAssignments)
		}

		// Assignment routes
		assignments := v1.Group("/assignments")
		{
			assignments.GET("/mine", assignmentHandler.GetMine)
			assignments.PATCH("/:id/status", assignmentHandler.UpdateStatus)
			assignments.GET("/:id/detail", assignmentHandler.GetDetail)
			assignments.PUT("/:id/detail", assignmentHandler.UpdateDetail)
		}

		// Worker directory routes
		workers := v1.Group("/workers", supervisorOnly)
		{
			workers.GET("", workerHandler.ListWorkers)
			workers.GET("/availability", workerHandler.Availability)
		}

		// Report routes
		reports := v1.Group("/reports", supervisorOnly)
		{
			reports.GET("/workers", reportHandler.GetWorkerReport)
			reports.GET("/complaints", reportHandler.GetComplaintReport)
		}

		// Lookup routes
		v1.GET("/stores", lookupHandler.GetStores)
		v1.GET("/materials", lookupHandler.GetMaterials)
		v1.GET("/buildings", lookupHandler.GetBuildings)
		v1.GET("/buildings/:id/rooms", lookupHandler.GetRooms)
		v1.GET("/complaint-types", lookupHandler.GetComplaintTypes)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
