package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/fieldserve/technician-admin-api/config"
	"github.com/fieldserve/technician-admin-api/controllers"
	"github.com/fieldserve/technician-admin-api/middleware"
	"github.com/fieldserve/technician-admin-api/models"
	"github.com/fieldserve/technician-admin-api/services"
)

func main() {
	// Basic logging
	log.Println("Starting Technician Admin API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(&models.Technician{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Screenshot storage is optional; without a bucket the automation
	// launcher simply skips artifact persistence
	if cfg.AWSS3Bucket != "" {
		s3Service, err := services.InitS3Service()
		if err != nil {
			log.Fatalf("Failed to initialize S3 service: %v", err)
		}
		services.InitArtifactService(s3Service)
		log.Printf("Session artifact storage enabled (bucket %s)", cfg.AWSS3Bucket)
	} else {
		log.Println("AWS_S3_BUCKET not set, session artifact storage disabled")
	}

	// Browser automation launcher
	services.SetAutomationService(services.NewRodAutomationService(
		cfg.AutomationURL,
		cfg.SessionDataDir,
		cfg.AutomationHeadless,
		cfg.MaxSessions,
		time.Duration(cfg.AutomationTimeout)*time.Second,
	))

	// Initialize Gin router
	router := setupRouter()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter builds the Gin engine with middleware and all routes
func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(cors.Default())

	// Technician listing and CRUD
	router.GET("/", controllers.ListTechnicians)
	router.GET("/technicians/new", controllers.NewTechnicianForm)
	router.POST("/technicians/new", controllers.CreateTechnician)
	router.GET("/technicians/:id", controllers.GetTechnicianProfile)
	router.GET("/technicians/:id/edit", controllers.EditTechnicianForm)
	router.POST("/technicians/:id/edit", controllers.UpdateTechnician)

	// Browser automation
	router.POST("/mservice/", controllers.LaunchAutomation)

	// Operational endpoints
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/database/status", databaseStatus)
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Technician Admin API is running",
	})
}

// databaseStatus checks database connectivity
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	// Get the underlying SQL database to check connection
	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	// Ping the database to verify connection
	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	var count int64
	if err := db.Model(&models.Technician{}).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query technicians table",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Database connected",
		"technicians": count,
	})
}
