package main

import (
	"log"
	"net/http"
	"os"

	controller "github.com/araad04/eqms/controller"
	"github.com/araad04/eqms/initializers"
	middleware "github.com/araad04/eqms/middleware"
	service "github.com/araad04/eqms/service"

	"github.com/gin-gonic/gin"
)

func init() {
	if err := initializers.LoadEnv(); err != nil {
		log.Printf("[WARN] No .env file loaded: %s", err)
	}
	if err := initializers.ConnectDB(); err != nil {
		log.Fatalf("[CRITICAL] Failed to initialize database connection: %s", err)
	}
	if err := initializers.Migrate(); err != nil {
		log.Fatalf("[CRITICAL] Failed to run database migrations: %s", err)
	}
}

func main() {
	reviewService, err := service.NewReviewService(initializers.DB)
	if err != nil {
		log.Fatalf("Failed to initialize review service: %s", err)
	}

	reportService, err := service.NewReportService(initializers.DB, reviewService, service.LogNotifier{})
	if err != nil {
		log.Fatalf("Failed to initialize report service: %s", err)
	}

	supplierService := service.NewSupplierService(initializers.DB)

	reviewController := controller.NewReviewController(reviewService)
	reportController := controller.NewReportController(reportService)
	supplierController := controller.NewSupplierController(supplierService)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	// Global rate limiter for most routes
	router.Use(middleware.GlobalRateLimiter.Limit())

	// Healthcheck endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Review endpoints
	router.POST("/reviews",
		middleware.StrictRateLimiter.Limit(),
		reviewController.CreateReview)
	router.GET("/reviews", reviewController.GetAllReviews)
	router.GET("/reviews/:id", reviewController.GetReview)
	router.GET("/search", reviewController.SearchReviews)

	router.POST("/reviews/:id/inputs",
		middleware.StrictRateLimiter.Limit(),
		reviewController.AddReviewInput)
	router.POST("/reviews/:id/actions",
		middleware.StrictRateLimiter.Limit(),
		reviewController.AddActionItem)
	router.PUT("/action-items/:id/complete",
		middleware.StrictRateLimiter.Limit(),
		reviewController.CompleteActionItem)

	// Report generation endpoints with strict rate limiting
	router.GET("/reviews/:id/reports/presentation",
		middleware.StrictRateLimiter.Limit(),
		reportController.GeneratePresentation)
	router.GET("/reviews/:id/reports/minutes",
		middleware.StrictRateLimiter.Limit(),
		reportController.GenerateMinutes)
	router.GET("/reviews/:id/reports/attendance",
		middleware.StrictRateLimiter.Limit(),
		reportController.GenerateAttendanceSheet)
	router.GET("/reviews/:id/reports", reportController.GetReports)

	// Supplier endpoints
	router.POST("/suppliers",
		middleware.StrictRateLimiter.Limit(),
		supplierController.CreateSupplier)
	router.GET("/suppliers", supplierController.GetAllSuppliers)
	router.PUT("/suppliers/:id",
		middleware.StrictRateLimiter.Limit(),
		supplierController.UpdateSupplier)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	router.Run(":" + port)
}
