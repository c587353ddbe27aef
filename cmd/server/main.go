package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"gorm.io/gorm"

	"campus-events/internal/config"
	"campus-events/internal/handler"
	"campus-events/internal/middleware"
	"campus-events/internal/model"
	"campus-events/internal/repository"
	"campus-events/internal/service"
	"campus-events/pkg/cache"
	"campus-events/pkg/database"
	"campus-events/pkg/storage"
	"campus-events/pkg/token"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err := migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	if cfg.SeedDemoData {
		if err := seedColleges(db); err != nil {
			log.Fatalf("Failed to seed colleges: %v", err)
		}
	}

	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTTTL)

	var reportCache *cache.ReportCache
	if cfg.RedisAddr != "" {
		rdb, err := cache.Connect(context.Background(), cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Printf("Redis unavailable, report caching disabled: %v", err)
		} else {
			reportCache = cache.NewReportCache(rdb, cfg.ReportCacheTTL)
		}
	}

	var search service.EventSearchService
	if cfg.MeiliHost != "" {
		client := meilisearch.New(cfg.MeiliHost, meilisearch.WithAPIKey(cfg.MeiliAPIKey))
		search = service.NewEventSearchService(client)
	}

	var images storage.ImageStorage
	if imageStorage, err := storage.NewCloudinaryStorage(); err != nil {
		log.Printf("Cloudinary unavailable, poster uploads disabled: %v", err)
	} else {
		images = imageStorage
	}

	userRepo := repository.NewUserRepository(db)
	collegeRepo := repository.NewCollegeRepository(db)
	eventRepo := repository.NewEventRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	reportRepo := repository.NewReportRepository(db)

	authHandler := handler.NewAuthHandler(service.NewAuthService(userRepo, tokens))
	collegeHandler := handler.NewCollegeHandler(service.NewCollegeService(collegeRepo))
	studentHandler := handler.NewStudentHandler(service.NewStudentService(userRepo, collegeRepo))
	eventHandler := handler.NewEventHandler(service.NewEventService(eventRepo, collegeRepo, search, images))
	registrationHandler := handler.NewRegistrationHandler(service.NewRegistrationService(registrationRepo, eventRepo))
	attendanceHandler := handler.NewAttendanceHandler(service.NewAttendanceService(attendanceRepo, registrationRepo))
	feedbackHandler := handler.NewFeedbackHandler(service.NewFeedbackService(feedbackRepo, registrationRepo))
	reportHandler := handler.NewReportHandler(service.NewReportService(reportRepo, reportCache))

	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(corsMiddleware(cfg.AllowedOrigins))
	router.Use(middleware.InvalidateReports(reportCache))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Campus Event Management Platform API",
			"version": "1.0.0",
			"status":  "running",
		})
	})

	auth := router.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.RequireAuth(tokens), authHandler.Me)
	}

	colleges := router.Group("/colleges")
	{
		colleges.POST("", middleware.RequireAuth(tokens), middleware.RequireAdmin(), collegeHandler.Create)
		colleges.GET("", collegeHandler.GetAll)
		colleges.GET("/:id", collegeHandler.GetByID)
	}

	events := router.Group("/events")
	{
		events.POST("", middleware.RequireAuth(tokens), middleware.RequireAdmin(), eventHandler.Create)
		events.GET("", eventHandler.GetAll)
		events.GET("/:id", eventHandler.GetByID)
		events.PUT("/:id", eventHandler.Update)
		events.DELETE("/:id", eventHandler.Delete)
		events.POST("/:id/poster", middleware.RequireAuth(tokens), middleware.RequireAdmin(), eventHandler.UploadPoster)
	}

	students := router.Group("/students")
	{
		students.POST("", studentHandler.Create)
		students.GET("", studentHandler.GetAll)
		students.GET("/:id", studentHandler.GetByID)
		students.GET("/:id/events", studentHandler.GetEvents)
	}

	register := router.Group("/register")
	{
		register.POST("", middleware.RequireAuth(tokens), middleware.RequireStudent(), registrationHandler.Register)
		register.GET("", registrationHandler.GetAll)
		register.GET("/:id", registrationHandler.GetByID)
		register.DELETE("/:id", registrationHandler.Cancel)
	}

	attendance := router.Group("/attendance")
	{
		attendance.POST("", attendanceHandler.Mark)
		attendance.GET("", attendanceHandler.GetAll)
		attendance.GET("/:id", attendanceHandler.GetByID)
		attendance.PUT("/:id", attendanceHandler.Update)
	}

	feedback := router.Group("/feedback")
	{
		feedback.POST("", feedbackHandler.Submit)
		feedback.GET("", feedbackHandler.GetAll)
		feedback.GET("/:id", feedbackHandler.GetByID)
		feedback.PUT("/:id", feedbackHandler.Update)
	}

	reports := router.Group("/reports")
	{
		reports.GET("/event-registrations", reportHandler.Serve(service.ReportEventRegistrations))
		reports.GET("/attendance", reportHandler.Serve(service.ReportAttendance))
		reports.GET("/feedback", reportHandler.Serve(service.ReportFeedback))
		reports.GET("/popular-events", reportHandler.Serve(service.ReportPopularEvents))
		reports.GET("/student-participation", reportHandler.Serve(service.ReportStudentParticipation))
		reports.GET("/top-students", reportHandler.Serve(service.ReportTopStudents))
		reports.GET("/college-stats", reportHandler.Serve(service.ReportCollegeStats))
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Route not found",
			"message": fmt.Sprintf("Cannot %s %s", c.Request.Method, c.Request.URL.Path),
		})
	})

	log.Printf("Server is running on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func corsMiddleware(allowedOrigins string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if allowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = splitOrigins(allowedOrigins)
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	return cors.New(corsConfig)
}

func splitOrigins(origins string) []string {
	var out []string
	for _, origin := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.College{},
		&model.User{},
		&model.Event{},
		&model.Registration{},
		&model.Attendance{},
		&model.Feedback{},
	)
}

// seedColleges inserts the demo colleges on first boot. Existing names
// are left alone so the seed is safe to rerun.
func seedColleges(db *gorm.DB) error {
	names := []string{"MIT", "Stanford", "Harvard", "University of California"}
	for _, name := range names {
		var college model.College
		err := db.Where("name = ?", name).First(&college).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&model.College{Name: name}).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}
