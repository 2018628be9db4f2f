package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"vita/internal/config"
	"vita/internal/database"
	"vita/internal/handlers"
	"vita/internal/logger"
	"vita/internal/mailer"
	"vita/internal/middleware"
	"vita/internal/services"
	"vita/internal/token"
	"vita/internal/validator"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "vita/internal/docs" // Import swagger docs
)

// @title           Vita API
// @version         1.0
// @description     Vita is a personal productivity dashboard backend covering tasks, pomodoro tasks, notes and calendar events for registered users.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create the database on a fresh server before connecting to it.
	if err := database.EnsureDatabase(cfg); err != nil {
		return fmt.Errorf("failed to ensure database exists: %w", err)
	}

	dbManager, err := database.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	// Initialize services
	db := dbManager.DB()
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.JWTExpirationDur)
	mail := mailer.NewSMTPMailer(cfg)
	userService := services.NewUserService(db, cfg.MinPasswordLen)
	resetService := services.NewPasswordResetService(db, mail, cfg.ResetTokenTTL, cfg.FrontendURL, cfg.MinPasswordLen)
	taskService := services.NewTaskService(db)
	noteService := services.NewNoteService(db)
	eventService := services.NewCalendarEventService(db)
	pomodoroService := services.NewPomodoroTaskService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, resetService, issuer)
	taskHandler := handlers.NewTaskHandler(taskService)
	noteHandler := handlers.NewNoteHandler(noteService)
	eventHandler := handlers.NewCalendarEventHandler(eventService)
	pomodoroHandler := handlers.NewPomodoroTaskHandler(pomodoroService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", handlers.Index)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	auth := router.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/reset-password", authHandler.ResetPassword)

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.NewAuthMiddleware(issuer, userService))

	// Account routes
	account := protected.Group("/auth")
	account.GET("/profile", authHandler.GetProfile)
	account.PUT("/profile", authHandler.UpdateProfile)
	account.PUT("/password", authHandler.UpdatePassword)
	account.DELETE("/account", authHandler.DeleteAccount)

	// Task routes
	tasks := protected.Group("/tasks")
	tasks.GET("", taskHandler.GetUserTasks)
	tasks.POST("", taskHandler.CreateTask)
	tasks.GET("/:id", taskHandler.GetTaskByID)
	tasks.PUT("/:id", taskHandler.UpdateTask)
	tasks.PATCH("/:id/toggle", taskHandler.ToggleTask)
	tasks.DELETE("/:id", taskHandler.DeleteTask)

	// Note routes
	notes := protected.Group("/notes")
	notes.GET("", noteHandler.GetUserNotes)
	notes.POST("", noteHandler.CreateNote)
	notes.GET("/:id", noteHandler.GetNoteByID)
	notes.PUT("/:id", noteHandler.UpdateNote)
	notes.DELETE("/:id", noteHandler.DeleteNote)

	// Calendar event routes
	events := protected.Group("/calendarEvents")
	events.GET("", eventHandler.GetUserEvents)
	events.POST("", eventHandler.CreateEvent)
	events.GET("/:id", eventHandler.GetEventByID)
	events.PUT("/:id", eventHandler.UpdateEvent)
	events.DELETE("/:id", eventHandler.DeleteEvent)

	// Pomodoro task routes
	pomodoro := protected.Group("/pomodoroTasks")
	pomodoro.GET("", pomodoroHandler.GetUserTasks)
	pomodoro.GET("/completed", pomodoroHandler.GetCompletedTasks)
	pomodoro.POST("", pomodoroHandler.CreateTask)
	pomodoro.PUT("/:id", pomodoroHandler.UpdateTask)
	pomodoro.DELETE("/:id", pomodoroHandler.DeleteTask)

	log.Infof("Starting Vita backend server on port %s", cfg.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
	return router.Run(":" + cfg.Port)
}
