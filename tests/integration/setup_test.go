package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"vita/internal/config"
	"vita/internal/handlers"
	"vita/internal/logger"
	"vita/internal/middleware"
	"vita/internal/models"
	"vita/internal/services"
	"vita/internal/token"
	"vita/internal/validator"
)

const minPasswordLen = 6

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
	Mail   *captureMailer
}

// captureMailer records outbound mail instead of sending it.
type captureMailer struct {
	Sent []capturedMail
	Fail error
}

type capturedMail struct {
	To      string
	Subject string
	Body    string
}

func (m *captureMailer) Send(to, subject, htmlBody string) error {
	if m.Fail != nil {
		return m.Fail
	}
	m.Sent = append(m.Sent, capturedMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:vitaintdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Task{},
		&models.Note{},
		&models.CalendarEvent{},
		&models.PomodoroTask{},
		&models.PasswordReset{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)
	mail := &captureMailer{}
	issuer := token.NewIssuer("integration-secret", time.Hour)
	cfg := &config.Config{FrontendURL: "http://localhost:3000", MinPasswordLen: minPasswordLen}

	// Services
	userService := services.NewUserService(db, cfg.MinPasswordLen)
	resetService := services.NewPasswordResetService(db, mail, time.Hour, cfg.FrontendURL, cfg.MinPasswordLen)
	taskService := services.NewTaskService(db)
	noteService := services.NewNoteService(db)
	eventService := services.NewCalendarEventService(db)
	pomodoroService := services.NewPomodoroTaskService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, resetService, issuer)
	taskHandler := handlers.NewTaskHandler(taskService)
	noteHandler := handlers.NewNoteHandler(noteService)
	eventHandler := handlers.NewCalendarEventHandler(eventService)
	pomodoroHandler := handlers.NewPomodoroTaskHandler(pomodoroService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	router.GET("/", handlers.Index)

	auth := router.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/reset-password", authHandler.ResetPassword)

	protected := router.Group("/")
	protected.Use(middleware.NewAuthMiddleware(issuer, userService))

	account := protected.Group("/auth")
	account.GET("/profile", authHandler.GetProfile)
	account.PUT("/profile", authHandler.UpdateProfile)
	account.PUT("/password", authHandler.UpdatePassword)
	account.DELETE("/account", authHandler.DeleteAccount)

	tasks := protected.Group("/tasks")
	tasks.GET("", taskHandler.GetUserTasks)
	tasks.POST("", taskHandler.CreateTask)
	tasks.GET("/:id", taskHandler.GetTaskByID)
	tasks.PUT("/:id", taskHandler.UpdateTask)
	tasks.PATCH("/:id/toggle", taskHandler.ToggleTask)
	tasks.DELETE("/:id", taskHandler.DeleteTask)

	notes := protected.Group("/notes")
	notes.GET("", noteHandler.GetUserNotes)
	notes.POST("", noteHandler.CreateNote)
	notes.GET("/:id", noteHandler.GetNoteByID)
	notes.PUT("/:id", noteHandler.UpdateNote)
	notes.DELETE("/:id", noteHandler.DeleteNote)

	events := protected.Group("/calendarEvents")
	events.GET("", eventHandler.GetUserEvents)
	events.POST("", eventHandler.CreateEvent)
	events.GET("/:id", eventHandler.GetEventByID)
	events.PUT("/:id", eventHandler.UpdateEvent)
	events.DELETE("/:id", eventHandler.DeleteEvent)

	pomodoro := protected.Group("/pomodoroTasks")
	pomodoro.GET("", pomodoroHandler.GetUserTasks)
	pomodoro.GET("/completed", pomodoroHandler.GetCompletedTasks)
	pomodoro.POST("", pomodoroHandler.CreateTask)
	pomodoro.PUT("/:id", pomodoroHandler.UpdateTask)
	pomodoro.DELETE("/:id", pomodoroHandler.DeleteTask)

	return &testApp{DB: db, Router: router, Mail: mail}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// errorCode extracts the error code from an error response body.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseJSON(t, rec)["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got: %s", rec.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}

// registerUser registers a new user and returns the token and user ID.
func (app *testApp) registerUser(t *testing.T, displayName, email, password string) (token string, userID float64) {
	t.Helper()
	body := fmt.Sprintf(`{"displayName":%q,"email":%q,"password":%q}`, displayName, email, password)
	rec := app.request("POST", "/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), user["id"].(float64)
}

// loginUser logs in and returns the token.
func (app *testApp) loginUser(t *testing.T, email, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["token"].(string)
}
