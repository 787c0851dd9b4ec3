package routes

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/fullnessapp/fullness-server/internal/auth"
	"github.com/fullnessapp/fullness-server/internal/config"
	"github.com/fullnessapp/fullness-server/internal/database"
	"github.com/fullnessapp/fullness-server/internal/handlers"
	"github.com/fullnessapp/fullness-server/internal/middleware"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "router").Logger()

// SetupRouter assembles the full route table. The returned cleanup func stops
// the rate limiters and is called on shutdown.
func SetupRouter(q database.Querier, cfg *config.Config) (*gin.Engine, func()) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())
	r.Use(corsMiddleware())

	general := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	loginLimiter := middleware.NewRateLimiter(cfg.LoginRateLimitRequests, cfg.RateLimitWindow)
	r.Use(general.Middleware())

	secret := []byte(cfg.JWTSecret)

	// Authentication. The login limiter runs before any credential check.
	r.POST("/login", loginLimiter.Middleware(), handlers.Login(q, secret))
	r.POST("/register", handlers.Register(q))

	// Users.
	r.GET("/users", handlers.ListUsers(q))
	r.GET("/users/:id", handlers.GetUser(q))
	r.POST("/users", handlers.CreateUser(q))
	r.PUT("/users/:id", handlers.UpdateUser(q))
	r.DELETE("/users/:id", handlers.DeleteUser(q))

	// Table-backed resources.
	handlers.RegisterCRUD(r, "/income-sources", q, database.IncomeSources, "Income source")
	handlers.RegisterCRUD(r, "/incomes", q, database.Incomes, "Income entry")
	handlers.RegisterCRUD(r, "/expense-types", q, database.ExpenseTypes, "Expense type")
	handlers.RegisterCRUD(r, "/expenses", q, database.Expenses, "Expense entry")
	handlers.RegisterCRUD(r, "/savings-goals", q, database.SavingsGoals, "Savings goal")

	// Derived income reads.
	r.GET("/incomes-by-month/:userId", handlers.IncomesByMonth(q))
	r.GET("/incomes-by-date/:userId/:startDate/:endDate", handlers.IncomesByDateRange(q))
	r.GET("/current-income/:userId", handlers.CurrentIncome(q))
	r.GET("/previous-income/:userId", handlers.PreviousIncome(q))

	// Admin.
	r.GET("/admin/dashboard", middleware.RequireRole(secret, auth.RoleAdministrator), handlers.AdminDashboard(q))

	// Static SPA with entry-document fallback for client-side routes.
	r.NoRoute(handlers.SPAFallback(cfg.StaticDir))

	cleanup := func() {
		general.Stop()
		loginLimiter.Stop()
	}
	return r, cleanup
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+middleware.TokenHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
