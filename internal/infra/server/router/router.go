// Package router sets up the HTTP routing for the application.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/wallet/internal/application/adapter"
	"github.com/finance-tracker/wallet/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/wallet/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	transactionController *controller.TransactionController
	dashboardController   *controller.DashboardController
	categoryController    *controller.CategoryController
	currencyController    *controller.CurrencyController
	rateLimiter           *middleware.RateLimiter
	metricsRecorder       adapter.MetricsRecorder
	metricsHandler        http.Handler
}

// NewRouter creates a new router instance with all dependencies.
// rateLimiter and metricsHandler may be nil to disable rate limiting and /metrics.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	dashboardController *controller.DashboardController,
	categoryController *controller.CategoryController,
	currencyController *controller.CurrencyController,
	rateLimiter *middleware.RateLimiter,
	metricsRecorder adapter.MetricsRecorder,
	metricsHandler http.Handler,
) *Router {
	return &Router{
		healthController:      healthController,
		transactionController: transactionController,
		dashboardController:   dashboardController,
		categoryController:    categoryController,
		currencyController:    currencyController,
		rateLimiter:           rateLimiter,
		metricsRecorder:       metricsRecorder,
		metricsHandler:        metricsHandler,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), middleware.RequestLogger(r.metricsRecorder))

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check and metrics endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)

	if r.metricsHandler != nil {
		r.engine.GET("/metrics", gin.WrapH(r.metricsHandler))
	}
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	if r.rateLimiter != nil {
		v1.Use(r.rateLimiter.Middleware())
	}

	transactions := v1.Group("/transactions")
	{
		transactions.GET("", r.transactionController.List)
		transactions.POST("", r.transactionController.Create)
		transactions.GET("/:id", r.transactionController.Get)
		transactions.PATCH("/:id", r.transactionController.Update)
		transactions.DELETE("/:id", r.transactionController.Delete)
	}

	dashboard := v1.Group("/dashboard")
	{
		dashboard.GET("/summary", r.dashboardController.GetSummary)
	}

	v1.GET("/categories", r.categoryController.List)

	currency := v1.Group("/currency")
	{
		currency.GET("/format", r.currencyController.Format)
		currency.GET("/parse", r.currencyController.Parse)
		currency.GET("/mask", r.currencyController.Mask)
	}
}
