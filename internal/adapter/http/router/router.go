package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ressKim-io/NewsGuard/internal/adapter/http/handler"
	"github.com/ressKim-io/NewsGuard/internal/adapter/http/middleware"
	"github.com/ressKim-io/NewsGuard/internal/domain/service"
	"github.com/ressKim-io/NewsGuard/internal/usecase"
)

// Dependencies holds what the router wires into its handlers
type Dependencies struct {
	Predictor service.Predictor
	Pinger    handler.Pinger
	Recorder  usecase.OutcomeRecorder
	Logger    *zap.Logger
	Title     string
}

// Setup creates and configures the Gin router
func Setup(deps Dependencies) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(middleware.Recovery(deps.Logger))
	router.Use(middleware.CORS())

	router.SetHTMLTemplate(handler.Templates())

	// Health endpoints
	healthHandler := handler.NewHealthHandler(deps.Pinger)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	formHandler := handler.NewFormHandler(deps.Predictor, deps.Recorder, deps.Logger, deps.Title)

	// Form page
	router.GET("/", formHandler.ShowForm)
	router.POST("/", formHandler.SubmitForm)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/submit", formHandler.SubmitJSON)
	}

	return router
}
