package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/foodstall/internal/metrics"
	"github.com/polkiloo/foodstall/internal/server/http/handlers"
	"github.com/polkiloo/foodstall/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StallFacade, m *metrics.Metrics, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	if m != nil {
		engine.Use(middleware.RequestMetrics(m))
	}
	engine.Use(middleware.DecompressRequest(middleware.MaxRequestBody))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	menuHandler := handlers.NewMenuHandler(facade)
	basketHandler := handlers.NewBasketHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	staffHandler := handlers.NewStaffHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/healthz", healthHandler.Check)
	if m != nil {
		engine.GET("/metrics", gin.WrapH(m.Handler()))
	}

	api := engine.Group("/api")
	api.GET("/menu", menuHandler.Get)

	customer := api.Group("")
	customer.Use(middleware.SessionRequired(facade, logger))
	customer.GET("/basket", basketHandler.Get)
	customer.DELETE("/basket", basketHandler.Clear)
	customer.POST("/basket/items", basketHandler.Add)
	customer.DELETE("/basket/items/:position", basketHandler.Remove)
	customer.POST("/orders", orderHandler.Submit)
	customer.GET("/session/order", orderHandler.Current)

	api.GET("/orders/:id", orderHandler.Get)

	staff := api.Group("/staff")
	staff.POST("/login", staffHandler.Login)

	staffAuth := staff.Group("")
	staffAuth.Use(middleware.StaffRequired(facade))
	staffAuth.GET("/orders", staffHandler.Orders)
	staffAuth.GET("/orders/:id", staffHandler.Order)
	staffAuth.GET("/payments", staffHandler.Payments)
	staffAuth.PATCH("/orders/:id/status", staffHandler.UpdateStatus)
	staffAuth.PATCH("/orders/:id/payment", staffHandler.RecordPayment)

	return engine
}
