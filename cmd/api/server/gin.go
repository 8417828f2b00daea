package server

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	ginhandler "study-portal/internal/adapter/gin/handler"
	"study-portal/internal/adapter/gin/middleware"
	ginrouter "study-portal/internal/adapter/gin/router"
)

// SetupGinServer creates and configures the Gin HTML server
func SetupGinServer(
	portalHandler *ginhandler.PortalHandler,
	healthHandler *ginhandler.HealthHandler,
	rateLimiter *middleware.RateLimiter,
	tmpl *template.Template,
	ginAddr string,
	l *zap.Logger,
) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	// Setup Gin router with all middleware and routes
	router := ginrouter.SetupRouter(portalHandler, healthHandler, rateLimiter, tmpl, l)

	l.Info("Gin server configured", zap.String("address", ginAddr))

	return &http.Server{
		Addr:              ginAddr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
