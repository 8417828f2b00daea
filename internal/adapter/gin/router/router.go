package router

import (
	"html/template"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"study-portal/internal/adapter/gin/handler"
	"study-portal/internal/adapter/gin/middleware"
	"study-portal/internal/adapter/gin/view"
	"study-portal/pkg/logger"
)

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(
	portalHandler *handler.PortalHandler,
	healthHandler *handler.HealthHandler,
	rateLimiter *middleware.RateLimiter,
	tmpl *template.Template,
	log *zap.Logger,
) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(logger.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(rateLimiter.Handler())

	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", view.Static())

	router.GET("/health", healthHandler.Check)

	router.GET("/", portalHandler.Home)
	router.POST("/todo", portalHandler.CreateTodo)
	router.GET("/courses", portalHandler.Courses)
	router.GET("/users", portalHandler.Users)
	router.GET("/tutor", portalHandler.Tutor)

	router.NoRoute(portalHandler.NotFound)

	return router
}
