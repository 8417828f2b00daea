package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"study-portal/internal/usecase/portal"
	pkgerrors "study-portal/pkg/errors"
	"study-portal/pkg/logger"
)

// PortalHandler handles the HTML pages and the to-do form.
type PortalHandler struct {
	uc  portal.Usecase
	log *zap.Logger
}

// NewPortalHandler creates a new PortalHandler instance
func NewPortalHandler(uc portal.Usecase, log *zap.Logger) *PortalHandler {
	return &PortalHandler{
		uc:  uc,
		log: log,
	}
}

// ErrorResponse represents an error response for AJAX callers
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Home handles GET /
func (h *PortalHandler) Home(c *gin.Context) {
	resp, err := h.uc.Home(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"title": "Home",
		"users": resp.Users,
		"todos": resp.Todos,
		"items": resp.Items,
	})
}

// CreateTodo handles POST /todo
//
// Form submissions are always redirected to /. AJAX submissions of a
// non-blank title get the created todo back as JSON instead.
func (h *PortalHandler) CreateTodo(c *gin.Context) {
	resp, err := h.uc.CreateTodo(c.Request.Context(), portal.CreateTodoRequest{
		Title: c.PostForm("title"),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	if resp.Created && isAJAX(c) {
		c.JSON(http.StatusCreated, resp.Todo)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Courses handles GET /courses
func (h *PortalHandler) Courses(c *gin.Context) {
	resp, err := h.uc.ListCourses(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.HTML(http.StatusOK, "courses.html", gin.H{
		"title":   "Courses",
		"courses": resp.Courses,
	})
}

// Users handles GET /users
func (h *PortalHandler) Users(c *gin.Context) {
	resp, err := h.uc.ListUsers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.HTML(http.StatusOK, "users.html", gin.H{
		"title": "Users",
		"users": resp.Users,
	})
}

// Tutor handles GET /tutor
func (h *PortalHandler) Tutor(c *gin.Context) {
	c.HTML(http.StatusOK, "tutor.html", gin.H{"title": "Tutor"})
}

// NotFound renders the 404 page for unknown routes.
func (h *PortalHandler) NotFound(c *gin.Context) {
	h.handleError(c, pkgerrors.ErrNotFound)
}

// handleError converts usecase errors to HTTP responses
func (h *PortalHandler) handleError(c *gin.Context, err error) {
	status := pkgerrors.StatusCode(err)

	log := logger.WithContext(c.Request.Context(), h.log)

	switch status {
	case http.StatusNotFound:
		log.Debug("not found",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
		h.renderError(c, status, "not_found", err.Error())
	default:
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Error(err),
		)
		h.renderError(c, http.StatusInternalServerError, "internal_error", "Internal Server Error")
	}
}

func (h *PortalHandler) renderError(c *gin.Context, status int, code, message string) {
	if isAJAX(c) {
		c.JSON(status, ErrorResponse{Error: code, Message: message})
		return
	}
	c.HTML(status, "error.html", gin.H{
		"title":   http.StatusText(status),
		"status":  status,
		"message": message,
	})
}

// isAJAX reports whether the caller expects JSON rather than a page.
func isAJAX(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest" ||
		strings.Contains(c.GetHeader("Accept"), "json")
}
