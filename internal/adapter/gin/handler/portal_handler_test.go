package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"study-portal/internal/adapter/gin/view"
	"study-portal/internal/usecase/portal"
	pkgerrors "study-portal/pkg/errors"
)

// MockPortalUsecase is a mock implementation of portal.Usecase
type MockPortalUsecase struct {
	mock.Mock
}

func (m *MockPortalUsecase) Home(ctx context.Context) (*portal.HomeResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portal.HomeResponse), args.Error(1)
}

func (m *MockPortalUsecase) CreateTodo(ctx context.Context, req portal.CreateTodoRequest) (*portal.CreateTodoResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portal.CreateTodoResponse), args.Error(1)
}

func (m *MockPortalUsecase) ListCourses(ctx context.Context) (*portal.ListCoursesResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portal.ListCoursesResponse), args.Error(1)
}

func (m *MockPortalUsecase) ListUsers(ctx context.Context) (*portal.ListUsersResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portal.ListUsersResponse), args.Error(1)
}

func setupTest(t *testing.T) (*gin.Engine, *MockPortalUsecase) {
	gin.SetMode(gin.TestMode)
	mockUsecase := new(MockPortalUsecase)
	h := NewPortalHandler(mockUsecase, zaptest.NewLogger(t))

	tmpl, err := view.Templates()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.GET("/", h.Home)
	r.POST("/todo", h.CreateTodo)
	r.GET("/courses", h.Courses)
	r.GET("/users", h.Users)
	r.GET("/tutor", h.Tutor)
	r.NoRoute(h.NotFound)

	return r, mockUsecase
}

func postTodo(r http.Handler, title string, ajax bool) *httptest.ResponseRecorder {
	form := url.Values{"title": {title}}
	req := httptest.NewRequest(http.MethodPost, "/todo", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if ajax {
		req.Header.Set("X-Requested-With", "XMLHttpRequest")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHome(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, mockUsecase := setupTest(t)

		mockUsecase.On("Home", mock.Anything).Return(&portal.HomeResponse{
			Users: 12,
			Todos: 34,
			Items: []portal.Todo{{ID: 2, Title: "newest"}, {ID: 1, Title: "oldest"}},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, ">12<")
		assert.Contains(t, body, ">34<")
		assert.Less(t, strings.Index(body, "newest"), strings.Index(body, "oldest"))
	})

	t.Run("Database Error", func(t *testing.T) {
		r, mockUsecase := setupTest(t)

		mockUsecase.On("Home", mock.Anything).
			Return(nil, pkgerrors.NewInternalError("failed to count users and todos", errors.New("db down")))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal Server Error")
		assert.NotContains(t, w.Body.String(), "db down")
	})
}

func TestCreateTodo(t *testing.T) {
	t.Run("Creates And Redirects", func(t *testing.T) {
		r, mockUsecase := setupTest(t)

		mockUsecase.On("CreateTodo", mock.Anything, portal.CreateTodoRequest{Title: "  revise notes "}).
			Return(&portal.CreateTodoResponse{Created: true, Todo: &portal.Todo{ID: 5, Title: "revise notes"}}, nil).Once()

		w := postTodo(r, "  revise notes ", false)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Blank Title Still Redirects", func(t *testing.T) {
		r, mockUsecase := setupTest(t)

		mockUsecase.On("CreateTodo", mock.Anything, portal.CreateTodoRequest{Title: "   "}).
			Return(&portal.CreateTodoResponse{}, nil)

		w := postTodo(r, "   ", false)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("Blank AJAX Title Redirects", func(t *testing.T) {
		r, mockUsecase := setupTest(t)

		mockUsecase.On("CreateTodo", mock.Anything, mock.Anything).Return(&portal.CreateTodoResponse{}, nil)

		w := postTodo(r, "", true)

		assert.Equal(t, http.StatusFound, w.Code)
	})

	t.Run("AJAX Returns JSON", func(t *testing.T) {
		r, mockUsecase := setupTest(t)

		mockUsecase.On("CreateTodo", mock.Anything, portal.CreateTodoRequest{Title: "revise notes"}).
			Return(&portal.CreateTodoResponse{Created: true, Todo: &portal.Todo{ID: 5, Title: "revise notes"}}, nil)

		w := postTodo(r, "revise notes", true)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp portal.Todo
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(5), resp.ID)
		assert.Equal(t, "revise notes", resp.Title)
	})

	t.Run("Usecase Error", func(t *testing.T) {
		r, mockUsecase := setupTest(t)

		mockUsecase.On("CreateTodo", mock.Anything, mock.Anything).
			Return(nil, pkgerrors.NewInternalError("failed to create todo", errors.New("insert failed")))

		w := postTodo(r, "x", false)
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		w = postTodo(r, "x", true)
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "internal_error", resp.Error)
	})
}

func TestCourses(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, mockUsecase := setupTest(t)

		mockUsecase.On("ListCourses", mock.Anything).Return(&portal.ListCoursesResponse{
			Courses: []portal.Course{
				{ID: 2, Code: "CS201", Title: "Data Structures"},
				{ID: 1, Code: "CS101", Title: "Intro to Programming"},
			},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "CS201")
		assert.Contains(t, body, "Intro to Programming")
		assert.Less(t, strings.Index(body, "CS201"), strings.Index(body, "CS101"))
	})

	t.Run("Empty", func(t *testing.T) {
		r, mockUsecase := setupTest(t)

		mockUsecase.On("ListCourses", mock.Anything).Return(&portal.ListCoursesResponse{}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "No courses yet.")
	})

	t.Run("Database Error", func(t *testing.T) {
		r, mockUsecase := setupTest(t)

		mockUsecase.On("ListCourses", mock.Anything).Return(nil, errors.New("db down"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestUsers(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, mockUsecase := setupTest(t)

		mockUsecase.On("ListUsers", mock.Anything).Return(&portal.ListUsersResponse{
			Users: []portal.User{
				{ID: 2, Name: "Linus", Email: "linus@example.com"},
				{ID: 1, Name: "Ada", Email: "ada@example.com"},
			},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "linus@example.com")
		assert.Less(t, strings.Index(body, "Linus"), strings.Index(body, "Ada"))
	})

	t.Run("Database Error", func(t *testing.T) {
		r, mockUsecase := setupTest(t)

		mockUsecase.On("ListUsers", mock.Anything).Return(nil, errors.New("db down"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestTutor_NoDatabaseInteraction(t *testing.T) {
	r, mockUsecase := setupTest(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tutor", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Tutor")
	assert.Empty(t, mockUsecase.Calls)
}

func TestNotFound(t *testing.T) {
	t.Run("Page", func(t *testing.T) {
		r, mockUsecase := setupTest(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), fmt.Sprint(http.StatusNotFound))
		assert.Contains(t, w.Body.String(), pkgerrors.ErrNotFound.Error())
		assert.Empty(t, mockUsecase.Calls)
	})

	t.Run("AJAX", func(t *testing.T) {
		r, _ := setupTest(t)

		req := httptest.NewRequest(http.MethodGet, "/nope", nil)
		req.Header.Set("Accept", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "not_found", resp.Error)
		assert.Equal(t, pkgerrors.ErrNotFound.Error(), resp.Message)
	})
}

func TestHandleError_WrappedNotFound(t *testing.T) {
	r, mockUsecase := setupTest(t)

	mockUsecase.On("ListCourses", mock.Anything).Return(nil, fmt.Errorf("list courses: %w", pkgerrors.ErrNotFound))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
