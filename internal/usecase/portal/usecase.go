package portal

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"study-portal/internal/domain/course"
	"study-portal/internal/domain/todo"
	"study-portal/internal/domain/user"
	"study-portal/pkg/logger"
)

// Repository defines the data access the portal needs.
type Repository interface {
	Counts(ctx context.Context) (users int64, todos int64, err error)
	RecentTodos(ctx context.Context, limit int) ([]todo.Todo, error)
	CreateTodo(ctx context.Context, t *todo.Todo) (int64, error)
	ListCourses(ctx context.Context) ([]course.Course, error)
	ListUsers(ctx context.Context) ([]user.User, error)
}

// Service implements Usecase on top of a Repository.
type Service struct {
	repo Repository
	log  *zap.Logger
}

// New creates a new portal Service.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, log: log}
}

// Home loads the user/todo counts and the most recent todos.
// Both queries run concurrently; either failing fails the whole call.
func (s *Service) Home(ctx context.Context) (*HomeResponse, error) {
	var (
		resp  HomeResponse
		items []todo.Todo
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resp.Users, resp.Todos, err = s.repo.Counts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.repo.RecentTodos(gctx, todo.RecentLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.WithContext(ctx, s.log).Error("failed to load home page", zap.Error(err))
		return nil, err
	}

	// never show more than RecentLimit items
	if len(items) > todo.RecentLimit {
		items = items[:todo.RecentLimit]
	}

	resp.Items = make([]Todo, len(items))
	for i, t := range items {
		resp.Items[i] = Todo{ID: t.ID, Title: t.Title}
	}
	return &resp, nil
}

// CreateTodo inserts a todo when the trimmed title is non-empty.
// A blank title is not an error: nothing is written and Created is false.
func (s *Service) CreateTodo(ctx context.Context, in CreateTodoRequest) (*CreateTodoResponse, error) {
	log := logger.WithContext(ctx, s.log)

	title := strings.TrimSpace(in.Title)
	if title == "" {
		log.Debug("ignoring blank todo submission")
		return &CreateTodoResponse{}, nil
	}

	id, err := s.repo.CreateTodo(ctx, &todo.Todo{Title: title})
	if err != nil {
		log.Error("failed to create todo", zap.Error(err))
		return nil, err
	}

	log.Info("todo created", zap.Int64("id", id))
	return &CreateTodoResponse{
		Created: true,
		Todo:    &Todo{ID: id, Title: title},
	}, nil
}

// ListCourses returns every course, most recent first.
func (s *Service) ListCourses(ctx context.Context) (*ListCoursesResponse, error) {
	courses, err := s.repo.ListCourses(ctx)
	if err != nil {
		logger.WithContext(ctx, s.log).Error("failed to list courses", zap.Error(err))
		return nil, err
	}

	out := make([]Course, len(courses))
	for i, c := range courses {
		out[i] = Course{ID: c.ID, Code: c.Code, Title: c.Title}
	}
	return &ListCoursesResponse{Courses: out}, nil
}

// ListUsers returns every user, most recent first.
func (s *Service) ListUsers(ctx context.Context) (*ListUsersResponse, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		logger.WithContext(ctx, s.log).Error("failed to list users", zap.Error(err))
		return nil, err
	}

	out := make([]User, len(users))
	for i, u := range users {
		out[i] = User{ID: u.ID, Name: u.Name, Email: u.Email}
	}
	return &ListUsersResponse{Users: out}, nil
}
