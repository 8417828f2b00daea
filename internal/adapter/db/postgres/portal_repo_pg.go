package postgres

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"study-portal/internal/domain/course"
	"study-portal/internal/domain/todo"
	"study-portal/internal/domain/user"
	pkgerrors "study-portal/pkg/errors"
)

const countQuery = "SELECT COUNT(*) AS users, (SELECT COUNT(*) FROM todos) AS todos FROM users"

// PortalRepoPG implements the portal Repository interface using GORM.
// Despite the package name it runs on any gorm dialect; sqlite is used for
// local runs and tests.
type PortalRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewPortalRepoPG creates a new instance of PortalRepoPG.
func NewPortalRepoPG(db *gorm.DB, log *zap.Logger) *PortalRepoPG {
	return &PortalRepoPG{db: db, log: log}
}

type countsRow struct {
	Users int64
	Todos int64
}

// Counts returns the number of users and todos in a single query.
func (r *PortalRepoPG) Counts(ctx context.Context) (int64, int64, error) {
	var row countsRow
	if err := r.db.WithContext(ctx).Raw(countQuery).Scan(&row).Error; err != nil {
		r.log.Error("failed to count users and todos", zap.Error(err))
		return 0, 0, pkgerrors.NewInternalError("failed to count users and todos", err)
	}
	return row.Users, row.Todos, nil
}

// RecentTodos returns up to limit todos, most recent first.
func (r *PortalRepoPG) RecentTodos(ctx context.Context, limit int) ([]todo.Todo, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be positive")
	}

	var models []TodoSchema
	if err := r.db.WithContext(ctx).Select("id", "title").Order("id DESC").Limit(limit).Find(&models).Error; err != nil {
		r.log.Error("failed to list recent todos", zap.Error(err), zap.Int("limit", limit))
		return nil, pkgerrors.NewInternalError("failed to list recent todos", err)
	}

	todos := make([]todo.Todo, len(models))
	for i, m := range models {
		todos[i] = todo.Todo{ID: m.ID, Title: m.Title}
	}
	return todos, nil
}

// CreateTodo inserts a new todo and returns its ID.
func (r *PortalRepoPG) CreateTodo(ctx context.Context, t *todo.Todo) (int64, error) {
	if t == nil {
		return 0, errors.New("todo cannot be nil")
	}

	model := TodoSchema{Title: t.Title}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create todo in db", zap.Error(err))
		return 0, pkgerrors.NewInternalError("failed to create todo", err)
	}

	r.log.Info("todo created in db", zap.Int64("id", model.ID))
	return model.ID, nil
}

// ListCourses returns all courses, most recent first.
func (r *PortalRepoPG) ListCourses(ctx context.Context) ([]course.Course, error) {
	var models []CourseSchema
	if err := r.db.WithContext(ctx).Select("id", "code", "title").Order("id DESC").Find(&models).Error; err != nil {
		r.log.Error("failed to list courses", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to list courses", err)
	}

	courses := make([]course.Course, len(models))
	for i, m := range models {
		courses[i] = course.Course{ID: m.ID, Code: m.Code, Title: m.Title}
	}
	return courses, nil
}

// ListUsers returns all users, most recent first.
func (r *PortalRepoPG) ListUsers(ctx context.Context) ([]user.User, error) {
	var models []UserSchema
	if err := r.db.WithContext(ctx).Select("id", "name", "email").Order("id DESC").Find(&models).Error; err != nil {
		r.log.Error("failed to list users", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to list users", err)
	}

	users := make([]user.User, len(models))
	for i, m := range models {
		users[i] = user.User{ID: m.ID, Name: m.Name, Email: m.Email}
	}
	return users, nil
}

// Ping checks that the database is reachable.
func (r *PortalRepoPG) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return pkgerrors.NewInternalError("database unreachable", err)
	}
	return nil
}
