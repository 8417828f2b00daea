package portal

import "context"

// Usecase defines the operations behind the portal pages.
type Usecase interface {
	Home(ctx context.Context) (*HomeResponse, error)
	CreateTodo(ctx context.Context, in CreateTodoRequest) (*CreateTodoResponse, error)
	ListCourses(ctx context.Context) (*ListCoursesResponse, error)
	ListUsers(ctx context.Context) (*ListUsersResponse, error)
}
