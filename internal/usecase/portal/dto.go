package portal

// HomeResponse carries the aggregate counts and the most recent todos.
type HomeResponse struct {
	Users int64
	Todos int64
	Items []Todo
}

// CreateTodoRequest represents a to-do submission. Title is trimmed before use.
type CreateTodoRequest struct {
	Title string
}

// CreateTodoResponse reports whether a row was inserted.
// Todo is nil when the submitted title was blank.
type CreateTodoResponse struct {
	Created bool
	Todo    *Todo
}

// ListCoursesResponse represents the course listing, most recent first.
type ListCoursesResponse struct {
	Courses []Course
}

// ListUsersResponse represents the user listing, most recent first.
type ListUsersResponse struct {
	Users []User
}

type Todo struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type Course struct {
	ID    int64
	Code  string
	Title string
}

type User struct {
	ID    int64
	Name  string
	Email string
}
