package course

// Course represents a course offered by the portal. Courses are read-only here.
type Course struct {
	ID    int64
	Code  string
	Title string
}
