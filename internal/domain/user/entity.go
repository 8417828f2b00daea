package user

// User represents a user entity in the system.
type User struct {
	ID    int64  // ID is the unique identifier for the user, higher is more recent
	Name  string // Name is the full name of the user
	Email string // Email is the email address of the user
}
