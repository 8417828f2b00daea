package todo

// RecentLimit is the number of most recent todos shown on the home page.
const RecentLimit = 20

// Todo represents a to-do item.
type Todo struct {
	ID    int64
	Title string
}
