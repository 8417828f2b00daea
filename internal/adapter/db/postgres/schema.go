package postgres

import "gorm.io/gorm"

// UserSchema represents the database schema for the users table.
type UserSchema struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"not null"`
	Email string `gorm:"not null"`
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

// TodoSchema represents the database schema for the todos table.
type TodoSchema struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Title string `gorm:"not null"`
}

// TableName specifies the table name for the TodoSchema model.
func (TodoSchema) TableName() string {
	return "todos"
}

// CourseSchema represents the database schema for the courses table.
type CourseSchema struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Code  string `gorm:"not null"`
	Title string `gorm:"not null"`
}

// TableName specifies the table name for the CourseSchema model.
func (CourseSchema) TableName() string {
	return "courses"
}

// AutoMigrate creates the users, todos and courses tables if they are missing.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&UserSchema{}, &TodoSchema{}, &CourseSchema{})
}
