package models

// Course defines the course model based on the 'courses' table.
//
// TeacherID may point at a user that no longer exists: deleting a user does
// not touch the courses that reference it, so the reference is allowed to
// dangle and readers resolve it to a null teacher_username.
type Course struct {
	ID          int64   `json:"id" db:"id" example:"1"`                            // Unique identifier for the course
	Title       string  `json:"title" db:"title" example:"Introduction to Python"` // Title of the course
	Description *string `json:"description,omitempty" db:"description"`            // Optional description
	TeacherID   *int64  `json:"teacher_id,omitempty" db:"teacher_id" example:"2"`  // Reference to the teaching user (nullable)
}
