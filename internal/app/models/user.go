package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleTeacher RoleType = "teacher"
	RoleAdmin   RoleType = "admin"
)

// IsValid reports whether the role is one of the known role values.
func (r RoleType) IsValid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// CanTeach reports whether a user with this role may be assigned as a
// course's teacher.
func (r RoleType) CanTeach() bool {
	return r == RoleTeacher || r == RoleAdmin
}

// User defines the user model based on the 'users' table
type User struct {
	ID             int64    `json:"id" db:"id" example:"1"`                          // Unique identifier for the user
	Username       string   `json:"username" db:"username" example:"teacher_alice"`  // Unique username
	Email          string   `json:"email" db:"email" example:"alice@smarteredu.com"` // Unique email address
	HashedPassword string   `json:"-" db:"hashed_password"`                          // Bcrypt hash (excluded from JSON)
	Role           RoleType `json:"role" db:"role" example:"teacher"`                // student, teacher or admin
}
