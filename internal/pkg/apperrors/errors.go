package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
)

// User errors
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrUsernameAlreadyExists = errors.New("username already taken")
)

// Course errors
var (
	ErrCourseNotFound = errors.New("course not found")
	// ErrInvalidTeacher is returned when a course references a user that does
	// not exist or whose role is neither "teacher" nor "admin".
	ErrInvalidTeacher = errors.New("invalid teacher ID or teacher role")
)
