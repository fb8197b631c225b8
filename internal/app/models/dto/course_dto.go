package dto

import "github.com/smarteredu/portal/internal/app/models"

// CourseRequest represents the payload for creating a course or replacing an
// existing one (PUT has full-replace semantics, so the shapes are identical).
type CourseRequest struct {
	Title       string  `json:"title" binding:"required" example:"Introduction to Python"`
	Description *string `json:"description" example:"A beginner-friendly course."`
	TeacherID   int64   `json:"teacher_id" binding:"required" example:"2"`
}

// CourseResponse represents course data returned by the API, with the
// teacher's username denormalized onto it at read time.
type CourseResponse struct {
	ID              int64   `json:"id" example:"1"`
	Title           string  `json:"title" example:"Introduction to Python"`
	Description     *string `json:"description" example:"A beginner-friendly course."`
	TeacherID       *int64  `json:"teacher_id" example:"2"`
	TeacherUsername *string `json:"teacher_username" example:"teacher_alice"`
}

// NewCourseResponse builds a CourseResponse in one step. teacherUsername is
// nil when the course has no teacher or the reference dangles.
func NewCourseResponse(course *models.Course, teacherUsername *string) CourseResponse {
	return CourseResponse{
		ID:              course.ID,
		Title:           course.Title,
		Description:     course.Description,
		TeacherID:       course.TeacherID,
		TeacherUsername: teacherUsername,
	}
}
