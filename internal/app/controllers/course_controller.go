package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smarteredu/portal/internal/app/models"
	"github.com/smarteredu/portal/internal/app/models/dto"
	"github.com/smarteredu/portal/internal/app/services"
	"github.com/smarteredu/portal/internal/middleware"
	"github.com/smarteredu/portal/internal/pkg/helpers"
)

// CourseController handles course catalog operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Description Creates a course. The referenced teacher must exist and hold the teacher or admin role.
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CourseRequest true "Course information"
// @Success 201 {object} dto.CourseResponse "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or invalid teacher"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	course := &models.Course{
		Title:       req.Title,
		Description: req.Description,
		TeacherID:   &req.TeacherID,
	}

	created, err := c.courseService.Create(ctx, course)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewCourseResponse(created.Course, created.TeacherUsername))
}

// ListCourses lists courses with offset pagination
// @Summary List courses
// @Description Retrieves courses in id order with each teacher's username denormalized onto the response.
// @Tags courses
// @Accept json
// @Produce json
// @Param skip query int false "Number of records to skip" default(0)
// @Param limit query int false "Maximum number of records to return" default(100)
// @Success 200 {array} dto.CourseResponse "Courses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	skip, limit := helpers.ParseSkipLimit(ctx)

	courses, err := c.courseService.List(ctx, skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	out := make([]dto.CourseResponse, 0, len(courses))
	for _, cwt := range courses {
		out = append(out, dto.NewCourseResponse(cwt.Course, cwt.TeacherUsername))
	}
	ctx.JSON(http.StatusOK, out)
}

// GetCourseByID retrieves a course by ID
// @Summary Get course details
// @Description Retrieves a single course by its ID, including the teacher's username when the reference resolves.
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.CourseResponse "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID format"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Course")
	if !ok {
		return
	}

	cwt, err := c.courseService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseResponse(cwt.Course, cwt.TeacherUsername))
}

// UpdateCourse replaces an existing course
// @Summary Update a course
// @Description Full-replace update of title, description and teacher_id. A changed teacher reference is re-validated; an unchanged one is not.
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Param request body dto.CourseRequest true "Updated course information"
// @Success 200 {object} dto.CourseResponse "Course updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or invalid teacher"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Course")
	if !ok {
		return
	}

	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	course := &models.Course{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		TeacherID:   &req.TeacherID,
	}

	updated, err := c.courseService.Update(ctx, course)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseResponse(updated.Course, updated.TeacherUsername))
}

// DeleteCourse deletes a course
// @Summary Delete a course
// @Description Deletes a course by its ID
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 204 "Course deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID format"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Course")
	if !ok {
		return
	}

	if err := c.courseService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
