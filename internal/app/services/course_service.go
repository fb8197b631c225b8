package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/smarteredu/portal/internal/app/models"
	"github.com/smarteredu/portal/internal/app/repositories"
	"github.com/smarteredu/portal/internal/pkg/apperrors"
	"github.com/smarteredu/portal/internal/pkg/helpers"
)

// CourseWithTeacher pairs a course with its teacher's username resolved at
// read time. TeacherUsername is nil when the course has no teacher or the
// referenced user no longer exists.
type CourseWithTeacher struct {
	Course          *models.Course
	TeacherUsername *string
}

// CourseService defines the interface for course catalog operations
type CourseService interface {
	Create(ctx context.Context, course *models.Course) (*CourseWithTeacher, error)
	List(ctx context.Context, skip, limit int) ([]*CourseWithTeacher, error)
	GetByID(ctx context.Context, id int64) (*CourseWithTeacher, error)
	Update(ctx context.Context, course *models.Course) (*CourseWithTeacher, error)
	Delete(ctx context.Context, id int64) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo repositories.ICourseRepository
	userRepo   repositories.IUserRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.ICourseRepository, userRepo repositories.IUserRepository) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		userRepo:   userRepo,
	}
}

// validateCourse validates course data before database operations
func (s *courseServiceImpl) validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(course.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

// validateTeacher checks that the referenced user exists and holds a
// teacher-eligible role. Both failure modes collapse into ErrInvalidTeacher.
func (s *courseServiceImpl) validateTeacher(ctx context.Context, teacherID int64) (*models.User, error) {
	teacher, err := s.userRepo.GetByID(ctx, teacherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidTeacher
		}
		return nil, fmt.Errorf("error looking up teacher: %w", err)
	}
	if !teacher.Role.CanTeach() {
		return nil, apperrors.ErrInvalidTeacher
	}
	return teacher, nil
}

// Create validates the teacher reference and persists a new course. The
// teacher's username is taken from the validated user, so no extra lookup is
// needed for the response.
func (s *courseServiceImpl) Create(ctx context.Context, course *models.Course) (*CourseWithTeacher, error) {
	if err := s.validateCourse(course); err != nil {
		return nil, err
	}
	if course.TeacherID == nil {
		return nil, apperrors.ErrInvalidTeacher
	}

	teacher, err := s.validateTeacher(ctx, *course.TeacherID)
	if err != nil {
		return nil, err
	}

	id, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	course.ID = id
	return &CourseWithTeacher{Course: course, TeacherUsername: &teacher.Username}, nil
}

// List retrieves courses in id order and denormalizes teacher usernames with
// a single bulk lookup over the distinct teacher ids of the page. Out-of-range
// skip and limit values are normalized to the shared pagination bounds.
func (s *courseServiceImpl) List(ctx context.Context, skip, limit int) ([]*CourseWithTeacher, error) {
	skip, limit = helpers.ClampSkipLimit(skip, limit)
	courses, err := s.courseRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	usernames, err := s.resolveTeacherUsernames(ctx, courses)
	if err != nil {
		return nil, err
	}

	out := make([]*CourseWithTeacher, 0, len(courses))
	for _, course := range courses {
		out = append(out, withTeacher(course, usernames))
	}
	return out, nil
}

// GetByID retrieves a course by ID with its teacher username resolved.
func (s *courseServiceImpl) GetByID(ctx context.Context, id int64) (*CourseWithTeacher, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	usernames, err := s.resolveTeacherUsernames(ctx, []*models.Course{course})
	if err != nil {
		return nil, err
	}
	return withTeacher(course, usernames), nil
}

// Update replaces title, description and teacher_id of an existing course.
// The teacher reference is only re-validated when it actually changes: an
// unchanged reference was validated when the course was created or last
// updated, and it is allowed to keep dangling if the user has since been
// deleted.
func (s *courseServiceImpl) Update(ctx context.Context, course *models.Course) (*CourseWithTeacher, error) {
	if err := s.validateCourse(course); err != nil {
		return nil, err
	}
	if course.ID <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}
	if course.TeacherID == nil {
		return nil, apperrors.ErrInvalidTeacher
	}

	existing, err := s.courseRepo.GetByID(ctx, course.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	teacherChanged := existing.TeacherID == nil || *existing.TeacherID != *course.TeacherID
	if teacherChanged {
		if _, err := s.validateTeacher(ctx, *course.TeacherID); err != nil {
			return nil, err
		}
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	usernames, err := s.resolveTeacherUsernames(ctx, []*models.Course{course})
	if err != nil {
		return nil, err
	}
	return withTeacher(course, usernames), nil
}

// Delete deletes a course by ID
func (s *courseServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	err := s.courseRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error deleting course: %w", err)
	}
	return nil
}

// resolveTeacherUsernames collects the distinct teacher ids of the given
// courses and resolves them in one query. Dangling references are absent
// from the returned map.
func (s *courseServiceImpl) resolveTeacherUsernames(ctx context.Context, courses []*models.Course) (map[int64]string, error) {
	seen := make(map[int64]struct{})
	ids := make([]int64, 0)
	for _, course := range courses {
		if course.TeacherID == nil {
			continue
		}
		if _, ok := seen[*course.TeacherID]; ok {
			continue
		}
		seen[*course.TeacherID] = struct{}{}
		ids = append(ids, *course.TeacherID)
	}

	usernames, err := s.userRepo.GetUsernamesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error resolving teacher usernames: %w", err)
	}
	return usernames, nil
}

// withTeacher builds the read model for one course from the resolved map.
func withTeacher(course *models.Course, usernames map[int64]string) *CourseWithTeacher {
	cwt := &CourseWithTeacher{Course: course}
	if course.TeacherID != nil {
		if username, ok := usernames[*course.TeacherID]; ok {
			cwt.TeacherUsername = &username
		}
	}
	return cwt
}
