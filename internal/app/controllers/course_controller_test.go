package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/smarteredu/portal/internal/app/models"
	"github.com/smarteredu/portal/internal/app/services"
	"github.com/smarteredu/portal/internal/pkg/apperrors"
)

// fakeCourseService backs the HTTP layer tests. Teacher ids below 100 resolve
// to a fixed teacher, anything else is rejected as invalid.
type fakeCourseService struct {
	courses map[int64]*models.Course
	nextID  int64
}

func newFakeCourseService() *fakeCourseService {
	return &fakeCourseService{courses: make(map[int64]*models.Course), nextID: 1}
}

func (f *fakeCourseService) withUsername(course *models.Course) *services.CourseWithTeacher {
	cwt := &services.CourseWithTeacher{Course: course}
	if course.TeacherID != nil && *course.TeacherID < 100 {
		username := "teacher_alice"
		cwt.TeacherUsername = &username
	}
	return cwt
}

func (f *fakeCourseService) Create(_ context.Context, course *models.Course) (*services.CourseWithTeacher, error) {
	if course.TeacherID == nil || *course.TeacherID >= 100 {
		return nil, apperrors.ErrInvalidTeacher
	}
	course.ID = f.nextID
	f.courses[course.ID] = course
	f.nextID++
	return f.withUsername(course), nil
}

func (f *fakeCourseService) List(_ context.Context, skip, limit int) ([]*services.CourseWithTeacher, error) {
	out := []*services.CourseWithTeacher{}
	for id := int64(1); id < f.nextID; id++ {
		if course, ok := f.courses[id]; ok {
			out = append(out, f.withUsername(course))
		}
	}
	if skip >= len(out) {
		return []*services.CourseWithTeacher{}, nil
	}
	out = out[skip:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeCourseService) GetByID(_ context.Context, id int64) (*services.CourseWithTeacher, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return f.withUsername(course), nil
}

func (f *fakeCourseService) Update(_ context.Context, course *models.Course) (*services.CourseWithTeacher, error) {
	if _, ok := f.courses[course.ID]; !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	if course.TeacherID == nil || *course.TeacherID >= 100 {
		return nil, apperrors.ErrInvalidTeacher
	}
	f.courses[course.ID] = course
	return f.withUsername(course), nil
}

func (f *fakeCourseService) Delete(_ context.Context, id int64) error {
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

func TestCreateCourseEndpoint(t *testing.T) {
	courseSvc := newFakeCourseService()
	router := newTestRouter(newFakeUserService(), courseSvc)

	rec := doJSON(t, router, http.MethodPost, "/courses",
		`{"title":"Algebra","description":"intro","teacher_id":2}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", rec.Code, rec.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshaling response: %v", err)
	}
	if body["title"] != "Algebra" {
		t.Errorf("title = %v", body["title"])
	}
	if body["teacher_username"] != "teacher_alice" {
		t.Errorf("teacher_username = %v, want teacher_alice", body["teacher_username"])
	}
}

func TestCreateCourseEndpointInvalidTeacher(t *testing.T) {
	router := newTestRouter(newFakeUserService(), newFakeCourseService())

	rec := doJSON(t, router, http.MethodPost, "/courses",
		`{"title":"Algebra","teacher_id":999}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshaling response: %v", err)
	}
	detail, _ := body["error"].(map[string]any)
	if detail == nil || detail["field"] != "teacher_id" {
		t.Errorf("error detail = %v, want field teacher_id", body["error"])
	}
}

func TestCreateCourseEndpointMissingFields(t *testing.T) {
	router := newTestRouter(newFakeUserService(), newFakeCourseService())

	if rec := doJSON(t, router, http.MethodPost, "/courses", `{"description":"no title"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("missing title/teacher status = %d, want 400", rec.Code)
	}
}

func TestUpdateCourseEndpoint(t *testing.T) {
	courseSvc := newFakeCourseService()
	teacherID := int64(2)
	courseSvc.courses[1] = &models.Course{ID: 1, Title: "Algebra", TeacherID: &teacherID}
	courseSvc.nextID = 2
	router := newTestRouter(newFakeUserService(), courseSvc)

	rec := doJSON(t, router, http.MethodPut, "/courses/1",
		`{"title":"Algebra II","teacher_id":2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	if courseSvc.courses[1].Title != "Algebra II" {
		t.Errorf("stored title = %q, want %q", courseSvc.courses[1].Title, "Algebra II")
	}

	if rec := doJSON(t, router, http.MethodPut, "/courses/99", `{"title":"Ghost","teacher_id":2}`); rec.Code != http.StatusNotFound {
		t.Errorf("PUT /courses/99 status = %d, want 404", rec.Code)
	}
}

func TestGetAndDeleteCourseEndpoints(t *testing.T) {
	courseSvc := newFakeCourseService()
	courseSvc.courses[1] = &models.Course{ID: 1, Title: "Algebra"}
	courseSvc.nextID = 2
	router := newTestRouter(newFakeUserService(), courseSvc)

	rec := doJSON(t, router, http.MethodGet, "/courses/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /courses/1 status = %d, want 200", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshaling response: %v", err)
	}
	if username, present := body["teacher_username"]; !present || username != nil {
		t.Errorf("teacher_username = %v, want explicit null", username)
	}

	if rec := doJSON(t, router, http.MethodDelete, "/courses/1", ""); rec.Code != http.StatusNoContent {
		t.Errorf("DELETE /courses/1 status = %d, want 204", rec.Code)
	}
	if rec := doJSON(t, router, http.MethodGet, "/courses/1", ""); rec.Code != http.StatusNotFound {
		t.Errorf("GET after delete status = %d, want 404", rec.Code)
	}
}

func TestListCoursesEndpoint(t *testing.T) {
	courseSvc := newFakeCourseService()
	teacherID := int64(2)
	courseSvc.courses[1] = &models.Course{ID: 1, Title: "Algebra", TeacherID: &teacherID}
	courseSvc.courses[2] = &models.Course{ID: 2, Title: "Self Study"}
	courseSvc.nextID = 3
	router := newTestRouter(newFakeUserService(), courseSvc)

	rec := doJSON(t, router, http.MethodGet, "/courses", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshaling response: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("returned %d courses, want 2", len(body))
	}
	if body[0]["teacher_username"] != "teacher_alice" {
		t.Errorf("course 1 teacher_username = %v", body[0]["teacher_username"])
	}
	if body[1]["teacher_username"] != nil {
		t.Errorf("course 2 teacher_username = %v, want null", body[1]["teacher_username"])
	}
}
