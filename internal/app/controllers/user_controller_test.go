package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/smarteredu/portal/internal/app/controllers"
	"github.com/smarteredu/portal/internal/app/models"
	"github.com/smarteredu/portal/internal/app/routes"
	"github.com/smarteredu/portal/internal/pkg/apperrors"
)

// fakeUserService backs the HTTP layer tests without a database.
type fakeUserService struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserService() *fakeUserService {
	return &fakeUserService{users: make(map[int64]*models.User), nextID: 1}
}

func (f *fakeUserService) Create(_ context.Context, username, email, password string, role models.RoleType) (*models.User, error) {
	for _, existing := range f.users {
		if existing.Email == email {
			return nil, apperrors.ErrEmailAlreadyExists
		}
	}
	if role == "" {
		role = models.RoleStudent
	}
	user := &models.User{ID: f.nextID, Username: username, Email: email, HashedPassword: "hash", Role: role}
	f.users[user.ID] = user
	f.nextID++
	return user, nil
}

func (f *fakeUserService) List(_ context.Context, skip, limit int) ([]*models.User, error) {
	out := []*models.User{}
	for id := int64(1); id < f.nextID; id++ {
		if user, ok := f.users[id]; ok {
			out = append(out, user)
		}
	}
	if skip >= len(out) {
		return []*models.User{}, nil
	}
	out = out[skip:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeUserService) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserService) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func newTestRouter(userSvc *fakeUserService, courseSvc *fakeCourseService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.SetupRouter(
		router,
		controllers.NewUserController(userSvc),
		controllers.NewCourseController(courseSvc),
	)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRootAndHealthEndpoints(t *testing.T) {
	router := newTestRouter(newFakeUserService(), newFakeCourseService())

	rec := doJSON(t, router, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / status = %d, want 200", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshaling response: %v", err)
	}
	if body["message"] != "Welcome to the Smarter Education API!" {
		t.Errorf("message = %v", body["message"])
	}

	if rec := doJSON(t, router, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Errorf("GET /health status = %d, want 200", rec.Code)
	}
}

func TestCreateUserEndpoint(t *testing.T) {
	userSvc := newFakeUserService()
	router := newTestRouter(userSvc, newFakeCourseService())

	rec := doJSON(t, router, http.MethodPost, "/users",
		`{"username":"alice","email":"alice@example.com","password":"secret","role":"teacher"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", rec.Code, rec.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshaling response: %v", err)
	}
	if body["username"] != "alice" || body["role"] != "teacher" {
		t.Errorf("body = %v", body)
	}
	if _, leaked := body["password"]; leaked {
		t.Error("response contains the password")
	}
}

func TestCreateUserEndpointValidation(t *testing.T) {
	router := newTestRouter(newFakeUserService(), newFakeCourseService())

	tests := []struct {
		name string
		body string
	}{
		{"missing username", `{"email":"a@example.com","password":"x"}`},
		{"malformed email", `{"username":"a","email":"nope","password":"x"}`},
		{"unknown role", `{"username":"a","email":"a@example.com","password":"x","role":"principal"}`},
		{"malformed json", `{"username":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/users", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400, body: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestCreateUserEndpointDuplicateEmail(t *testing.T) {
	userSvc := newFakeUserService()
	router := newTestRouter(userSvc, newFakeCourseService())

	first := doJSON(t, router, http.MethodPost, "/users",
		`{"username":"alice","email":"alice@example.com","password":"secret"}`)
	if first.Code != http.StatusCreated {
		t.Fatalf("first create status = %d", first.Code)
	}

	second := doJSON(t, router, http.MethodPost, "/users",
		`{"username":"alice2","email":"alice@example.com","password":"secret"}`)
	if second.Code != http.StatusBadRequest {
		t.Fatalf("duplicate create status = %d, want 400", second.Code)
	}
}

func TestGetUserEndpoint(t *testing.T) {
	userSvc := newFakeUserService()
	userSvc.users[1] = &models.User{ID: 1, Username: "alice", Email: "alice@example.com", Role: models.RoleTeacher}
	userSvc.nextID = 2
	router := newTestRouter(userSvc, newFakeCourseService())

	if rec := doJSON(t, router, http.MethodGet, "/users/1", ""); rec.Code != http.StatusOK {
		t.Errorf("GET /users/1 status = %d, want 200", rec.Code)
	}
	if rec := doJSON(t, router, http.MethodGet, "/users/99", ""); rec.Code != http.StatusNotFound {
		t.Errorf("GET /users/99 status = %d, want 404", rec.Code)
	}
	if rec := doJSON(t, router, http.MethodGet, "/users/abc", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("GET /users/abc status = %d, want 400", rec.Code)
	}
}

func TestListUsersEndpoint(t *testing.T) {
	userSvc := newFakeUserService()
	for i := int64(1); i <= 3; i++ {
		userSvc.users[i] = &models.User{ID: i, Username: "u", Email: "u@example.com", Role: models.RoleStudent}
	}
	userSvc.nextID = 4
	router := newTestRouter(userSvc, newFakeCourseService())

	rec := doJSON(t, router, http.MethodGet, "/users?skip=1&limit=1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshaling response: %v", err)
	}
	if len(body) != 1 {
		t.Errorf("returned %d users, want 1", len(body))
	}
}

func TestDeleteUserEndpoint(t *testing.T) {
	userSvc := newFakeUserService()
	userSvc.users[1] = &models.User{ID: 1, Username: "alice", Email: "alice@example.com", Role: models.RoleTeacher}
	userSvc.nextID = 2
	router := newTestRouter(userSvc, newFakeCourseService())

	if rec := doJSON(t, router, http.MethodDelete, "/users/1", ""); rec.Code != http.StatusNoContent {
		t.Errorf("DELETE /users/1 status = %d, want 204", rec.Code)
	}
	if rec := doJSON(t, router, http.MethodDelete, "/users/1", ""); rec.Code != http.StatusNotFound {
		t.Errorf("second DELETE status = %d, want 404", rec.Code)
	}
}
