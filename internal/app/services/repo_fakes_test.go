package services

import (
	"context"
	"sort"

	"github.com/smarteredu/portal/internal/app/models"
	"github.com/smarteredu/portal/internal/pkg/apperrors"
)

// fakeUserRepo is an in-memory IUserRepository for service tests.
type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64

	// usernameCalls records every GetUsernamesByIDs call for assertions on
	// batch behavior.
	usernameCalls [][]int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User), nextID: 1}
}

func (f *fakeUserRepo) add(username, email string, role models.RoleType) *models.User {
	user := &models.User{
		ID:             f.nextID,
		Username:       username,
		Email:          email,
		HashedPassword: "x",
		Role:           role,
	}
	f.users[user.ID] = user
	f.nextID++
	return user
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) (int64, error) {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		if existing.Username == user.Username {
			return 0, apperrors.ErrUsernameAlreadyExists
		}
	}
	stored := *user
	stored.ID = f.nextID
	f.users[stored.ID] = &stored
	f.nextID++
	return stored.ID, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) List(_ context.Context, skip, limit int) ([]*models.User, error) {
	ids := make([]int64, 0, len(f.users))
	for id := range f.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := []*models.User{}
	for i, id := range ids {
		if i < skip {
			continue
		}
		if len(out) >= limit {
			break
		}
		copied := *f.users[id]
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, user := range f.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) GetUsernamesByIDs(_ context.Context, ids []int64) (map[int64]string, error) {
	recorded := append([]int64(nil), ids...)
	f.usernameCalls = append(f.usernameCalls, recorded)

	usernames := make(map[int64]string, len(ids))
	for _, id := range ids {
		if user, ok := f.users[id]; ok {
			usernames[id] = user.Username
		}
	}
	return usernames, nil
}

// fakeCourseRepo is an in-memory ICourseRepository for service tests.
type fakeCourseRepo struct {
	courses map[int64]*models.Course
	nextID  int64
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[int64]*models.Course), nextID: 1}
}

func (f *fakeCourseRepo) Create(_ context.Context, course *models.Course) (int64, error) {
	stored := *course
	stored.ID = f.nextID
	f.courses[stored.ID] = &stored
	f.nextID++
	return stored.ID, nil
}

func (f *fakeCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	copied := *course
	return &copied, nil
}

func (f *fakeCourseRepo) List(_ context.Context, skip, limit int) ([]*models.Course, error) {
	ids := make([]int64, 0, len(f.courses))
	for id := range f.courses {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := []*models.Course{}
	for i, id := range ids {
		if i < skip {
			continue
		}
		if len(out) >= limit {
			break
		}
		copied := *f.courses[id]
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeCourseRepo) Update(_ context.Context, course *models.Course) error {
	if _, ok := f.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	stored := *course
	f.courses[course.ID] = &stored
	return nil
}

func (f *fakeCourseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}
