package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/smarteredu/portal/internal/app/models"
	appRepos "github.com/smarteredu/portal/internal/app/repositories"
	"github.com/smarteredu/portal/internal/db"
	"github.com/smarteredu/portal/internal/pkg/auth"
)

// seedUser describes one fixture account.
type seedUser struct {
	username string
	email    string
	password string
	role     models.RoleType
}

// seedCourse describes one fixture course, keyed to its teacher's username.
type seedCourse struct {
	title       string
	description string
	teacher     string
}

var defaultUsers = []seedUser{
	{username: "admin_user", email: "admin@smarteredu.com", password: "adminpassword", role: models.RoleAdmin},
	{username: "teacher_alice", email: "alice.smith@smarteredu.com", password: "teacherpassword", role: models.RoleTeacher},
	{username: "student_bob", email: "bob.johnson@smarteredu.com", password: "studentpassword", role: models.RoleStudent},
}

var defaultCourses = []seedCourse{
	{
		title:       "Introduction to Python Programming",
		description: "A beginner-friendly course covering Python fundamentals.",
		teacher:     "teacher_alice",
	},
	{
		title:       "Advanced React Development",
		description: "Dive deep into React hooks, context API, and performance optimization.",
		teacher:     "teacher_alice",
	},
	{
		title:       "Database Management with Go and Postgres",
		description: "Learn to build robust APIs and manage relational data.",
		teacher:     "admin_user",
	},
}

// CreateDefaultData loads the sample accounts and courses if they are not
// present yet. The whole fixture goes in as one transaction so a partial
// load never survives a failure.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(database.Pool)

	// The admin account doubles as the sentinel for "already seeded".
	exists, err := userRepo.EmailExists(ctx, defaultUsers[0].email)
	if err != nil {
		return fmt.Errorf("error checking seed sentinel: %w", err)
	}
	if exists {
		lgr.Info().Msg("Seed data already present, skipping")
		return nil
	}

	lgr.Info().Msg("Seeding sample users and courses...")

	err = database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		teacherIDs := make(map[string]int64, len(defaultUsers))

		for _, u := range defaultUsers {
			hashed, err := auth.HashPassword(u.password)
			if err != nil {
				return fmt.Errorf("error hashing seed password for %s: %w", u.username, err)
			}

			var id int64
			err = tx.QueryRow(ctx, `
				INSERT INTO users (username, email, hashed_password, role)
				VALUES ($1, $2, $3, $4)
				RETURNING id`,
				u.username, u.email, hashed, u.role).Scan(&id)
			if err != nil {
				return fmt.Errorf("error inserting seed user %s: %w", u.username, err)
			}
			teacherIDs[u.username] = id
		}

		for _, c := range defaultCourses {
			teacherID, ok := teacherIDs[c.teacher]
			if !ok {
				return fmt.Errorf("seed course %q references unknown user %q", c.title, c.teacher)
			}

			_, err := tx.Exec(ctx, `
				INSERT INTO courses (title, description, teacher_id)
				VALUES ($1, $2, $3)`,
				c.title, c.description, teacherID)
			if err != nil {
				return fmt.Errorf("error inserting seed course %q: %w", c.title, err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	lgr.Info().Int("users", len(defaultUsers)).Int("courses", len(defaultCourses)).Msg("Seed data created")
	return nil
}
