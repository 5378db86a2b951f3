package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/course-marketplace/internal/migrations"
	"github.com/magabrotheeeer/course-marketplace/internal/models"
)

// setupTestDatabase поднимает PostgreSQL в контейнере, применяет миграции
// и возвращает готовое хранилище с функцией очистки.
func setupTestDatabase(t *testing.T) (*Storage, func()) {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForAll(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2),
				wait.ForListeningPort(nat.Port("5432/tcp")),
			).WithDeadline(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := New(dsn)
	require.NoError(t, err)

	migrationsPath, err := filepath.Abs("../../../migrations")
	require.NoError(t, err)
	require.NoError(t, migrations.Run(storage.DB, migrationsPath))

	cleanup := func() {
		storage.DB.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return storage, cleanup
}

// TestDataFactory создает тестовые данные через методы хранилища.
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных.
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser регистрирует пользователя и возвращает его UID.
func (f *TestDataFactory) CreateUser(t *testing.T, username, email string, isInstructor bool) string {
	t.Helper()
	uid, err := f.storage.RegisterUser(context.Background(), models.User{
		Email:        email,
		Username:     username,
		PasswordHash: "hashedpassword",
		IsInstructor: isInstructor,
	})
	require.NoError(t, err)
	return uid
}

// CreateCourse создает курс и возвращает его ID.
func (f *TestDataFactory) CreateCourse(t *testing.T, title string, price int, instructorUID string) int {
	t.Helper()
	id, err := f.storage.CreateCourse(context.Background(), models.Course{
		Title:         title,
		Description:   "test course",
		Price:         price,
		InstructorUID: instructorUID,
	})
	require.NoError(t, err)
	return id
}

// CreatePayment создает платёж и возвращает его ID.
func (f *TestDataFactory) CreatePayment(t *testing.T, userUID string, courseID int, amount float64, status string) int {
	t.Helper()
	id, err := f.storage.CreatePayment(context.Background(), models.Payment{
		UserUID:  userUID,
		CourseID: courseID,
		Amount:   amount,
		Status:   status,
	})
	require.NoError(t, err)
	return id
}

// CreateEnrollment записывает пользователя на курс.
func (f *TestDataFactory) CreateEnrollment(t *testing.T, userUID string, courseID int) *models.Enrollment {
	t.Helper()
	enrollment, _, err := f.storage.GetOrCreateEnrollment(context.Background(), userUID, courseID)
	require.NoError(t, err)
	return enrollment
}
