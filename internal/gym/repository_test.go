package gym

import (
	"context"
	"database/sql"
	"testing"

	"fitclass/internal/db"
	"fitclass/internal/db/dbtest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return NewRepository(sqlx.NewDb(mockDB, "sqlmock")), mock
}

func TestGetAllInstructors(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id, name, email, specialty FROM instructors ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "specialty"}).
			AddRow(1, "Alice Johnson", "alice@example.com", "Yoga").
			AddRow(2, "Bob Smith", "bob@example.com", nil))

	instructors, err := repo.GetAllInstructors(context.Background())
	assert.NoError(t, err)
	require.Len(t, instructors, 2)
	assert.Equal(t, "Yoga", *instructors[0].Specialty)
	assert.Nil(t, instructors[1].Specialty)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetInstructorByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id, name, email, specialty FROM instructors WHERE id = \?`).
		WithArgs(42).
		WillReturnError(sql.ErrNoRows)

	instructor, err := repo.GetInstructorByID(context.Background(), 42)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Nil(t, instructor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllLocations(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id, gym_name, address, capacity FROM locations ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "gym_name", "address", "capacity"}).
			AddRow(1, "Downtown Gym", "123 Main St", 50).
			AddRow(2, "Uptown Studio", nil, nil))

	locations, err := repo.GetAllLocations(context.Background())
	assert.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, 50, *locations[0].Capacity)
	assert.Nil(t, locations[1].Address)
	assert.Nil(t, locations[1].Capacity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLocationByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id, gym_name, address, capacity FROM locations WHERE id = \?`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "gym_name", "address", "capacity"}).
			AddRow(1, "Downtown Gym", "123 Main St", 50))

	location, err := repo.GetLocationByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "Downtown Gym", location.GymName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInstructorAndLocation_SQLite(t *testing.T) {
	database := dbtest.Open(t)
	repo := NewRepository(database)
	ctx := context.Background()

	var instructor *Instructor
	var location *Location
	err := repo.InTx(ctx, func(tx sqlx.ExtContext) error {
		var err error
		instructor, err = repo.CreateInstructor(ctx, tx, CreateInstructorRequest{
			Name: "Carol White", Email: "carol@example.com",
		})
		if err != nil {
			return err
		}
		location, err = repo.CreateLocation(ctx, tx, CreateLocationRequest{GymName: "Harbor Gym"})
		return err
	})
	require.NoError(t, err)

	assert.NotZero(t, instructor.ID)
	assert.Nil(t, instructor.Specialty)
	assert.NotZero(t, location.ID)
	assert.Nil(t, location.Capacity)

	got, err := repo.GetInstructorByID(ctx, instructor.ID)
	require.NoError(t, err)
	assert.Equal(t, "carol@example.com", got.Email)
}

func TestCreateInstructor_DuplicateEmail(t *testing.T) {
	database := dbtest.Open(t)
	dbtest.Seed(t, database)
	repo := NewRepository(database)
	ctx := context.Background()

	err := repo.InTx(ctx, func(tx sqlx.ExtContext) error {
		_, err := repo.CreateInstructor(ctx, tx, CreateInstructorRequest{
			Name: "Alice Clone", Email: "alice@example.com",
		})
		return err
	})
	assert.ErrorIs(t, err, db.ErrConstraintViolation)

	instructors, err := repo.GetAllInstructors(ctx)
	require.NoError(t, err)
	assert.Len(t, instructors, 2)
}

func TestInstructorEmailExists(t *testing.T) {
	database := dbtest.Open(t)
	dbtest.Seed(t, database)
	repo := NewRepository(database)
	ctx := context.Background()

	exists, err := repo.InstructorEmailExists(ctx, database, "bob@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.InstructorEmailExists(ctx, database, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}
