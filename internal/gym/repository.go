package gym

import (
	"context"

	"fitclass/internal/db"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) InTx(ctx context.Context, fn func(tx sqlx.ExtContext) error) error {
	return db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return fn(tx)
	})
}

func (r *repository) CreateInstructor(ctx context.Context, tx sqlx.ExtContext, req CreateInstructorRequest) (*Instructor, error) {
	query := `
		INSERT INTO instructors (name, email, specialty)
		VALUES (?, ?, ?)
		RETURNING id, name, email, specialty
	`

	var instructor Instructor
	err := sqlx.GetContext(ctx, tx, &instructor, query, req.Name, req.Email, req.Specialty)
	if err != nil {
		return nil, db.Classify(err)
	}

	return &instructor, nil
}

func (r *repository) InstructorEmailExists(ctx context.Context, tx sqlx.ExtContext, email string) (bool, error) {
	return db.Exists(ctx, tx, `SELECT EXISTS(SELECT 1 FROM instructors WHERE email = ?)`, email)
}

func (r *repository) GetAllInstructors(ctx context.Context) ([]Instructor, error) {
	query := `
		SELECT id, name, email, specialty
		FROM instructors
		ORDER BY id ASC
	`

	instructors := []Instructor{}
	err := r.db.SelectContext(ctx, &instructors, query)
	if err != nil {
		return nil, err
	}

	return instructors, nil
}

func (r *repository) GetInstructorByID(ctx context.Context, id int) (*Instructor, error) {
	query := `
		SELECT id, name, email, specialty
		FROM instructors
		WHERE id = ?
	`

	var instructor Instructor
	err := r.db.GetContext(ctx, &instructor, query, id)
	if err != nil {
		return nil, err
	}

	return &instructor, nil
}

func (r *repository) CreateLocation(ctx context.Context, tx sqlx.ExtContext, req CreateLocationRequest) (*Location, error) {
	query := `
		INSERT INTO locations (gym_name, address, capacity)
		VALUES (?, ?, ?)
		RETURNING id, gym_name, address, capacity
	`

	var location Location
	err := sqlx.GetContext(ctx, tx, &location, query, req.GymName, req.Address, req.Capacity)
	if err != nil {
		return nil, db.Classify(err)
	}

	return &location, nil
}

func (r *repository) GetAllLocations(ctx context.Context) ([]Location, error) {
	query := `
		SELECT id, gym_name, address, capacity
		FROM locations
		ORDER BY id ASC
	`

	locations := []Location{}
	err := r.db.SelectContext(ctx, &locations, query)
	if err != nil {
		return nil, err
	}

	return locations, nil
}

func (r *repository) GetLocationByID(ctx context.Context, id int) (*Location, error) {
	query := `
		SELECT id, gym_name, address, capacity
		FROM locations
		WHERE id = ?
	`

	var location Location
	err := r.db.GetContext(ctx, &location, query, id)
	if err != nil {
		return nil, err
	}

	return &location, nil
}
