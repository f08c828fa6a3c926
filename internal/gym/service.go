package gym

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var (
	ErrInstructorNotFound = errors.New("instructor not found")
	ErrLocationNotFound   = errors.New("location not found")
)

// seedMarkerEmail identifies an already seeded database.
const seedMarkerEmail = "alice@example.com"

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

var (
	DefaultInstructors = []CreateInstructorRequest{
		{Name: "Alice Johnson", Email: seedMarkerEmail, Specialty: strPtr("Yoga")},
		{Name: "Bob Smith", Email: "bob@example.com", Specialty: strPtr("HIIT")},
	}
	DefaultLocations = []CreateLocationRequest{
		{GymName: "Downtown Gym", Address: strPtr("123 Main St"), Capacity: intPtr(50)},
		{GymName: "Uptown Studio", Address: strPtr("456 Elm St"), Capacity: intPtr(30)},
	}
)

type Service interface {
	ListInstructors(ctx context.Context) ([]Instructor, error)
	GetInstructor(ctx context.Context, id int) (*Instructor, error)
	ListLocations(ctx context.Context) ([]Location, error)
	GetLocation(ctx context.Context, id int) (*Location, error)
	Seed(ctx context.Context) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) ListInstructors(ctx context.Context) ([]Instructor, error) {
	return s.repo.GetAllInstructors(ctx)
}

func (s *service) GetInstructor(ctx context.Context, id int) (*Instructor, error) {
	instructor, err := s.repo.GetInstructorByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInstructorNotFound
	}
	if err != nil {
		return nil, err
	}
	return instructor, nil
}

func (s *service) ListLocations(ctx context.Context) ([]Location, error) {
	return s.repo.GetAllLocations(ctx)
}

func (s *service) GetLocation(ctx context.Context, id int) (*Location, error) {
	location, err := s.repo.GetLocationByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLocationNotFound
	}
	if err != nil {
		return nil, err
	}
	return location, nil
}

// Seed inserts the default instructors and locations in one transaction.
// It reports false without writing when the data is already present.
func (s *service) Seed(ctx context.Context) (bool, error) {
	seeded := false
	err := s.repo.InTx(ctx, func(tx sqlx.ExtContext) error {
		exists, err := s.repo.InstructorEmailExists(ctx, tx, seedMarkerEmail)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}

		for _, req := range DefaultInstructors {
			if _, err := s.repo.CreateInstructor(ctx, tx, req); err != nil {
				return fmt.Errorf("seed instructor %s: %w", req.Email, err)
			}
		}
		for _, req := range DefaultLocations {
			if _, err := s.repo.CreateLocation(ctx, tx, req); err != nil {
				return fmt.Errorf("seed location %s: %w", req.GymName, err)
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return seeded, nil
}
