package gym

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Repository reads go straight to the pool. Writes take the transaction they
// run in, obtained from InTx.
type Repository interface {
	InTx(ctx context.Context, fn func(tx sqlx.ExtContext) error) error
	CreateInstructor(ctx context.Context, tx sqlx.ExtContext, req CreateInstructorRequest) (*Instructor, error)
	InstructorEmailExists(ctx context.Context, tx sqlx.ExtContext, email string) (bool, error)
	GetAllInstructors(ctx context.Context) ([]Instructor, error)
	GetInstructorByID(ctx context.Context, id int) (*Instructor, error)
	CreateLocation(ctx context.Context, tx sqlx.ExtContext, req CreateLocationRequest) (*Location, error)
	GetAllLocations(ctx context.Context) ([]Location, error)
	GetLocationByID(ctx context.Context, id int) (*Location, error)
}
