package report

import "context"

type Repository interface {
	ClassesBetween(ctx context.Context, from, to string) ([]Row, error)
}
