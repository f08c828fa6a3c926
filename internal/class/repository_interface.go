package class

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	InTx(ctx context.Context, fn func(tx sqlx.ExtContext) error) error
	GetAllWithDetails(ctx context.Context) ([]ClassDetails, error)
	GetWithDetails(ctx context.Context, id int) (*ClassDetails, error)
	GetByID(ctx context.Context, tx sqlx.ExtContext, id int) (*Class, error)
	Create(ctx context.Context, tx sqlx.ExtContext, req ClassRequest) (*Class, error)
	Update(ctx context.Context, tx sqlx.ExtContext, id int, req ClassRequest) (*Class, error)
	Delete(ctx context.Context, tx sqlx.ExtContext, id int) error
}
