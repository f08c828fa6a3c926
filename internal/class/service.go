package class

import (
	"context"
	"database/sql"
	"errors"

	"fitclass/internal/db"
	"fitclass/internal/logger"
	"fitclass/internal/metrics"
	"fitclass/internal/validation"

	"github.com/jmoiron/sqlx"
)

var ErrClassNotFound = errors.New("class not found")

type Service interface {
	List(ctx context.Context) ([]ClassDetails, error)
	Get(ctx context.Context, id int) (*ClassDetails, error)
	Create(ctx context.Context, req ClassRequest) (*Class, error)
	Update(ctx context.Context, id int, req ClassRequest) (*Class, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) List(ctx context.Context) ([]ClassDetails, error) {
	return s.repo.GetAllWithDetails(ctx)
}

func (s *service) Get(ctx context.Context, id int) (*ClassDetails, error) {
	details, err := s.repo.GetWithDetails(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClassNotFound
	}
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (s *service) Create(ctx context.Context, req ClassRequest) (created *Class, err error) {
	defer func() { metrics.RecordClassMutation("create", outcome(err)) }()

	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	err = s.repo.InTx(ctx, func(tx sqlx.ExtContext) error {
		var err error
		created, err = s.repo.Create(ctx, tx, req)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Class created", "class_id", created.ID, "class_name", created.ClassName)
	return created, nil
}

// Update overwrites every field of an existing class. Concurrent updates of
// the same class are last-write-wins.
func (s *service) Update(ctx context.Context, id int, req ClassRequest) (updated *Class, err error) {
	defer func() { metrics.RecordClassMutation("update", outcome(err)) }()

	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	err = s.repo.InTx(ctx, func(tx sqlx.ExtContext) error {
		if _, err := s.repo.GetByID(ctx, tx, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrClassNotFound
			}
			return err
		}

		var err error
		updated, err = s.repo.Update(ctx, tx, id, req)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Class updated", "class_id", id)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int) (err error) {
	defer func() { metrics.RecordClassMutation("delete", outcome(err)) }()

	err = s.repo.InTx(ctx, func(tx sqlx.ExtContext) error {
		if _, err := s.repo.GetByID(ctx, tx, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrClassNotFound
			}
			return err
		}
		return s.repo.Delete(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	logger.Info("Class deleted", "class_id", id)
	return nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, validation.ErrValidation):
		return "validation_error"
	case errors.Is(err, ErrClassNotFound):
		return "not_found"
	case errors.Is(err, db.ErrConstraintViolation):
		return "constraint_violation"
	case errors.Is(err, db.ErrTransactionFailure):
		return "transaction_failure"
	default:
		return "error"
	}
}
