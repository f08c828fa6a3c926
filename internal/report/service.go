package report

import (
	"context"
	"fmt"

	"fitclass/internal/logger"
	"fitclass/internal/metrics"
	"fitclass/internal/validation"
)

type Service interface {
	Report(ctx context.Context, req Request) (*Response, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

// Report lists classes scheduled between the two dates inclusive. A range
// whose start is after its end matches nothing.
func (s *service) Report(ctx context.Context, req Request) (*Response, error) {
	if err := validation.Validate(req); err != nil {
		metrics.RecordReport("validation_error", 0)
		return nil, err
	}

	rows, err := s.repo.ClassesBetween(ctx, req.FromDate, req.ToDate)
	if err != nil {
		metrics.RecordReport("error", 0)
		return nil, fmt.Errorf("failed to run report: %w", err)
	}

	metrics.RecordReport("success", len(rows))
	logger.Debug("Report generated", "from_date", req.FromDate, "to_date", req.ToDate, "rows", len(rows))

	resp := &Response{
		FromDate: req.FromDate,
		ToDate:   req.ToDate,
		Count:    len(rows),
		Rows:     rows,
	}
	if len(rows) == 0 {
		resp.Message = EmptyMessage
	}
	return resp, nil
}
