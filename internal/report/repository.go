package report

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// ClassesBetween compares dates as text, which orders correctly for
// zero-padded YYYY-MM-DD values.
func (r *repository) ClassesBetween(ctx context.Context, from, to string) ([]Row, error) {
	query := `
		SELECT
			c.class_name,
			c.scheduled_date,
			i.name AS instructor_name,
			l.gym_name
		FROM classes c
		JOIN instructors i ON c.instructor_id = i.id
		JOIN locations l ON c.location_id = l.id
		WHERE c.scheduled_date BETWEEN ? AND ?
		ORDER BY c.scheduled_date ASC, c.id ASC
	`

	rows := []Row{}
	if err := r.db.SelectContext(ctx, &rows, query, from, to); err != nil {
		return nil, err
	}

	return rows, nil
}
