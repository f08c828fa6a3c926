package class

import (
	"context"
	"database/sql"

	"fitclass/internal/db"

	"github.com/jmoiron/sqlx"
)

const classColumns = `id, class_name, COALESCE(description, '') AS description, scheduled_date, start_time, duration, instructor_id, location_id`

const detailsQuery = `
	SELECT
		c.id,
		c.class_name,
		COALESCE(c.description, '') AS description,
		c.scheduled_date,
		c.start_time,
		c.duration,
		c.instructor_id,
		c.location_id,
		i.id AS "instructor.id",
		i.name AS "instructor.name",
		i.email AS "instructor.email",
		i.specialty AS "instructor.specialty",
		l.id AS "location.id",
		l.gym_name AS "location.gym_name",
		l.address AS "location.address",
		l.capacity AS "location.capacity"
	FROM classes c
	JOIN instructors i ON c.instructor_id = i.id
	JOIN locations l ON c.location_id = l.id
`

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

func (r *repository) GetAllWithDetails(ctx context.Context) ([]ClassDetails, error) {
	query := detailsQuery + ` ORDER BY c.id ASC`

	classes := []ClassDetails{}
	err := r.db.SelectContext(ctx, &classes, query)
	if err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *repository) GetWithDetails(ctx context.Context, id int) (*ClassDetails, error) {
	query := detailsQuery + ` WHERE c.id = ?`

	var details ClassDetails
	err := r.db.GetContext(ctx, &details, query, id)
	if err != nil {
		return nil, err
	}

	return &details, nil
}

func (r *repository) GetByID(ctx context.Context, tx sqlx.ExtContext, id int) (*Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE id = ?`

	var c Class
	err := sqlx.GetContext(ctx, tx, &c, query, id)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *repository) Create(ctx context.Context, tx sqlx.ExtContext, req ClassRequest) (*Class, error) {
	query := `
		INSERT INTO classes (class_name, description, scheduled_date, start_time, duration, instructor_id, location_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + classColumns

	var c Class
	err := sqlx.GetContext(ctx, tx, &c, query,
		req.ClassName, req.Description, req.ScheduledDate, req.StartTime,
		req.Duration, req.InstructorID, req.LocationID,
	)
	if err != nil {
		return nil, db.Classify(err)
	}

	return &c, nil
}

func (r *repository) Update(ctx context.Context, tx sqlx.ExtContext, id int, req ClassRequest) (*Class, error) {
	query := `
		UPDATE classes
		SET class_name = ?, description = ?, scheduled_date = ?, start_time = ?,
			duration = ?, instructor_id = ?, location_id = ?
		WHERE id = ?
		RETURNING ` + classColumns

	var c Class
	err := sqlx.GetContext(ctx, tx, &c, query,
		req.ClassName, req.Description, req.ScheduledDate, req.StartTime,
		req.Duration, req.InstructorID, req.LocationID, id,
	)
	if err != nil {
		return nil, db.Classify(err)
	}

	return &c, nil
}

func (r *repository) Delete(ctx context.Context, tx sqlx.ExtContext, id int) error {
	result, err := tx.ExecContext(ctx, `DELETE FROM classes WHERE id = ?`, id)
	if err != nil {
		return db.Classify(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
