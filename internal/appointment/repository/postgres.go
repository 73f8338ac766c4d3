package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/barberdesk/core-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, appt *model.Appointment) error {
	query := `
        INSERT INTO appointments (
            id, client_name, service, date, start_time,
            status, price, staff_id, notes, created_at, updated_at
        )
        VALUES (
            :id, :client_name, :service, :date, :start_time,
            :status, :price, :staff_id, :notes, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, appt)
	return errors.Wrap(err, "insert appointment")
}

func (r *PGRepository) Update(ctx context.Context, appt *model.Appointment) error {
	query := `
        UPDATE appointments SET
            client_name = :client_name,
            service = :service,
            date = :date,
            start_time = :start_time,
            status = :status,
            price = :price,
            staff_id = :staff_id,
            notes = :notes,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, appt)
	return errors.Wrap(err, "update appointment")
}

func (r *PGRepository) GetByID(ctx context.Context, id string) (*model.Appointment, error) {
	var appt model.Appointment
	err := r.DB.GetContext(ctx, &appt, `SELECT * FROM appointments WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "get appointment")
	}
	return &appt, nil
}

func (r *PGRepository) List(ctx context.Context) ([]model.Appointment, error) {
	var items []model.Appointment
	err := r.DB.SelectContext(ctx, &items,
		`SELECT * FROM appointments ORDER BY date ASC, start_time ASC`)
	return items, errors.Wrap(err, "list appointments")
}
