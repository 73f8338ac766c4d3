package appointment

import (
	"context"

	"github.com/barberdesk/core-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, appt *model.Appointment) error
	Update(ctx context.Context, appt *model.Appointment) error

	// GetByID returns (nil, nil) when the id is unknown; callers translate
	// that into the NotFound taxonomy.
	GetByID(ctx context.Context, id string) (*model.Appointment, error)

	// List returns a snapshot ordered by date then time ascending. The
	// ordering is a contract consumed by the dashboard aggregator and by
	// list views.
	List(ctx context.Context) ([]model.Appointment, error)
}
