package appointment

import (
	"context"

	"github.com/barberdesk/core-service/internal/appointment/dto"
	"github.com/barberdesk/core-service/internal/model"
)

type UseCase interface {
	Schedule(ctx context.Context, input *dto.ScheduleAppointmentInput) (*model.Appointment, error)
	Update(ctx context.Context, id string, input *dto.UpdateAppointmentInput) (*model.Appointment, error)
	Transition(ctx context.Context, id string, next model.AppointmentStatus) (*model.Appointment, error)
	Cancel(ctx context.Context, id string) (*model.Appointment, error)
	Get(ctx context.Context, id string) (*model.Appointment, error)
	List(ctx context.Context) ([]model.Appointment, error)
}
