package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/barberdesk/core-service/internal/apperrors"
	"github.com/barberdesk/core-service/internal/appointment"
	"github.com/barberdesk/core-service/internal/appointment/dto"
	"github.com/barberdesk/core-service/internal/model"
	"github.com/barberdesk/core-service/internal/pkg/locker"
)

type appointmentUseCase struct {
	repo   appointment.Repository
	locks  locker.Locker
	logger *zap.Logger
}

func NewAppointmentUseCase(repo appointment.Repository, locks locker.Locker, log *zap.Logger) appointment.UseCase {
	return &appointmentUseCase{
		repo:   repo,
		locks:  locks,
		logger: log,
	}
}

func lockKey(id string) string {
	return "lock:appointment:" + id
}

func validateFields(clientName string, service model.ServiceKind, date model.Date, t model.ClockTime) error {
	if clientName == "" {
		return apperrors.NewValidation("client_name", "must not be empty")
	}
	if !service.Valid() {
		return apperrors.NewValidation("service", "unknown service kind")
	}
	if date == "" {
		return apperrors.NewValidation("date", "required")
	}
	if _, err := model.ParseDate(string(date)); err != nil {
		return apperrors.NewValidation("date", "expected YYYY-MM-DD")
	}
	if t == "" {
		return apperrors.NewValidation("time", "required")
	}
	if _, err := model.ParseClockTime(string(t)); err != nil {
		return apperrors.NewValidation("time", "expected HH:MM")
	}
	return nil
}

func (uc *appointmentUseCase) Schedule(ctx context.Context, input *dto.ScheduleAppointmentInput) (*model.Appointment, error) {
	if err := validateFields(input.ClientName, input.Service, input.Date, input.Time); err != nil {
		return nil, err
	}
	if input.Price != nil && input.Price.IsNegative() {
		return nil, apperrors.NewValidation("price", "must not be negative")
	}

	now := time.Now()
	appt := &model.Appointment{
		BaseModel:  model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		ClientName: input.ClientName,
		Service:    input.Service,
		Date:       input.Date,
		Time:       input.Time,
		Status:     model.StatusPending,
		Price:      input.Price,
		StaffID:    input.StaffID,
		Notes:      input.Notes,
	}

	if err := uc.repo.Create(ctx, appt); err != nil {
		return nil, err
	}

	uc.logger.Info("appointment scheduled",
		zap.String("appointment_id", appt.ID),
		zap.String("date", string(appt.Date)),
		zap.String("time", string(appt.Time)),
	)
	return appt, nil
}

func (uc *appointmentUseCase) Update(ctx context.Context, id string, input *dto.UpdateAppointmentInput) (*model.Appointment, error) {
	if err := validateFields(input.ClientName, input.Service, input.Date, input.Time); err != nil {
		return nil, err
	}
	if !input.Status.Valid() {
		return nil, apperrors.NewValidation("status", "unknown status")
	}
	if input.Price != nil && input.Price.IsNegative() {
		return nil, apperrors.NewValidation("price", "must not be negative")
	}

	release, err := uc.locks.Acquire(ctx, lockKey(id))
	if err != nil {
		return nil, err
	}
	defer release()

	appt, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, apperrors.NewNotFound("appointment", id)
	}

	appt.ClientName = input.ClientName
	appt.Service = input.Service
	appt.Date = input.Date
	appt.Time = input.Time
	appt.Status = input.Status
	appt.Price = input.Price
	appt.StaffID = input.StaffID
	appt.Notes = input.Notes
	appt.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

func (uc *appointmentUseCase) Transition(ctx context.Context, id string, next model.AppointmentStatus) (*model.Appointment, error) {
	if !next.Valid() {
		return nil, apperrors.NewValidation("status", "unknown status")
	}

	// Transitions on the same appointment are serialized so two concurrent
	// requests cannot both read the same current status.
	release, err := uc.locks.Acquire(ctx, lockKey(id))
	if err != nil {
		return nil, err
	}
	defer release()

	appt, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, apperrors.NewNotFound("appointment", id)
	}

	if !appt.Status.CanTransitionTo(next) {
		return nil, apperrors.NewInvalidTransition(string(appt.Status), string(next))
	}

	appt.Status = next
	appt.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, appt); err != nil {
		return nil, err
	}

	uc.logger.Info("appointment status changed",
		zap.String("appointment_id", appt.ID),
		zap.String("status", string(next)),
	)
	return appt, nil
}

func (uc *appointmentUseCase) Cancel(ctx context.Context, id string) (*model.Appointment, error) {
	return uc.Transition(ctx, id, model.StatusCancelled)
}

func (uc *appointmentUseCase) Get(ctx context.Context, id string) (*model.Appointment, error) {
	appt, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, apperrors.NewNotFound("appointment", id)
	}
	return appt, nil
}

func (uc *appointmentUseCase) List(ctx context.Context) ([]model.Appointment, error) {
	return uc.repo.List(ctx)
}
