package dto

import (
	"github.com/barberdesk/core-service/internal/model"
	"github.com/barberdesk/core-service/internal/money"
)

type ScheduleAppointmentInput struct {
	ClientName string
	Service    model.ServiceKind
	Date       model.Date
	Time       model.ClockTime
	Price      *money.Money
	StaffID    *string
	Notes      *string
}

// UpdateAppointmentInput is a full-record replace except id. Status is taken
// as-is; callers that want transition checking use Transition instead.
type UpdateAppointmentInput struct {
	ClientName string
	Service    model.ServiceKind
	Date       model.Date
	Time       model.ClockTime
	Status     model.AppointmentStatus
	Price      *money.Money
	StaffID    *string
	Notes      *string
}
