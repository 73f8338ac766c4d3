package model

import (
	"time"

	"github.com/barberdesk/core-service/internal/money"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status machine allows moving from s to
// next. Cancelled is terminal; confirmation is one-way (no confirmed ->
// pending).
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled
	}
	return false
}

type ServiceKind string

const (
	ServiceCut        ServiceKind = "cut"
	ServiceBeard      ServiceKind = "beard"
	ServiceCutBeard   ServiceKind = "cut_beard"
	ServiceEyebrow    ServiceKind = "eyebrow"
	ServiceCutEyebrow ServiceKind = "cut_eyebrow"
	ServiceFull       ServiceKind = "cut_beard_eyebrow"
)

func (k ServiceKind) Valid() bool {
	switch k {
	case ServiceCut, ServiceBeard, ServiceCutBeard, ServiceEyebrow, ServiceCutEyebrow, ServiceFull:
		return true
	}
	return false
}

// Date is a calendar date in "2006-01-02" form. Keeping it as a plain string
// makes equality and ordering trivial and keeps the aggregator free of
// timezone handling.
type Date string

const dateLayout = "2006-01-02"

func ParseDate(s string) (Date, error) {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", err
	}
	return Date(s), nil
}

func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// ClockTime is a minute-resolution time of day in "15:04" form. Zero-padded,
// so lexicographic comparison is chronological comparison.
type ClockTime string

const clockLayout = "15:04"

func ParseClockTime(s string) (ClockTime, error) {
	if _, err := time.Parse(clockLayout, s); err != nil {
		return "", err
	}
	return ClockTime(s), nil
}

func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime(t.Format(clockLayout))
}

func (c ClockTime) Before(other ClockTime) bool {
	return c < other
}

type Appointment struct {
	BaseModel
	ClientName string            `db:"client_name" json:"client_name"`
	Service    ServiceKind       `db:"service" json:"service"`
	Date       Date              `db:"date" json:"date"`
	Time       ClockTime         `db:"start_time" json:"time"`
	Status     AppointmentStatus `db:"status" json:"status"`
	Price      *money.Money      `db:"price" json:"price"` // Nullable, set when billed
	StaffID    *string           `db:"staff_id" json:"staff_id"`
	Notes      *string           `db:"notes" json:"notes"`
}

// StaffMember is referenced for grouping only; this service does not own the
// staff roster.
type StaffMember struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
