package dto

import (
	"github.com/barberdesk/core-service/internal/model"
	"github.com/barberdesk/core-service/internal/money"
)

// StaffQueue is the ordered "who's next" list for one staff member, time
// ascending.
type StaffQueue struct {
	StaffID      string              `json:"staff_id"`
	Appointments []model.Appointment `json:"appointments"`
}

// DashboardSnapshot is the derived view over today's appointments relative to
// a reference instant. Cancelled appointments count toward nothing.
type DashboardSnapshot struct {
	Date            model.Date      `json:"date"`
	Time            model.ClockTime `json:"time"`
	TotalToday      int             `json:"total_today"`
	CountRealized   int             `json:"count_realized"`
	CountUpcoming   int             `json:"count_upcoming"`
	RevenueRealized money.Money     `json:"revenue_realized"`
	UpcomingByStaff []StaffQueue    `json:"upcoming_by_staff"`
}
