package usecase

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/barberdesk/core-service/internal/appointment"
	"github.com/barberdesk/core-service/internal/dashboard"
	"github.com/barberdesk/core-service/internal/dashboard/dto"
	"github.com/barberdesk/core-service/internal/model"
)

type dashboardUseCase struct {
	appts  appointment.Repository
	logger *zap.Logger
}

func NewDashboardUseCase(appts appointment.Repository, log *zap.Logger) dashboard.UseCase {
	return &dashboardUseCase{
		appts:  appts,
		logger: log,
	}
}

// Snapshot partitions today's non-cancelled appointments into realized
// (time before now) and upcoming (time at or after now; ties go to upcoming).
// It reads one List snapshot and never mutates the store.
func (uc *dashboardUseCase) Snapshot(ctx context.Context, now time.Time) (*dto.DashboardSnapshot, error) {
	items, err := uc.appts.List(ctx)
	if err != nil {
		return nil, err
	}

	today := model.DateOf(now)
	cutoff := model.ClockTimeOf(now)

	snap := &dto.DashboardSnapshot{
		Date: today,
		Time: cutoff,
	}

	var upcoming []model.Appointment
	for _, appt := range items {
		if appt.Date != today || appt.Status == model.StatusCancelled {
			continue
		}
		snap.TotalToday++
		if appt.Time.Before(cutoff) {
			snap.CountRealized++
			if appt.Price != nil {
				snap.RevenueRealized = snap.RevenueRealized.Add(*appt.Price)
			}
		} else {
			snap.CountUpcoming++
			upcoming = append(upcoming, appt)
		}
	}

	snap.UpcomingByStaff = groupByStaff(upcoming)

	uc.logger.Debug("dashboard snapshot computed",
		zap.String("date", string(today)),
		zap.Int("total_today", snap.TotalToday),
		zap.Int("realized", snap.CountRealized),
		zap.Int("upcoming", snap.CountUpcoming),
	)
	return snap, nil
}

// groupByStaff builds per-staff queues from upcoming appointments.
// Unassigned appointments belong to no queue; they never collapse into a
// shared bucket. Input is already date/time ordered, so each queue keeps
// time order, and queues are sorted by staff id for stable output.
func groupByStaff(upcoming []model.Appointment) []dto.StaffQueue {
	byStaff := make(map[string][]model.Appointment)
	for _, appt := range upcoming {
		if appt.StaffID == nil || *appt.StaffID == "" {
			continue
		}
		byStaff[*appt.StaffID] = append(byStaff[*appt.StaffID], appt)
	}

	queues := make([]dto.StaffQueue, 0, len(byStaff))
	for staffID, appts := range byStaff {
		queues = append(queues, dto.StaffQueue{StaffID: staffID, Appointments: appts})
	}
	sort.Slice(queues, func(i, j int) bool {
		return queues[i].StaffID < queues[j].StaffID
	})
	return queues
}
