package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apptUCPkg "github.com/barberdesk/core-service/internal/appointment/usecase"

	"github.com/barberdesk/core-service/internal/appointment"
	"github.com/barberdesk/core-service/internal/appointment/dto"
	"github.com/barberdesk/core-service/internal/appointment/repository"
	"github.com/barberdesk/core-service/internal/dashboard"
	"github.com/barberdesk/core-service/internal/model"
	"github.com/barberdesk/core-service/internal/money"
	"github.com/barberdesk/core-service/internal/pkg/locker"
)

// All tests pin the reference day to 2026-03-14 and build instants from
// clock strings, so nothing here depends on the wall clock.
const testDay = "2026-03-14"

func at(clock string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", testDay+" "+clock)
	if err != nil {
		panic(err)
	}
	return t
}

type fixture struct {
	repo  appointment.Repository
	appts appointment.UseCase
	dash  dashboard.UseCase
}

func newFixture() *fixture {
	repo := repository.NewMemoryRepository()
	return &fixture{
		repo:  repo,
		appts: apptUCPkg.NewAppointmentUseCase(repo, locker.NewInProcess(), zap.NewNop()),
		dash:  NewDashboardUseCase(repo, zap.NewNop()),
	}
}

func (f *fixture) schedule(t *testing.T, date model.Date, clock model.ClockTime, priceCents int64, staffID string) *model.Appointment {
	t.Helper()
	in := &dto.ScheduleAppointmentInput{
		ClientName: "Cliente",
		Service:    model.ServiceCut,
		Date:       date,
		Time:       clock,
	}
	if priceCents > 0 {
		p := money.FromCents(priceCents)
		in.Price = &p
	}
	if staffID != "" {
		in.StaffID = &staffID
	}
	appt, err := f.appts.Schedule(context.Background(), in)
	require.NoError(t, err)
	return appt
}

func TestSnapshotPartitionsByReferenceTime(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	appt := f.schedule(t, testDay, "14:00", 4000, "")

	// Before the slot: upcoming.
	snap, err := f.dash.Snapshot(ctx, at("13:00"))
	require.NoError(t, err)
	assert.Equal(t, 1, snap.TotalToday)
	assert.Equal(t, 0, snap.CountRealized)
	assert.Equal(t, 1, snap.CountUpcoming)
	assert.Equal(t, int64(0), snap.RevenueRealized.Cents())

	// After the slot: realized, price counted.
	snap, err = f.dash.Snapshot(ctx, at("15:00"))
	require.NoError(t, err)
	assert.Equal(t, 1, snap.CountRealized)
	assert.Equal(t, 0, snap.CountUpcoming)
	assert.Equal(t, int64(4000), snap.RevenueRealized.Cents())

	// Cancelled: excluded from everything.
	_, err = f.appts.Cancel(ctx, appt.ID)
	require.NoError(t, err)

	snap, err = f.dash.Snapshot(ctx, at("15:00"))
	require.NoError(t, err)
	assert.Equal(t, 0, snap.TotalToday)
	assert.Equal(t, 0, snap.CountRealized)
	assert.Equal(t, 0, snap.CountUpcoming)
	assert.Equal(t, int64(0), snap.RevenueRealized.Cents())
}

func TestSnapshotBoundaryTieGoesToUpcoming(t *testing.T) {
	f := newFixture()

	f.schedule(t, testDay, "14:00", 4000, "")

	snap, err := f.dash.Snapshot(context.Background(), at("14:00"))
	require.NoError(t, err)
	assert.Equal(t, 0, snap.CountRealized)
	assert.Equal(t, 1, snap.CountUpcoming)
	assert.Equal(t, int64(0), snap.RevenueRealized.Cents())
}

func TestSnapshotPartitionIsExhaustiveAndDisjoint(t *testing.T) {
	f := newFixture()

	clocks := []model.ClockTime{"08:00", "09:15", "11:45", "13:00", "13:00", "16:30", "19:00"}
	for _, c := range clocks {
		f.schedule(t, testDay, c, 2500, "")
	}
	// Non-today appointments never enter the snapshot.
	f.schedule(t, "2026-03-13", "10:00", 2500, "")
	f.schedule(t, "2026-03-15", "10:00", 2500, "")

	snap, err := f.dash.Snapshot(context.Background(), at("13:00"))
	require.NoError(t, err)
	assert.Equal(t, len(clocks), snap.TotalToday)
	assert.Equal(t, snap.TotalToday, snap.CountRealized+snap.CountUpcoming)
	assert.Equal(t, 3, snap.CountRealized) // 08:00, 09:15, 11:45
	assert.Equal(t, int64(3*2500), snap.RevenueRealized.Cents())
}

func TestSnapshotMissingPriceCountsAsZero(t *testing.T) {
	f := newFixture()

	f.schedule(t, testDay, "08:00", 0, "")    // no price yet
	f.schedule(t, testDay, "09:00", 3000, "") // billed

	snap, err := f.dash.Snapshot(context.Background(), at("12:00"))
	require.NoError(t, err)
	assert.Equal(t, 2, snap.CountRealized)
	assert.Equal(t, int64(3000), snap.RevenueRealized.Cents())
}

func TestUpcomingGroupedByStaffInTimeOrder(t *testing.T) {
	f := newFixture()

	f.schedule(t, testDay, "10:00", 0, "staff-a")
	f.schedule(t, testDay, "09:00", 0, "staff-a")
	f.schedule(t, testDay, "09:30", 0, "staff-b")
	f.schedule(t, testDay, "11:00", 0, "") // unassigned, belongs to no queue

	snap, err := f.dash.Snapshot(context.Background(), at("08:00"))
	require.NoError(t, err)
	require.Len(t, snap.UpcomingByStaff, 2)

	queueA := snap.UpcomingByStaff[0]
	assert.Equal(t, "staff-a", queueA.StaffID)
	require.Len(t, queueA.Appointments, 2)
	assert.Equal(t, model.ClockTime("09:00"), queueA.Appointments[0].Time)
	assert.Equal(t, model.ClockTime("10:00"), queueA.Appointments[1].Time)

	queueB := snap.UpcomingByStaff[1]
	assert.Equal(t, "staff-b", queueB.StaffID)
	require.Len(t, queueB.Appointments, 1)
	assert.Equal(t, model.ClockTime("09:30"), queueB.Appointments[0].Time)

	assert.Equal(t, 4, snap.CountUpcoming)
}

func TestSnapshotDoesNotMutateStore(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	appt := f.schedule(t, testDay, "09:00", 1000, "staff-a")

	_, err := f.dash.Snapshot(ctx, at("12:00"))
	require.NoError(t, err)

	got, err := f.repo.GetByID(ctx, appt.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, model.StatusPending, got.Status)
	assert.Equal(t, model.ClockTime("09:00"), got.Time)
}
