package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCancelled, false},
		{StatusPending, StatusPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestParseDateAndClockTime(t *testing.T) {
	d, err := ParseDate("2026-03-14")
	assert.NoError(t, err)
	assert.Equal(t, Date("2026-03-14"), d)

	_, err = ParseDate("14/03/2026")
	assert.Error(t, err)

	ct, err := ParseClockTime("09:30")
	assert.NoError(t, err)
	assert.Equal(t, ClockTime("09:30"), ct)

	_, err = ParseClockTime("9:30pm")
	assert.Error(t, err)
}

func TestClockTimeOrdering(t *testing.T) {
	assert.True(t, ClockTime("09:00").Before(ClockTime("10:00")))
	assert.True(t, ClockTime("09:59").Before(ClockTime("10:00")))
	assert.False(t, ClockTime("14:00").Before(ClockTime("14:00")))

	ref := time.Date(2026, 3, 14, 13, 5, 42, 0, time.UTC)
	assert.Equal(t, Date("2026-03-14"), DateOf(ref))
	assert.Equal(t, ClockTime("13:05"), ClockTimeOf(ref))
}

func TestMovementSignedQuantity(t *testing.T) {
	sale := &StockMovement{Kind: MovementSale, Quantity: 3}
	purchase := &StockMovement{Kind: MovementPurchase, Quantity: 5}

	assert.Equal(t, int64(-3), sale.SignedQuantity())
	assert.Equal(t, int64(5), purchase.SignedQuantity())
}
