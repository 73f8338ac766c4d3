package dashboard

import (
	"context"
	"time"

	"github.com/barberdesk/core-service/internal/dashboard/dto"
)

// UseCase computes the same-day dashboard projection. The reference instant
// is always supplied by the caller; the aggregator never reads the wall
// clock, which keeps it deterministic.
type UseCase interface {
	Snapshot(ctx context.Context, now time.Time) (*dto.DashboardSnapshot, error)
}
