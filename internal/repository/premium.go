package repository

import (
	"context"
	"time"

	"github.com/ritualnet/backend/internal/domain"
)

// Premium defines persistence for premium store sets, their schedules, and
// the time-windowed availability queries the purchase path depends on.
// Liveness is always computed against the instant passed in; schedules
// mutate independently so nothing here may be pre-materialized.
type Premium interface {
	// IsItemLive reports whether any schedule covering now exists for any
	// set the item belongs to.
	IsItemLive(ctx context.Context, itemID int64, now time.Time) (bool, error)
	// GetLiveItemIDs returns the IDs of all items belonging to sets with a
	// schedule covering now. Duplicates are collapsed.
	GetLiveItemIDs(ctx context.Context, now time.Time) ([]int64, error)
	// GetLiveListings returns the live premium items with their gold prices.
	GetLiveListings(ctx context.Context, now time.Time) ([]domain.PremiumListing, error)

	ListSets(ctx context.Context) ([]domain.PremiumStoreSet, error)
	// GetSet returns the set with its member items, or (nil, nil) if absent.
	GetSet(ctx context.Context, setID int64) (*domain.PremiumStoreSet, error)
	CreateSet(ctx context.Context, name string, itemIDs []int64) (int64, error)
	UpdateSet(ctx context.Context, setID int64, name string, itemIDs []int64) error
	DeleteSet(ctx context.Context, setID int64) error

	ListSchedules(ctx context.Context) ([]domain.PremiumStoreSchedule, error)
	// GetSchedule returns (nil, nil) if absent.
	GetSchedule(ctx context.Context, scheduleID int64) (*domain.PremiumStoreSchedule, error)
	CreateSchedule(ctx context.Context, setID int64, start, end time.Time) (int64, error)
	UpdateSchedule(ctx context.Context, scheduleID, setID int64, start, end time.Time) error
	DeleteSchedule(ctx context.Context, scheduleID int64) error
}
