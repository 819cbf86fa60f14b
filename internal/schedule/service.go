package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/ritualnet/backend/internal/domain"
	"github.com/ritualnet/backend/internal/logger"
	"github.com/ritualnet/backend/internal/repository"
)

// Service defines the interface for premium store schedule operations.
// Availability is resolved at call time: an item is live when at least one
// set containing it has a schedule whose window covers the current instant,
// with both endpoints inclusive.
type Service interface {
	IsItemLive(ctx context.Context, itemID int64) (bool, error)
	LiveItemIDs(ctx context.Context) ([]int64, error)
	LiveListings(ctx context.Context) ([]domain.PremiumListing, error)

	ListSets(ctx context.Context) ([]domain.PremiumStoreSet, error)
	GetSet(ctx context.Context, setID int64) (*domain.PremiumStoreSet, error)
	CreateSet(ctx context.Context, name string, itemIDs []int64) (int64, error)
	UpdateSet(ctx context.Context, setID int64, name string, itemIDs []int64) error
	DeleteSet(ctx context.Context, setID int64) error

	ListSchedules(ctx context.Context) ([]domain.PremiumStoreSchedule, error)
	GetSchedule(ctx context.Context, scheduleID int64) (*domain.PremiumStoreSchedule, error)
	CreateSchedule(ctx context.Context, setID int64, start, end time.Time) (int64, error)
	UpdateSchedule(ctx context.Context, scheduleID, setID int64, start, end time.Time) error
	DeleteSchedule(ctx context.Context, scheduleID int64) error
}

type service struct {
	repo repository.Premium
	now  func() time.Time // For clock injection
}

// NewService creates a new schedule service
func NewService(repo repository.Premium) Service {
	return &service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *service) IsItemLive(ctx context.Context, itemID int64) (bool, error) {
	live, err := s.repo.IsItemLive(ctx, itemID, s.now().UTC())
	if err != nil {
		return false, fmt.Errorf("failed to check item availability: %w", err)
	}
	return live, nil
}

// LiveItemIDs returns the IDs of every item live at the current instant,
// regardless of whether the item carries a purchasable price.
func (s *service) LiveItemIDs(ctx context.Context) ([]int64, error) {
	ids, err := s.repo.GetLiveItemIDs(ctx, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to get live item ids: %w", err)
	}
	return ids, nil
}

// LiveListings returns every purchasable premium item for the current
// instant. Items in multiple live sets appear once; items without a gold
// price are excluded because they cannot be bought.
func (s *service) LiveListings(ctx context.Context) ([]domain.PremiumListing, error) {
	log := logger.FromContext(ctx)

	listings, err := s.repo.GetLiveListings(ctx, s.now().UTC())
	if err != nil {
		log.Error("Failed to get live listings", "error", err)
		return nil, fmt.Errorf("failed to get live listings: %w", err)
	}
	return listings, nil
}

func (s *service) ListSets(ctx context.Context) ([]domain.PremiumStoreSet, error) {
	return s.repo.ListSets(ctx)
}

func (s *service) GetSet(ctx context.Context, setID int64) (*domain.PremiumStoreSet, error) {
	set, err := s.repo.GetSet(ctx, setID)
	if err != nil {
		return nil, fmt.Errorf("failed to get set: %w", err)
	}
	if set == nil {
		return nil, domain.ErrSetNotFound
	}
	return set, nil
}

func (s *service) CreateSet(ctx context.Context, name string, itemIDs []int64) (int64, error) {
	log := logger.FromContext(ctx)

	if name == "" {
		return 0, fmt.Errorf("%w: set name is required", domain.ErrInvalidInput)
	}

	setID, err := s.repo.CreateSet(ctx, name, itemIDs)
	if err != nil {
		log.Error("Failed to create set", "error", err, "name", name)
		return 0, fmt.Errorf("failed to create set: %w", err)
	}

	log.Info("Premium store set created", "set_id", setID, "name", name, "item_count", len(itemIDs))
	return setID, nil
}

func (s *service) UpdateSet(ctx context.Context, setID int64, name string, itemIDs []int64) error {
	if name == "" {
		return fmt.Errorf("%w: set name is required", domain.ErrInvalidInput)
	}
	if err := s.repo.UpdateSet(ctx, setID, name, itemIDs); err != nil {
		return fmt.Errorf("failed to update set: %w", err)
	}
	return nil
}

func (s *service) DeleteSet(ctx context.Context, setID int64) error {
	if err := s.repo.DeleteSet(ctx, setID); err != nil {
		return fmt.Errorf("failed to delete set: %w", err)
	}
	return nil
}

func (s *service) ListSchedules(ctx context.Context) ([]domain.PremiumStoreSchedule, error) {
	return s.repo.ListSchedules(ctx)
}

func (s *service) GetSchedule(ctx context.Context, scheduleID int64) (*domain.PremiumStoreSchedule, error) {
	sched, err := s.repo.GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	if sched == nil {
		return nil, domain.ErrScheduleNotFound
	}
	return sched, nil
}

// CreateSchedule attaches an availability window to a set. Overlapping
// windows for the same set are allowed; liveness is the union of windows.
func (s *service) CreateSchedule(ctx context.Context, setID int64, start, end time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	if err := validateWindow(start, end); err != nil {
		return 0, err
	}

	set, err := s.repo.GetSet(ctx, setID)
	if err != nil {
		return 0, fmt.Errorf("failed to get set: %w", err)
	}
	if set == nil {
		return 0, domain.ErrSetNotFound
	}

	scheduleID, err := s.repo.CreateSchedule(ctx, setID, start.UTC(), end.UTC())
	if err != nil {
		log.Error("Failed to create schedule", "error", err, "set_id", setID)
		return 0, fmt.Errorf("failed to create schedule: %w", err)
	}

	log.Info("Premium store schedule created",
		"schedule_id", scheduleID, "set_id", setID, "start", start.UTC(), "end", end.UTC())
	return scheduleID, nil
}

func (s *service) UpdateSchedule(ctx context.Context, scheduleID, setID int64, start, end time.Time) error {
	if err := validateWindow(start, end); err != nil {
		return err
	}

	set, err := s.repo.GetSet(ctx, setID)
	if err != nil {
		return fmt.Errorf("failed to get set: %w", err)
	}
	if set == nil {
		return domain.ErrSetNotFound
	}

	if err := s.repo.UpdateSchedule(ctx, scheduleID, setID, start.UTC(), end.UTC()); err != nil {
		return fmt.Errorf("failed to update schedule: %w", err)
	}
	return nil
}

func (s *service) DeleteSchedule(ctx context.Context, scheduleID int64) error {
	if err := s.repo.DeleteSchedule(ctx, scheduleID); err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return nil
}

func validateWindow(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", domain.ErrInvalidInput)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end date precedes start date", domain.ErrInvalidInput)
	}
	return nil
}
