package domain

import "time"

// PremiumStoreSet is a named bundle of items sold together in the premium
// store. Membership is many-to-many via set_item_associations.
type PremiumStoreSet struct {
	ID    int64  `json:"set_id" db:"set_id"`
	Name  string `json:"set_name" db:"set_name"`
	Items []Item `json:"items,omitempty"`
}

// PremiumStoreSchedule binds a set to a time window. Both bounds are
// inclusive. Overlapping windows for the same set are allowed; an item is
// live if any covering schedule exists.
type PremiumStoreSchedule struct {
	ID        int64     `json:"schedule_id" db:"schedule_id"`
	SetID     int64     `json:"set_id" db:"set_id"`
	StartDate time.Time `json:"start_date" db:"start_date"`
	EndDate   time.Time `json:"end_date" db:"end_date"`
}

// Covers reports whether the schedule window contains the given instant.
func (s PremiumStoreSchedule) Covers(t time.Time) bool {
	return !t.Before(s.StartDate) && !t.After(s.EndDate)
}

// PremiumListing is the small projection returned by the live premium
// store listing.
type PremiumListing struct {
	ItemID   int64  `json:"item_id" db:"item_id"`
	ItemName string `json:"item_name" db:"item_name"`
	GoldCost int    `json:"gold_cost" db:"gold_cost"`
}
