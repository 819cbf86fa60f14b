package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ritualnet/backend/internal/domain"
)

// PremiumRepository implements the premium store repository for PostgreSQL
type PremiumRepository struct {
	db *pgxpool.Pool
}

// NewPremiumRepository creates a new PremiumRepository
func NewPremiumRepository(db *pgxpool.Pool) *PremiumRepository {
	return &PremiumRepository{db: db}
}

// IsItemLive reports whether any schedule covering now exists for any set
// containing the item. Both window bounds are inclusive.
func (r *PremiumRepository) IsItemLive(ctx context.Context, itemID int64, now time.Time) (bool, error) {
	var live bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1
			FROM set_item_associations sia
			JOIN premium_store_schedules pss ON pss.set_id = sia.set_id
			WHERE sia.item_id = $1
			  AND pss.start_date <= $2
			  AND pss.end_date >= $2
		)`, itemID, now).Scan(&live)
	if err != nil {
		return false, fmt.Errorf("failed to check item availability: %w", err)
	}
	return live, nil
}

// GetLiveItemIDs returns the distinct IDs of items in any currently live set
func (r *PremiumRepository) GetLiveItemIDs(ctx context.Context, now time.Time) ([]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT sia.item_id
		 FROM set_item_associations sia
		 JOIN premium_store_schedules pss ON pss.set_id = sia.set_id
		 WHERE pss.start_date <= $1 AND pss.end_date >= $1
		 ORDER BY sia.item_id`, now)
	if err != nil {
		return nil, fmt.Errorf("failed to query live item ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan item id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// GetLiveListings returns the live premium items with their gold prices.
// Items without a gold price are excluded; they cannot be sold.
func (r *PremiumRepository) GetLiveListings(ctx context.Context, now time.Time) ([]domain.PremiumListing, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT i.item_id, i.item_name, i.gold_cost
		 FROM items i
		 JOIN set_item_associations sia ON sia.item_id = i.item_id
		 JOIN premium_store_schedules pss ON pss.set_id = sia.set_id
		 WHERE pss.start_date <= $1
		   AND pss.end_date >= $1
		   AND i.gold_cost IS NOT NULL
		 ORDER BY i.item_id`, now)
	if err != nil {
		return nil, fmt.Errorf("failed to query live premium items: %w", err)
	}
	defer rows.Close()

	var listings []domain.PremiumListing
	for rows.Next() {
		var l domain.PremiumListing
		if err := rows.Scan(&l.ItemID, &l.ItemName, &l.GoldCost); err != nil {
			return nil, fmt.Errorf("failed to scan premium listing: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// ListSets returns all premium store sets without their items
func (r *PremiumRepository) ListSets(ctx context.Context) ([]domain.PremiumStoreSet, error) {
	rows, err := r.db.Query(ctx,
		`SELECT set_id, set_name FROM premium_store_sets ORDER BY set_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query premium store sets: %w", err)
	}
	defer rows.Close()

	var sets []domain.PremiumStoreSet
	for rows.Next() {
		var s domain.PremiumStoreSet
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("failed to scan premium store set: %w", err)
		}
		sets = append(sets, s)
	}
	return sets, rows.Err()
}

// GetSet returns the set with its member items
func (r *PremiumRepository) GetSet(ctx context.Context, setID int64) (*domain.PremiumStoreSet, error) {
	var s domain.PremiumStoreSet
	err := r.db.QueryRow(ctx,
		`SELECT set_id, set_name FROM premium_store_sets WHERE set_id = $1`, setID).
		Scan(&s.ID, &s.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get premium store set: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT i.item_id, i.item_name, i.item_type_id, i.rarity_id, i.silver_cost, i.gold_cost, i.unity_name, i.is_general_store_item
		 FROM items i
		 JOIN set_item_associations sia ON sia.item_id = i.item_id
		 WHERE sia.set_id = $1
		 ORDER BY i.item_id`, setID)
	if err != nil {
		return nil, fmt.Errorf("failed to query set items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan set item: %w", err)
		}
		s.Items = append(s.Items, *item)
	}
	return &s, rows.Err()
}

// CreateSet inserts a set and its item associations in one transaction.
// Item IDs not present in the catalog are skipped rather than failing the set.
func (r *PremiumRepository) CreateSet(ctx context.Context, name string, itemIDs []int64) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer SafeRollback(ctx, tx)

	var setID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO premium_store_sets (set_name) VALUES ($1) RETURNING set_id`, name).
		Scan(&setID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert premium store set: %w", err)
	}

	if err := insertAssociations(ctx, tx, setID, itemIDs); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return setID, nil
}

// UpdateSet renames a set and replaces its item associations
func (r *PremiumRepository) UpdateSet(ctx context.Context, setID int64, name string, itemIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer SafeRollback(ctx, tx)

	tag, err := tx.Exec(ctx,
		`UPDATE premium_store_sets SET set_name = $2 WHERE set_id = $1`, setID, name)
	if err != nil {
		return fmt.Errorf("failed to update premium store set: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSetNotFound
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM set_item_associations WHERE set_id = $1`, setID); err != nil {
		return fmt.Errorf("failed to clear set associations: %w", err)
	}

	if err := insertAssociations(ctx, tx, setID, itemIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteSet removes a set; associations and schedules cascade
func (r *PremiumRepository) DeleteSet(ctx context.Context, setID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM premium_store_sets WHERE set_id = $1`, setID)
	if err != nil {
		return fmt.Errorf("failed to delete premium store set: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSetNotFound
	}
	return nil
}

func insertAssociations(ctx context.Context, tx pgx.Tx, setID int64, itemIDs []int64) error {
	for _, itemID := range itemIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO set_item_associations (set_id, item_id)
			 SELECT $1, item_id FROM items WHERE item_id = $2
			 ON CONFLICT DO NOTHING`, setID, itemID)
		if err != nil {
			return fmt.Errorf("failed to insert set association: %w", err)
		}
	}
	return nil
}

// ListSchedules returns all premium store schedules
func (r *PremiumRepository) ListSchedules(ctx context.Context) ([]domain.PremiumStoreSchedule, error) {
	rows, err := r.db.Query(ctx,
		`SELECT schedule_id, set_id, start_date, end_date
		 FROM premium_store_schedules ORDER BY schedule_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query premium store schedules: %w", err)
	}
	defer rows.Close()

	var schedules []domain.PremiumStoreSchedule
	for rows.Next() {
		var s domain.PremiumStoreSchedule
		if err := rows.Scan(&s.ID, &s.SetID, &s.StartDate, &s.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan premium store schedule: %w", err)
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

// GetSchedule retrieves a schedule by ID
func (r *PremiumRepository) GetSchedule(ctx context.Context, scheduleID int64) (*domain.PremiumStoreSchedule, error) {
	var s domain.PremiumStoreSchedule
	err := r.db.QueryRow(ctx,
		`SELECT schedule_id, set_id, start_date, end_date
		 FROM premium_store_schedules WHERE schedule_id = $1`, scheduleID).
		Scan(&s.ID, &s.SetID, &s.StartDate, &s.EndDate)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get premium store schedule: %w", err)
	}
	return &s, nil
}

// CreateSchedule inserts a schedule for an existing set
func (r *PremiumRepository) CreateSchedule(ctx context.Context, setID int64, start, end time.Time) (int64, error) {
	var scheduleID int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO premium_store_schedules (set_id, start_date, end_date)
		 VALUES ($1, $2, $3) RETURNING schedule_id`, setID, start, end).
		Scan(&scheduleID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert premium store schedule: %w", err)
	}
	return scheduleID, nil
}

// UpdateSchedule rebinds a schedule's set and window
func (r *PremiumRepository) UpdateSchedule(ctx context.Context, scheduleID, setID int64, start, end time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE premium_store_schedules
		 SET set_id = $2, start_date = $3, end_date = $4
		 WHERE schedule_id = $1`, scheduleID, setID, start, end)
	if err != nil {
		return fmt.Errorf("failed to update premium store schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrScheduleNotFound
	}
	return nil
}

// DeleteSchedule removes a schedule
func (r *PremiumRepository) DeleteSchedule(ctx context.Context, scheduleID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM premium_store_schedules WHERE schedule_id = $1`, scheduleID)
	if err != nil {
		return fmt.Errorf("failed to delete premium store schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrScheduleNotFound
	}
	return nil
}
