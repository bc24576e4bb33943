package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/HITENDRAS940/turf-booking-api/internal/model"
)

// SlotRepo provides access to the turf_slots template rows.
type SlotRepo struct {
	db *sql.DB
}

func NewSlotRepo(db *sql.DB) *SlotRepo { return &SlotRepo{db: db} }

// SeedDefaultTx inserts the default 24-slot template for a new turf:
// every slot enabled at the turf's base price.  Runs inside the turf
// creation transaction.
func (r *SlotRepo) SeedDefaultTx(ctx context.Context, tx *sql.Tx, turfID uint64, basePrice int64) error {
	q := `INSERT INTO turf_slots (turf_id, slot_id, price) VALUES `
	args := make([]any, 0, model.SlotsPerDay*3)
	for id := 1; id <= model.SlotsPerDay; id++ {
		if id > 1 {
			q += ","
		}
		q += "(?, ?, ?)"
		args = append(args, turfID, id, basePrice)
	}
	_, err := tx.ExecContext(ctx, q, args...)
	return err
}

// GetByTurf retrieves the full slot template of a turf ordered by slot_id.
func (r *SlotRepo) GetByTurf(ctx context.Context, turfID uint64) ([]model.TurfSlot, error) {
	const q = `SELECT id, turf_id, slot_id, price, enabled, updated_at
	           FROM turf_slots WHERE turf_id = ? ORDER BY slot_id`
	rows, err := r.db.QueryContext(ctx, q, turfID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.TurfSlot
	for rows.Next() {
		var s model.TurfSlot
		if err := rows.Scan(&s.ID, &s.TurfID, &s.SlotID, &s.Price, &s.Enabled, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetForUpdateTx locks and returns the template rows for the given
// slot ids within a transaction.  Used by booking creation so prices
// and enabled flags cannot change mid-booking.
func (r *SlotRepo) GetForUpdateTx(ctx context.Context, tx *sql.Tx, turfID uint64, slotIDs []int) ([]model.TurfSlot, error) {
	if len(slotIDs) == 0 {
		return nil, nil
	}
	q := `SELECT id, turf_id, slot_id, price, enabled, updated_at FROM turf_slots
	      WHERE turf_id = ? AND slot_id IN (` + placeholders(len(slotIDs)) + `) FOR UPDATE`
	args := make([]any, 0, len(slotIDs)+1)
	args = append(args, turfID)
	for _, id := range slotIDs {
		args = append(args, id)
	}
	rows, err := tx.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.TurfSlot
	for rows.Next() {
		var s model.TurfSlot
		if err := rows.Scan(&s.ID, &s.TurfID, &s.SlotID, &s.Price, &s.Enabled, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// UpdatePrice sets the price of one slot while enforcing turf
// ownership via the join.  Returns sql.ErrNoRows when the slot is not
// found or the turf is not owned by this admin.
func (r *SlotRepo) UpdatePrice(ctx context.Context, turfID, adminID uint64, slotID int, price int64) error {
	const q = `UPDATE turf_slots s
	           JOIN turfs t ON t.id = s.turf_id
	           SET s.price = ?
	           WHERE s.turf_id = ? AND s.slot_id = ? AND t.admin_id = ?`
	res, err := r.db.ExecContext(ctx, q, price, turfID, slotID, adminID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SetEnabled toggles one slot's enabled flag while enforcing turf
// ownership.  Disabling is refused with ErrLastEnabledSlot when it
// would leave the turf without any enabled slot; the whole check runs
// in a transaction so concurrent toggles cannot race past it.
func (r *SlotRepo) SetEnabled(ctx context.Context, turfID, adminID uint64, slotID int, enabled bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if !enabled {
		var enabledCount int
		const countQ = `SELECT COUNT(*) FROM turf_slots s
		                JOIN turfs t ON t.id = s.turf_id
		                WHERE s.turf_id = ? AND t.admin_id = ? AND s.enabled = 1 FOR UPDATE`
		if err := tx.QueryRowContext(ctx, countQ, turfID, adminID).Scan(&enabledCount); err != nil {
			return err
		}
		if enabledCount <= 1 {
			return ErrLastEnabledSlot
		}
	}

	const q = `UPDATE turf_slots s
	           JOIN turfs t ON t.id = s.turf_id
	           SET s.enabled = ?
	           WHERE s.turf_id = ? AND s.slot_id = ? AND t.admin_id = ?`
	res, err := tx.ExecContext(ctx, q, enabled, turfID, slotID, adminID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// ApplyMasterPrice sets one price on all currently-enabled slots of
// the turf in a single statement.  Returns the number of slots
// updated; zero means the turf is not owned by this admin or has no
// enabled slots.
func (r *SlotRepo) ApplyMasterPrice(ctx context.Context, turfID, adminID uint64, price int64) (int64, error) {
	const q = `UPDATE turf_slots s
	           JOIN turfs t ON t.id = s.turf_id
	           SET s.price = ?
	           WHERE s.turf_id = ? AND t.admin_id = ? AND s.enabled = 1`
	res, err := r.db.ExecContext(ctx, q, price, turfID, adminID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// placeholders returns n comma-separated "?" markers.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
