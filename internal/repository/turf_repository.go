package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/HITENDRAS940/turf-booking-api/internal/model"
)

// TurfRepo provides access to the turfs table.  Its DB handle is also
// the one handlers use to begin transactions spanning several
// repositories.
type TurfRepo struct {
	db *sql.DB
}

func NewTurfRepo(db *sql.DB) *TurfRepo { return &TurfRepo{db: db} }

// DB exposes the underlying handle for transaction management.
func (r *TurfRepo) DB() *sql.DB { return r.db }

const turfColumns = "id, admin_id, name, city, address, description, base_price, is_available, created_at, updated_at"

func scanTurf(scan func(dest ...any) error) (model.Turf, error) {
	var t model.Turf
	err := scan(&t.ID, &t.AdminID, &t.Name, &t.City, &t.Address,
		&t.Description, &t.BasePrice, &t.IsAvailable, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// CreateTx inserts a turf inside an existing transaction so the slot
// template seeding commits atomically with it.  On success the turf's
// ID is populated.
func (r *TurfRepo) CreateTx(ctx context.Context, tx *sql.Tx, t *model.Turf) error {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO turfs (admin_id, name, city, address, description, base_price) VALUES (?,?,?,?,?,?)`,
		t.AdminID, t.Name, t.City, t.Address, t.Description, t.BasePrice)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return nil
}

// GetByID retrieves a turf by its id (no ownership check).
func (r *TurfRepo) GetByID(ctx context.Context, id uint64) (model.Turf, error) {
	t, err := scanTurf(r.db.QueryRowContext(ctx,
		"SELECT "+turfColumns+" FROM turfs WHERE id=?", id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Turf{}, ErrTurfNotFound
	}
	return t, err
}

// GetByIDAndAdmin retrieves a turf by id while enforcing ownership.
// Returns ErrTurfNotFound when no such turf exists and ErrForbidden
// when it belongs to a different admin.
func (r *TurfRepo) GetByIDAndAdmin(ctx context.Context, id, adminID uint64) (model.Turf, error) {
	t, err := r.GetByID(ctx, id)
	if err != nil {
		return model.Turf{}, err
	}
	if t.AdminID != adminID {
		return model.Turf{}, ErrForbidden
	}
	return t, nil
}

// ListByCity returns available turfs in a city ordered by name.  An
// empty city returns every available turf.
func (r *TurfRepo) ListByCity(ctx context.Context, city string) ([]model.Turf, error) {
	q := "SELECT " + turfColumns + " FROM turfs WHERE is_available=1"
	args := []any{}
	if city != "" {
		q += " AND city=?"
		args = append(args, city)
	}
	q += " ORDER BY name"
	return r.list(ctx, q, args...)
}

// ListByAdmin returns all turfs managed by the given admin, including
// ones currently marked unavailable.
func (r *TurfRepo) ListByAdmin(ctx context.Context, adminID uint64) ([]model.Turf, error) {
	return r.list(ctx,
		"SELECT "+turfColumns+" FROM turfs WHERE admin_id=? ORDER BY name", adminID)
}

// ListAll returns every turf for the manager overview.
func (r *TurfRepo) ListAll(ctx context.Context) ([]model.Turf, error) {
	return r.list(ctx, "SELECT "+turfColumns+" FROM turfs ORDER BY city, name")
}

func (r *TurfRepo) list(ctx context.Context, q string, args ...any) ([]model.Turf, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Turf
	for rows.Next() {
		t, err := scanTurf(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// SetAvailability flips the turf-wide availability switch while
// enforcing ownership.  Returns sql.ErrNoRows when the turf is not
// found or not owned by this admin.
func (r *TurfRepo) SetAvailability(ctx context.Context, turfID, adminID uint64, available bool) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE turfs SET is_available=? WHERE id=? AND admin_id=?",
		available, turfID, adminID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// LowestPrice returns the minimum price among the turf's enabled
// slots.  ErrSlotUnavailable is returned when no slot is enabled.
func (r *TurfRepo) LowestPrice(ctx context.Context, turfID uint64) (int64, error) {
	var price sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		"SELECT MIN(price) FROM turf_slots WHERE turf_id=? AND enabled=1", turfID).Scan(&price)
	if err != nil {
		return 0, err
	}
	if !price.Valid {
		return 0, ErrSlotUnavailable
	}
	return price.Int64, nil
}
