package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/HITENDRAS940/turf-booking-api/internal/availability"
	"github.com/HITENDRAS940/turf-booking-api/internal/model"
)

// BookingRepo provides access to bookings and their slot rows.
type BookingRepo struct {
	db *sql.DB
}

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying handle for transaction management.
func (r *BookingRepo) DB() *sql.DB { return r.db }

// BookingDetail is the fully joined view of a booking returned to
// admin and user listings.  For user bookings the customer fields
// carry the account holder's name and phone; for walk-ins they carry
// whatever the admin entered.
type BookingDetail struct {
	ID            uint64              `json:"id"`
	Reference     string              `json:"reference"`
	TurfID        uint64              `json:"turf_id"`
	TurfName      string              `json:"turf_name"`
	BookingDate   string              `json:"booking_date"`
	Status        string              `json:"status"`
	Amount        int64               `json:"amount"`
	WalkIn        bool                `json:"walk_in"`
	CustomerName  *string             `json:"customer_name,omitempty"`
	CustomerPhone *string             `json:"customer_phone,omitempty"`
	Slots         []BookingSlotDetail `json:"slots"`
	CreatedAt     time.Time           `json:"created_at"`
}

// BookingSlotDetail is one booked hour within a BookingDetail.
type BookingSlotDetail struct {
	SlotID int    `json:"slot_id"`
	Price  int64  `json:"price"`
	Label  string `json:"label"`
}

// ActiveSlotIDsTx locks and returns the slot ids covered by active
// (CONFIRMED or PENDING) bookings for the turf and date.  Booking
// creation runs this inside its transaction so two concurrent
// requests cannot both pass the conflict check.
func (r *BookingRepo) ActiveSlotIDsTx(ctx context.Context, tx *sql.Tx, turfID uint64, date string) ([]int, error) {
	const q = `SELECT bs.slot_id
	           FROM booking_slots bs
	           JOIN bookings b ON b.id = bs.booking_id
	           WHERE b.turf_id = ? AND b.booking_date = ? AND b.status IN ('CONFIRMED','PENDING')
	           FOR UPDATE`
	rows, err := tx.QueryContext(ctx, q, turfID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// CreateTx inserts a booking and its slot snapshots.  On success the
// booking's ID is populated.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO bookings (reference, turf_id, user_id, customer_name, customer_phone, booking_date, status, amount)
		 VALUES (?,?,?,?,?,?,?,?)`,
		b.Reference, b.TurfID, b.UserID, b.CustomerName, b.CustomerPhone, b.BookingDate, b.Status, b.Amount)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)

	if len(b.Slots) == 0 {
		return nil
	}
	q := `INSERT INTO booking_slots (booking_id, slot_id, price) VALUES `
	args := make([]any, 0, len(b.Slots)*3)
	for i, s := range b.Slots {
		if i > 0 {
			q += ","
		}
		q += "(?, ?, ?)"
		args = append(args, b.ID, s.SlotID, s.Price)
	}
	_, err = tx.ExecContext(ctx, q, args...)
	return err
}

// ListForDate returns every booking of a turf on one date with its
// slot rows, regardless of status.  The availability reconciler
// consumes this list unfiltered.
func (r *BookingRepo) ListForDate(ctx context.Context, turfID uint64, date string) ([]model.Booking, error) {
	const q = `SELECT id, reference, turf_id, user_id, customer_name, customer_phone,
	                  DATE_FORMAT(booking_date, '%Y-%m-%d'), status, amount, created_at, updated_at
	           FROM bookings WHERE turf_id = ? AND booking_date = ?
	           ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, q, turfID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.Reference, &b.TurfID, &b.UserID, &b.CustomerName,
			&b.CustomerPhone, &b.BookingDate, &b.Status, &b.Amount, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return r.attachSlots(ctx, out)
}

// attachSlots loads booking_slots for the given bookings in one query
// and distributes them.
func (r *BookingRepo) attachSlots(ctx context.Context, bookings []model.Booking) ([]model.Booking, error) {
	if len(bookings) == 0 {
		return bookings, nil
	}
	byID := make(map[uint64]*model.Booking, len(bookings))
	args := make([]any, 0, len(bookings))
	for i := range bookings {
		byID[bookings[i].ID] = &bookings[i]
		args = append(args, bookings[i].ID)
	}
	q := `SELECT id, booking_id, slot_id, price FROM booking_slots
	      WHERE booking_id IN (` + placeholders(len(bookings)) + `) ORDER BY slot_id`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s model.BookingSlot
		if err := rows.Scan(&s.ID, &s.BookingID, &s.SlotID, &s.Price); err != nil {
			return nil, err
		}
		if b, ok := byID[s.BookingID]; ok {
			b.Slots = append(b.Slots, s)
		}
	}
	return bookings, rows.Err()
}

// detailFromBooking shapes a model.Booking into the joined response
// form, substituting the account holder's contact for user bookings.
func detailFromBooking(b model.Booking, turfName string, userName, userPhone *string) BookingDetail {
	d := BookingDetail{
		ID:            b.ID,
		Reference:     b.Reference,
		TurfID:        b.TurfID,
		TurfName:      turfName,
		BookingDate:   b.BookingDate,
		Status:        b.Status,
		Amount:        b.Amount,
		WalkIn:        b.IsWalkIn(),
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CreatedAt:     b.CreatedAt,
	}
	if !d.WalkIn {
		d.CustomerName = userName
		d.CustomerPhone = userPhone
	}
	for _, s := range b.Slots {
		d.Slots = append(d.Slots, BookingSlotDetail{
			SlotID: s.SlotID,
			Price:  s.Price,
			Label:  availability.FormatSlotRange(availability.SlotStartTime(s.SlotID), availability.SlotEndTime(s.SlotID)),
		})
	}
	return d
}

// ListDetailsForDate returns the admin view of one turf's bookings on
// a date: every booking with slots and booker contact details.
func (r *BookingRepo) ListDetailsForDate(ctx context.Context, turfID uint64, date string) ([]BookingDetail, error) {
	bookings, err := r.ListForDate(ctx, turfID, date)
	if err != nil {
		return nil, err
	}
	return r.details(ctx, bookings)
}

// ListByUser returns a user's own bookings, newest first.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]BookingDetail, error) {
	const q = `SELECT id, reference, turf_id, user_id, customer_name, customer_phone,
	                  DATE_FORMAT(booking_date, '%Y-%m-%d'), status, amount, created_at, updated_at
	           FROM bookings WHERE user_id = ?
	           ORDER BY booking_date DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.Reference, &b.TurfID, &b.UserID, &b.CustomerName,
			&b.CustomerPhone, &b.BookingDate, &b.Status, &b.Amount, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if out, err = r.attachSlots(ctx, out); err != nil {
		return nil, err
	}
	return r.details(ctx, out)
}

// details resolves turf names and user contacts for a booking list.
func (r *BookingRepo) details(ctx context.Context, bookings []model.Booking) ([]BookingDetail, error) {
	out := make([]BookingDetail, 0, len(bookings))
	for _, b := range bookings {
		var turfName string
		if err := r.db.QueryRowContext(ctx, "SELECT name FROM turfs WHERE id=?", b.TurfID).Scan(&turfName); err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		var userName, userPhone *string
		if b.UserID != nil {
			if err := r.db.QueryRowContext(ctx, "SELECT name, phone FROM users WHERE id=?", *b.UserID).Scan(&userName, &userPhone); err != nil && !errors.Is(err, sql.ErrNoRows) {
				return nil, err
			}
		}
		out = append(out, detailFromBooking(b, turfName, userName, userPhone))
	}
	return out, nil
}

// GetByIDForUser fetches one booking with slots while enforcing that
// it belongs to the user.  Returns ErrBookingNotFound when missing and
// ErrForbidden when owned by someone else.
func (r *BookingRepo) GetByIDForUser(ctx context.Context, id, userID uint64) (model.Booking, error) {
	const q = `SELECT id, reference, turf_id, user_id, customer_name, customer_phone,
	                  DATE_FORMAT(booking_date, '%Y-%m-%d'), status, amount, created_at, updated_at
	           FROM bookings WHERE id = ?`
	var b model.Booking
	err := r.db.QueryRowContext(ctx, q, id).Scan(&b.ID, &b.Reference, &b.TurfID, &b.UserID,
		&b.CustomerName, &b.CustomerPhone, &b.BookingDate, &b.Status, &b.Amount, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, ErrBookingNotFound
	}
	if err != nil {
		return model.Booking{}, err
	}
	if b.UserID == nil || *b.UserID != userID {
		return model.Booking{}, ErrForbidden
	}
	loaded, err := r.attachSlots(ctx, []model.Booking{b})
	if err != nil {
		return model.Booking{}, err
	}
	return loaded[0], nil
}

// Cancel marks an active booking CANCELLED.  Returns sql.ErrNoRows
// when the booking is no longer active, so a concurrent cancel or the
// completion sweep cannot be overwritten.
func (r *BookingRepo) Cancel(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE bookings SET status=? WHERE id=? AND status IN (?,?)",
		model.BookingCancelled, id, model.BookingConfirmed, model.BookingPending)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CompleteElapsed marks CONFIRMED bookings whose date lies strictly
// before the given date as COMPLETED and returns how many rows were
// swept.  Invoked by the nightly cron.
func (r *BookingRepo) CompleteElapsed(ctx context.Context, before string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE bookings SET status=? WHERE status=? AND booking_date < ?",
		model.BookingCompleted, model.BookingConfirmed, before)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
