package repository

import (
	"context"
	"strings"
)

// TurfSearchQuery defines the filters for availability search: which
// date and hour the user wants to play, optionally narrowed to a city.
type TurfSearchQuery struct {
	Date   string // YYYY-MM-DD
	SlotID int    // 1..24
	City   string // optional, case-insensitive exact match
}

// AvailableTurfRow is one search hit: a turf whose requested slot is
// enabled and not covered by any active booking on the date.
type AvailableTurfRow struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	City      string `json:"city"`
	Address   string `json:"address"`
	SlotID    int    `json:"slot_id"`
	SlotPrice int64  `json:"slot_price"`
}

// SearchByAvailability returns the available turfs matching the query
// ordered by slot price.  A slot is available when it is enabled in
// the turf template and no CONFIRMED or PENDING booking references it
// for the date; bookings of other statuses do not block a search hit.
func (r *TurfRepo) SearchByAvailability(ctx context.Context, q TurfSearchQuery) ([]AvailableTurfRow, error) {
	where := []string{
		"t.is_available = 1",
		"s.slot_id = ?",
		"s.enabled = 1",
	}
	args := []any{q.SlotID}

	if q.City != "" {
		where = append(where, "LOWER(t.city) = ?")
		args = append(args, strings.ToLower(q.City))
	}

	sqlQ := `SELECT t.id, t.name, t.city, t.address, s.slot_id, s.price
		FROM turfs t
		JOIN turf_slots s ON s.turf_id = t.id
		WHERE ` + strings.Join(where, " AND ") + `
		AND NOT EXISTS (
			SELECT 1 FROM booking_slots bs
			JOIN bookings b ON b.id = bs.booking_id
			WHERE b.turf_id = t.id
			  AND b.booking_date = ?
			  AND bs.slot_id = s.slot_id
			  AND b.status IN ('CONFIRMED','PENDING')
		)
		ORDER BY s.price ASC, t.name ASC`
	args = append(args, q.Date)

	rows, err := r.db.QueryContext(ctx, sqlQ, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []AvailableTurfRow{}
	for rows.Next() {
		var row AvailableTurfRow
		if err := rows.Scan(&row.ID, &row.Name, &row.City, &row.Address, &row.SlotID, &row.SlotPrice); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
