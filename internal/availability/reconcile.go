package availability

import (
	"time"

	"github.com/HITENDRAS940/turf-booking-api/internal/model"
)

// DateLayout is the calendar-date form used throughout the API.
const DateLayout = "2006-01-02"

// ReconciledSlot is a turf slot annotated with render-time state for
// one date: whether any booking on that date references it, whether
// its hour has already elapsed (today only), and the resulting
// selectability.  It is derived per request and never persisted.
type ReconciledSlot struct {
	SlotID    int    `json:"slot_id"`
	Price     int64  `json:"price"`
	Enabled   bool   `json:"enabled"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Label     string `json:"label"`
	IsBooked  bool   `json:"is_booked"`
	IsPast    bool   `json:"is_past"`
	Available bool   `json:"available"`
}

// BookedSlotIDs flattens the slot references of every booking into a
// set of slot identifiers.  Bookings of any status contribute,
// including CANCELLED ones; availability handed to clients therefore
// matches what the backend reports for the date, not a filtered view.
func BookedSlotIDs(bookings []model.Booking) map[int]struct{} {
	ids := make(map[int]struct{})
	for _, b := range bookings {
		for _, s := range b.Slots {
			ids[s.SlotID] = struct{}{}
		}
	}
	return ids
}

// IsPastSlot reports whether the slot's hour has elapsed for the
// target date.  It is true only when date is today by local calendar
// day and the current hour is >= slotID-1; the boundary is inclusive,
// so a slot is past from the moment its hour begins.  Any non-today
// date, past or future, yields false.
func IsPastSlot(slotID int, date string, now time.Time) bool {
	if now.Format(DateLayout) != date {
		return false
	}
	return now.Hour() >= slotID-1
}

// MergeSlots joins a slot catalog with the booked-set for one date and
// returns a new list sorted by SlotID.  A past slot is forced
// unavailable regardless of its enabled flag, and Available is true
// only for slots that can actually be selected: enabled, not booked,
// not past.
func MergeSlots(slots []model.TurfSlot, booked map[int]struct{}, date string, now time.Time) []ReconciledSlot {
	sorted := SortSlots(slots)
	out := make([]ReconciledSlot, 0, len(sorted))
	for _, s := range sorted {
		_, isBooked := booked[s.SlotID]
		isPast := IsPastSlot(s.SlotID, date, now)
		start := SlotStartTime(s.SlotID)
		end := SlotEndTime(s.SlotID)
		out = append(out, ReconciledSlot{
			SlotID:    s.SlotID,
			Price:     s.Price,
			Enabled:   s.Enabled,
			StartTime: start,
			EndTime:   end,
			Label:     FormatSlotRange(start, end),
			IsBooked:  isBooked,
			IsPast:    isPast,
			Available: s.Enabled && !isBooked && !isPast,
		})
	}
	return out
}
