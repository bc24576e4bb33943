package availability

import (
	"strings"

	"github.com/HITENDRAS940/turf-booking-api/internal/model"
)

// Aggregate is the derived revenue and utilization summary for one
// turf and date.  Recomputed on every request; empty inputs yield the
// zero value.
type Aggregate struct {
	TotalRevenue   int64 `json:"total_revenue"`
	TotalBookings  int   `json:"total_bookings"`
	BookedSlots    int   `json:"booked_slots"`
	AvailableSlots int   `json:"available_slots"`
}

// countsTowardRevenue reports whether a booking's status, case
// normalized, contributes to revenue.  Only CONFIRMED and COMPLETED
// bookings count; PENDING and CANCELLED do not.
func countsTowardRevenue(status string) bool {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case model.BookingConfirmed, model.BookingCompleted:
		return true
	}
	return false
}

// TotalRevenue sums the amounts of revenue-counting bookings.
func TotalRevenue(bookings []model.Booking) int64 {
	var total int64
	for _, b := range bookings {
		if countsTowardRevenue(b.Status) {
			total += b.Amount
		}
	}
	return total
}

// CountConfirmed counts revenue-counting bookings, i.e. the same
// filtered set TotalRevenue sums over.
func CountConfirmed(bookings []model.Booking) int {
	n := 0
	for _, b := range bookings {
		if countsTowardRevenue(b.Status) {
			n++
		}
	}
	return n
}

// Summarize aggregates bookings and a reconciled slot view into the
// revenue summary.  Slot utilization counts only enabled slots: a
// disabled slot is neither booked nor available.
func Summarize(bookings []model.Booking, slots []ReconciledSlot) Aggregate {
	agg := Aggregate{
		TotalRevenue:  TotalRevenue(bookings),
		TotalBookings: CountConfirmed(bookings),
	}
	for _, s := range slots {
		if !s.Enabled {
			continue
		}
		if s.IsBooked {
			agg.BookedSlots++
		} else {
			agg.AvailableSlots++
		}
	}
	return agg
}
