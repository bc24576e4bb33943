package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/HITENDRAS940/turf-booking-api/internal/model"
)

func bookingWithSlots(status string, slotIDs ...int) model.Booking {
	b := model.Booking{Status: status}
	for _, id := range slotIDs {
		b.Slots = append(b.Slots, model.BookingSlot{SlotID: id})
	}
	return b
}

func TestBookedSlotIDs(t *testing.T) {
	bookings := []model.Booking{
		bookingWithSlots(model.BookingConfirmed, 3),
		bookingWithSlots(model.BookingConfirmed, 5, 6),
	}
	ids := BookedSlotIDs(bookings)

	assert.Len(t, ids, 3)
	assert.Contains(t, ids, 3)
	assert.Contains(t, ids, 5)
	assert.Contains(t, ids, 6)
}

func TestBookedSlotIDsEmpty(t *testing.T) {
	assert.Empty(t, BookedSlotIDs(nil))
	assert.Empty(t, BookedSlotIDs([]model.Booking{}))
}

func TestBookedSlotIDsIsStatusAgnostic(t *testing.T) {
	// cancelled bookings still mark their slots booked in the display
	// view; only the booking path filters by status
	bookings := []model.Booking{bookingWithSlots(model.BookingCancelled, 7)}
	assert.Contains(t, BookedSlotIDs(bookings), 7)
}

func TestIsPastSlotBoundary(t *testing.T) {
	// slot 5 covers hour 4-5; at exactly 04:00 it is already past
	now := time.Date(2026, 8, 28, 4, 0, 0, 0, time.Local)
	today := now.Format(DateLayout)

	assert.True(t, IsPastSlot(5, today, now))
	assert.False(t, IsPastSlot(6, today, now))
	assert.True(t, IsPastSlot(1, today, now))
}

func TestIsPastSlotNonTodayAlwaysFalse(t *testing.T) {
	now := time.Date(2026, 8, 28, 23, 30, 0, 0, time.Local)

	assert.False(t, IsPastSlot(1, "2026-08-29", now))
	assert.False(t, IsPastSlot(24, "2026-08-29", now))
	// past dates are a display concern only, never classified past
	assert.False(t, IsPastSlot(1, "2026-08-27", now))
}

func TestMergeSlots(t *testing.T) {
	slots := []model.TurfSlot{
		{SlotID: 1, Price: 1000, Enabled: true},
		{SlotID: 2, Price: 1000, Enabled: true},
		{SlotID: 3, Price: 1000, Enabled: true},
	}
	booked := map[int]struct{}{2: {}}
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.Local)

	merged := MergeSlots(slots, booked, "2026-09-01", now)

	assert.Len(t, merged, 3)
	assert.False(t, merged[0].IsBooked)
	assert.True(t, merged[1].IsBooked)
	assert.False(t, merged[2].IsBooked)
	assert.True(t, merged[0].Available)
	assert.False(t, merged[1].Available)

	agg := Summarize(nil, merged)
	assert.Equal(t, 1, agg.BookedSlots)
	assert.Equal(t, 2, agg.AvailableSlots)
}

func TestMergeSlotsPastForcesUnavailable(t *testing.T) {
	slots := []model.TurfSlot{{SlotID: 1, Enabled: true}, {SlotID: 20, Enabled: true}}
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.Local)
	today := now.Format(DateLayout)

	merged := MergeSlots(slots, nil, today, now)

	assert.True(t, merged[0].IsPast)
	assert.False(t, merged[0].Available)
	assert.False(t, merged[1].IsPast)
	assert.True(t, merged[1].Available)
}

func TestMergeSlotsSortsAndLabels(t *testing.T) {
	slots := []model.TurfSlot{{SlotID: 10, Enabled: true}, {SlotID: 2, Enabled: true}}
	merged := MergeSlots(slots, nil, "2026-09-01", time.Now())

	assert.Equal(t, 2, merged[0].SlotID)
	assert.Equal(t, 10, merged[1].SlotID)
	assert.Equal(t, "9 AM - 10 AM", merged[1].Label)
}
