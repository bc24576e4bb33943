package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/HITENDRAS940/turf-booking-api/internal/model"
)

func TestTotalRevenueExcludesCancelled(t *testing.T) {
	bookings := []model.Booking{
		{Amount: 500, Status: "CONFIRMED"},
		{Amount: 300, Status: "CANCELLED"},
		{Amount: 700, Status: "COMPLETED"},
	}

	assert.Equal(t, int64(1200), TotalRevenue(bookings))
	assert.Equal(t, 2, CountConfirmed(bookings))
}

func TestTotalRevenueNormalizesStatusCase(t *testing.T) {
	bookings := []model.Booking{
		{Amount: 100, Status: "confirmed"},
		{Amount: 200, Status: " Completed "},
		{Amount: 400, Status: "pending"},
	}

	assert.Equal(t, int64(300), TotalRevenue(bookings))
	assert.Equal(t, 2, CountConfirmed(bookings))
}

func TestSummarizeEmptyInputs(t *testing.T) {
	assert.Equal(t, Aggregate{}, Summarize(nil, nil))
}

func TestSummarizeIgnoresDisabledSlots(t *testing.T) {
	slots := []ReconciledSlot{
		{SlotID: 1, Enabled: false, IsBooked: true},
		{SlotID: 2, Enabled: true},
	}
	agg := Summarize(nil, slots)

	assert.Equal(t, 0, agg.BookedSlots)
	assert.Equal(t, 1, agg.AvailableSlots)
}

// Full scenario: 24 default slots all enabled at price 1000, a single
// confirmed booking for slot 10 on the selected date.
func TestEndToEndAggregate(t *testing.T) {
	slots := make([]model.TurfSlot, 0, model.SlotsPerDay)
	for id := 1; id <= model.SlotsPerDay; id++ {
		slots = append(slots, model.TurfSlot{SlotID: id, Price: 1000, Enabled: true})
	}
	bookings := []model.Booking{{
		Amount:      1000,
		Status:      model.BookingConfirmed,
		BookingDate: "2026-09-01",
		Slots:       []model.BookingSlot{{SlotID: 10, Price: 1000}},
	}}

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)
	merged := MergeSlots(slots, BookedSlotIDs(bookings), "2026-09-01", now)
	agg := Summarize(bookings, merged)

	assert.Equal(t, 1, agg.BookedSlots)
	assert.Equal(t, 23, agg.AvailableSlots)
	assert.Equal(t, int64(1000), agg.TotalRevenue)
	assert.Equal(t, 1, agg.TotalBookings)
}
