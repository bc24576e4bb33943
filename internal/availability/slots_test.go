package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HITENDRAS940/turf-booking-api/internal/model"
)

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "12 AM", FormatTime("00:00:00"))
	assert.Equal(t, "9 AM", FormatTime("09:00:00"))
	assert.Equal(t, "12 PM", FormatTime("12:00:00"))
	assert.Equal(t, "1 PM", FormatTime("13:00:00"))
	assert.Equal(t, "2 PM", FormatTime("14:00:00"))
	assert.Equal(t, "11 PM", FormatTime("23:00:00"))
}

func TestFormatTimeMalformedInputPassesThrough(t *testing.T) {
	assert.Equal(t, "not-a-time", FormatTime("not-a-time"))
	assert.Equal(t, "25:00:00", FormatTime("25:00:00"))
	assert.Equal(t, "", FormatTime(""))
}

func TestFormatSlotRange(t *testing.T) {
	assert.Equal(t, "9 AM - 10 AM", FormatSlotRange("09:00:00", "10:00:00"))
	assert.Equal(t, "11 PM - 12 AM", FormatSlotRange("23:00:00", "00:00:00"))
}

func TestSlotBoundaries(t *testing.T) {
	assert.Equal(t, "00:00:00", SlotStartTime(1))
	assert.Equal(t, "01:00:00", SlotEndTime(1))
	assert.Equal(t, "23:00:00", SlotStartTime(24))
	// the last slot of the day wraps to midnight
	assert.Equal(t, "00:00:00", SlotEndTime(24))
}

func TestSortSlotsReturnsNewSortedSlice(t *testing.T) {
	in := []model.TurfSlot{{SlotID: 3}, {SlotID: 1}, {SlotID: 2}}
	out := SortSlots(in)

	assert.Equal(t, []int{1, 2, 3}, slotIDs(out))
	// input order untouched
	assert.Equal(t, []int{3, 1, 2}, slotIDs(in))
}

func TestSortSlotsIdempotent(t *testing.T) {
	in := []model.TurfSlot{{SlotID: 1}, {SlotID: 2}, {SlotID: 3}}
	out := SortSlots(in)

	assert.Equal(t, in, out)
	// a distinct array is returned even when already sorted
	assert.NotSame(t, &in[0], &out[0])
}

func slotIDs(slots []model.TurfSlot) []int {
	ids := make([]int, 0, len(slots))
	for _, s := range slots {
		ids = append(ids, s.SlotID)
	}
	return ids
}
