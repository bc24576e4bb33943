// Package availability holds the pure slot reconciliation logic: time
// formatting, slot ordering, booked-set derivation, past-slot
// classification and revenue aggregation.  Nothing in this package
// performs I/O; every function is a deterministic function of its
// inputs and never mutates them.
package availability

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/HITENDRAS940/turf-booking-api/internal/model"
)

// SlotStartTime returns the wall-clock start of a slot as HH:MM:SS.
// Slot 1 starts at 00:00:00, slot 24 at 23:00:00.
func SlotStartTime(slotID int) string {
	return fmt.Sprintf("%02d:00:00", slotID-1)
}

// SlotEndTime returns the wall-clock end of a slot as HH:MM:SS.  The
// end of slot 24 wraps to 00:00:00.
func SlotEndTime(slotID int) string {
	return fmt.Sprintf("%02d:00:00", slotID%model.SlotsPerDay)
}

// FormatTime converts an HH:MM:SS time string into a 12-hour display
// label such as "9 AM" or "2 PM".  Hour 0 maps to "12 AM" and hour 12
// to "12 PM".  Malformed input is returned unchanged so a bad value
// shows up verbatim instead of disappearing.
func FormatTime(hms string) string {
	h, ok := parseHour(hms)
	if !ok {
		return hms
	}
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d %s", display, suffix)
}

// FormatSlotRange renders a start/end pair as "9 AM - 10 AM".
func FormatSlotRange(start, end string) string {
	return FormatTime(start) + " - " + FormatTime(end)
}

// SortSlots returns a new slice sorted ascending by SlotID.  The input
// slice is left untouched.  SlotIDs are unique 1..24 so ties cannot
// occur.
func SortSlots(slots []model.TurfSlot) []model.TurfSlot {
	out := make([]model.TurfSlot, len(slots))
	copy(out, slots)
	sort.Slice(out, func(i, j int) bool { return out[i].SlotID < out[j].SlotID })
	return out
}

// parseHour extracts the hour component from an HH:MM:SS string and
// validates it falls within 0..23.
func parseHour(hms string) (int, bool) {
	parts := strings.SplitN(hms, ":", 3)
	if len(parts) < 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	return h, true
}
