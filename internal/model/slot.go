package model

import "time"

// SlotsPerDay is the fixed number of hourly slots every turf exposes
// per day.  Slot N covers wall-clock hour N-1 to N, so slot 1 is
// midnight to 1 AM and slot 24 is 11 PM to midnight.
const SlotsPerDay = 24

// TurfSlot is one hour-of-day entry in a turf's slot template.  The
// SlotID (1-24) is a stable hour identifier, not a database row id.
// Slots are seeded when a turf is created and afterwards only toggled
// or re-priced, never deleted.
//
// Fields:
//  ID        - primary key identifier of the template row.
//  TurfID    - turf this slot belongs to.
//  SlotID    - hour-of-day identifier, 1..24.
//  Price     - hourly price for this slot.
//  Enabled   - admin-controlled availability flag.
//  UpdatedAt - timestamp of last price/enable change.
type TurfSlot struct {
	ID        uint64    // turf_slots.id
	TurfID    uint64    // turf_slots.turf_id
	SlotID    int       // turf_slots.slot_id (1..24)
	Price     int64     // turf_slots.price
	Enabled   bool      // turf_slots.enabled
	UpdatedAt time.Time // turf_slots.updated_at
}
