// Package queue defines message payloads exchanged over the message
// broker and the background consumer that records them.
package queue

// Queue names used on the default exchange.
const (
	BookingConfirmedQueue = "booking.confirmed"
	BookingCancelledQueue = "booking.cancelled"
)

// BookingEvent is published when a booking is confirmed or cancelled.
// It carries enough information for downstream consumers to log,
// notify or feed analytics without querying the primary database.
type BookingEvent struct {
	BookingID   uint64 `json:"booking_id"`
	Reference   string `json:"reference"`
	TurfID      uint64 `json:"turf_id"`
	TurfName    string `json:"turf_name"`
	City        string `json:"city"`
	BookingDate string `json:"booking_date"`
	SlotIDs     []int  `json:"slot_ids"`
	Amount      int64  `json:"amount"`
	WalkIn      bool   `json:"walk_in"`
	OccurredAt  string `json:"occurred_at"`
}
