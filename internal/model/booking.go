package model

import "time"

// Booking status values.  A booking starts CONFIRMED (payment is out
// of scope), may be CANCELLED while its date has not elapsed, and is
// swept to COMPLETED by the nightly cron once the date has passed.
const (
	BookingConfirmed = "CONFIRMED"
	BookingPending   = "PENDING"
	BookingCancelled = "CANCELLED"
	BookingCompleted = "COMPLETED"
)

// Booking records a reservation of one or more slots on one date for
// one turf.  UserID is nil for walk-in bookings created by an admin on
// behalf of a customer; in that case CustomerName/CustomerPhone carry
// the contact details instead.
//
// Fields:
//  ID            - primary key identifier.
//  Reference     - short human-facing booking code.
//  TurfID        - turf being booked.
//  UserID        - booking user (nil for admin walk-ins).
//  CustomerName  - walk-in customer name (nil for user bookings).
//  CustomerPhone - walk-in customer phone (nil for user bookings).
//  BookingDate   - calendar date in YYYY-MM-DD form.
//  Status        - CONFIRMED | PENDING | CANCELLED | COMPLETED.
//  Amount        - total price, the sum of the slot price snapshots.
//  Slots         - slots covered by this booking with price snapshots.
//  CreatedAt     - creation timestamp.
//  UpdatedAt     - last update timestamp.
type Booking struct {
	ID            uint64        // bookings.id
	Reference     string        // bookings.reference
	TurfID        uint64        // bookings.turf_id
	UserID        *uint64       // bookings.user_id (nullable)
	CustomerName  *string       // bookings.customer_name (nullable)
	CustomerPhone *string       // bookings.customer_phone (nullable)
	BookingDate   string        // bookings.booking_date (date)
	Status        string        // bookings.status
	Amount        int64         // bookings.amount
	Slots         []BookingSlot // joined from booking_slots
	CreatedAt     time.Time     // bookings.created_at
	UpdatedAt     time.Time     // bookings.updated_at
}

// BookingSlot links a booking to one hourly slot and snapshots the
// price the slot had when the booking was made, so later re-pricing
// never changes historical amounts.
//
// Fields:
//  ID        - primary key identifier.
//  BookingID - reference to the booking.
//  SlotID    - hour-of-day identifier, 1..24.
//  Price     - price snapshot taken at booking time.
type BookingSlot struct {
	ID        uint64 // booking_slots.id
	BookingID uint64 // booking_slots.booking_id
	SlotID    int    // booking_slots.slot_id
	Price     int64  // booking_slots.price
}

// IsWalkIn reports whether the booking was created by an admin for a
// walk-in customer rather than through a user account.
func (b *Booking) IsWalkIn() bool {
	return b.UserID == nil
}
