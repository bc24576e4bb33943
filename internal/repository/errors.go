// Package repository implements data access over MySQL.  This file
// defines sentinel errors shared across repositories so handlers can
// translate failure scenarios into HTTP statuses: ErrForbidden maps to
// 403 when a caller touches a turf or booking owned by someone else,
// ErrSlotConflict maps to 409 when requested slots are already taken
// for the date.
package repository

import (
	"errors"
	"fmt"
)

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own.
var ErrForbidden = errors.New("forbidden")

// ErrTurfNotFound is returned when a turf lookup yields no rows.
var ErrTurfNotFound = errors.New("turf not found")

// ErrBookingNotFound is returned when a booking lookup yields no rows.
var ErrBookingNotFound = errors.New("booking not found")

// ErrSlotConflict is the sentinel for slot clashes.  Code that knows
// which slots clashed returns a *SlotConflictError instead; this
// sentinel exists so callers can match either with errors.Is.
var ErrSlotConflict = errors.New("slot already booked")

// SlotConflictError reports which requested slot ids are already
// covered by an active booking for the same turf and date.  The
// handler reports the conflicting ids alongside a 409.
type SlotConflictError struct {
	SlotIDs []int
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("slots already booked: %v", e.SlotIDs)
}

// Is makes errors.Is(err, ErrSlotConflict) hold for this type.
func (e *SlotConflictError) Is(target error) bool { return target == ErrSlotConflict }

// ErrSlotUnavailable is returned when a requested slot is disabled or
// does not exist in the turf's template.
var ErrSlotUnavailable = errors.New("slot unavailable")

// ErrLastEnabledSlot is returned when disabling a slot would leave the
// turf with no enabled slots at all.
var ErrLastEnabledSlot = errors.New("cannot disable the last enabled slot")
