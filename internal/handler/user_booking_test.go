package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HITENDRAS940/turf-booking-api/internal/availability"
	"github.com/HITENDRAS940/turf-booking-api/internal/model"
	"github.com/HITENDRAS940/turf-booking-api/internal/repository"
)

func TestBookingElapsed(t *testing.T) {
	now := time.Date(2026, time.March, 14, 10, 30, 0, 0, time.Local)
	today := now.Format(availability.DateLayout)
	tomorrow := now.AddDate(0, 0, 1).Format(availability.DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(availability.DateLayout)

	booking := func(date string, slotIDs ...int) model.Booking {
		b := model.Booking{BookingDate: date}
		for _, id := range slotIDs {
			b.Slots = append(b.Slots, model.BookingSlot{SlotID: id})
		}
		return b
	}

	assert.True(t, bookingElapsed(booking(yesterday, 20), now), "past date")
	assert.False(t, bookingElapsed(booking(tomorrow, 1), now), "future date")

	// Slot 9 covers 08:00-09:00, already started by 10:30 even though
	// the booking date itself has not passed.
	assert.True(t, bookingElapsed(booking(today, 8, 9), now), "same day, all slots started")

	// Slot 12 covers 11:00-12:00 and is still ahead at 10:30, so the
	// booking as a whole remains cancellable.
	assert.False(t, bookingElapsed(booking(today, 9, 12), now), "same day, last slot ahead")
}

func TestBookingErrorReportsConflictingSlots(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/v1/bookings/user", nil), rec)

	err := fmt.Errorf("create booking: %w", &repository.SlotConflictError{SlotIDs: []int{5, 6}})
	require.NoError(t, bookingError(c, err))
	assert.Equal(t, http.StatusConflict, rec.Code)

	var body struct {
		Error              string `json:"error"`
		ConflictingSlotIDs []int  `json:"conflicting_slot_ids"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "one or more slots already booked", body.Error)
	assert.Equal(t, []int{5, 6}, body.ConflictingSlotIDs)

	// The typed error still matches the package sentinel.
	assert.ErrorIs(t, err, repository.ErrSlotConflict)
}
