package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HITENDRAS940/turf-booking-api/internal/availability"
)

func TestHealth(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, Health(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestGetUserIDAcceptsClaimShapes(t *testing.T) {
	e := echo.New()
	for _, v := range []any{uint64(7), int(7), int64(7), float64(7), "7"} {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.Set("user_id", v)
		got, err := getUserID(c)
		require.NoError(t, err)
		assert.Equal(t, uint64(7), got)
	}

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.Set("user_id", "not-a-number")
	_, err := getUserID(c)
	assert.Error(t, err)
}

func TestValidSlotIDs(t *testing.T) {
	assert.True(t, validSlotIDs([]int{1, 12, 24}))
	assert.False(t, validSlotIDs(nil), "empty selection")
	assert.False(t, validSlotIDs([]int{0}), "below range")
	assert.False(t, validSlotIDs([]int{25}), "above range")
	assert.False(t, validSlotIDs([]int{5, 5}), "duplicate")
}

func TestValidateBookingReq(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format(availability.DateLayout)
	yesterday := time.Now().AddDate(0, 0, -1).Format(availability.DateLayout)

	assert.Empty(t, validateBookingReq(createBookingReq{TurfID: 1, Date: tomorrow, SlotIDs: []int{3, 4}}))

	assert.NotEmpty(t, validateBookingReq(createBookingReq{Date: tomorrow, SlotIDs: []int{3}}), "missing turf")
	assert.NotEmpty(t, validateBookingReq(createBookingReq{TurfID: 1, Date: "31-12-2026", SlotIDs: []int{3}}), "bad date format")
	assert.NotEmpty(t, validateBookingReq(createBookingReq{TurfID: 1, Date: yesterday, SlotIDs: []int{3}}), "elapsed date")
	assert.NotEmpty(t, validateBookingReq(createBookingReq{TurfID: 1, Date: tomorrow, SlotIDs: []int{}}), "no slots")
}

func TestValidateBookingReqRejectsElapsedSlotToday(t *testing.T) {
	today := time.Now().Format(availability.DateLayout)
	// Slot 1 covers midnight..01:00 and counts as started from hour 0,
	// so it can never be booked for the current day.
	assert.NotEmpty(t, validateBookingReq(createBookingReq{TurfID: 1, Date: today, SlotIDs: []int{1}}))
}
