// Package handler contains the HTTP handlers for the turf booking
// API.  Handlers bind and validate input, delegate to repositories and
// the availability package, and shape JSON responses.  Business errors
// from the repository layer are translated into HTTP statuses here.
package handler

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/HITENDRAS940/turf-booking-api/internal/availability"
	"github.com/HITENDRAS940/turf-booking-api/internal/model"
)

// dbTimeout bounds every database round-trip started from a handler.
const dbTimeout = 5 * time.Second

func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// getUserID extracts the authenticated user's id from the context.
// JWT claims come back as float64 after JSON decoding, so several
// numeric shapes are accepted.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// pathID parses a numeric path parameter, returning 0 when it is
// missing or malformed.
func pathID(c echo.Context, name string) uint64 {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// validDate checks a YYYY-MM-DD date string.
func validDate(date string) bool {
	_, err := time.Parse(availability.DateLayout, date)
	return err == nil
}

// pastDate reports whether the date lies strictly before today's
// local calendar date.  Used to reject bookings and cancellations for
// elapsed days.
func pastDate(date string) bool {
	return date < time.Now().Format(availability.DateLayout)
}

// validSlotIDs checks that every id is within 1..24 and that there are
// no duplicates.
func validSlotIDs(ids []int) bool {
	if len(ids) == 0 {
		return false
	}
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if id < 1 || id > model.SlotsPerDay {
			return false
		}
		if _, dup := seen[id]; dup {
			return false
		}
		seen[id] = struct{}{}
	}
	return true
}
