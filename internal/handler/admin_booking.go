package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/HITENDRAS940/turf-booking-api/internal/repository"
)

type walkInReq struct {
	Date          string `json:"date"`
	SlotIDs       []int  `json:"slot_ids"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
}

// CreateWalkIn books slots on an owned turf for a customer who showed
// up without an account.  The booking carries no user id; the contact
// details entered by the admin are stored instead.  The same
// transactional core as user bookings applies, so a walk-in and an
// online booking can never take the same slot.
func (h *BookingHandler) CreateWalkIn(c echo.Context) error {
	adminID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	turfID := pathID(c, "turfId")
	if turfID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid turf id"})
	}

	var req walkInReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	if req.CustomerName == "" || req.CustomerPhone == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "customer_name/customer_phone required"})
	}
	if msg := validateBookingReq(createBookingReq{TurfID: turfID, Date: req.Date, SlotIDs: req.SlotIDs}); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	t, err := h.Turfs.GetByIDAndAdmin(ctx, turfID, adminID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTurfNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "turf not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "not your turf"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	b, err := h.createBooking(ctx, bookingInput{
		turf:          t,
		date:          req.Date,
		slotIDs:       req.SlotIDs,
		customerName:  &req.CustomerName,
		customerPhone: &req.CustomerPhone,
	})
	if err != nil {
		return bookingError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"id":             b.ID,
		"reference":      b.Reference,
		"turf_id":        b.TurfID,
		"date":           b.BookingDate,
		"status":         b.Status,
		"amount":         b.Amount,
		"customer_name":  req.CustomerName,
		"customer_phone": req.CustomerPhone,
		"walk_in":        true,
	})
}
