package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/HITENDRAS940/turf-booking-api/internal/availability"
	"github.com/HITENDRAS940/turf-booking-api/internal/model"
	"github.com/HITENDRAS940/turf-booking-api/internal/queue"
	"github.com/HITENDRAS940/turf-booking-api/internal/repository"
	"github.com/HITENDRAS940/turf-booking-api/internal/service"
	"github.com/HITENDRAS940/turf-booking-api/internal/utils"
)

// BookingHandler serves the authenticated user's booking endpoints and
// owns the shared creation core also used for admin walk-ins.
type BookingHandler struct {
	Turfs    *repository.TurfRepo
	Slots    *repository.SlotRepo
	Bookings *repository.BookingRepo
}

func NewBookingHandler(t *repository.TurfRepo, s *repository.SlotRepo, b *repository.BookingRepo) *BookingHandler {
	return &BookingHandler{Turfs: t, Slots: s, Bookings: b}
}

type createBookingReq struct {
	TurfID  uint64 `json:"turf_id"`
	Date    string `json:"date"`
	SlotIDs []int  `json:"slot_ids"`
}

// bookingInput is the normalized input to the shared creation core.
// Exactly one of userID or the customer fields is set.
type bookingInput struct {
	turf          model.Turf
	date          string
	slotIDs       []int
	userID        *uint64
	customerName  *string
	customerPhone *string
}

// createBooking runs the whole reservation inside one transaction:
// lock the slot template rows, verify each requested slot is enabled,
// lock the active bookings for the date and reject overlaps, snapshot
// prices, then insert the booking as CONFIRMED.  Row locks make two
// concurrent requests for the same slot serialize; the loser sees the
// winner's row and gets a SlotConflictError naming the clashes.
func (h *BookingHandler) createBooking(ctx context.Context, in bookingInput) (model.Booking, error) {
	tx, err := h.Bookings.DB().BeginTx(ctx, nil)
	if err != nil {
		return model.Booking{}, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	slots, err := h.Slots.GetForUpdateTx(ctx, tx, in.turf.ID, in.slotIDs)
	if err != nil {
		return model.Booking{}, err
	}
	if len(slots) != len(in.slotIDs) {
		return model.Booking{}, repository.ErrSlotUnavailable
	}
	priceBySlot := make(map[int]int64, len(slots))
	for _, s := range slots {
		if !s.Enabled {
			return model.Booking{}, repository.ErrSlotUnavailable
		}
		priceBySlot[s.SlotID] = s.Price
	}

	active, err := h.Bookings.ActiveSlotIDsTx(ctx, tx, in.turf.ID, in.date)
	if err != nil {
		return model.Booking{}, err
	}
	taken := make(map[int]struct{}, len(active))
	for _, id := range active {
		taken[id] = struct{}{}
	}
	var clashes []int
	for _, id := range in.slotIDs {
		if _, clash := taken[id]; clash {
			clashes = append(clashes, id)
		}
	}
	if len(clashes) > 0 {
		return model.Booking{}, &repository.SlotConflictError{SlotIDs: clashes}
	}

	ref, err := utils.NewBookingReference()
	if err != nil {
		return model.Booking{}, err
	}

	b := model.Booking{
		Reference:     ref,
		TurfID:        in.turf.ID,
		UserID:        in.userID,
		CustomerName:  in.customerName,
		CustomerPhone: in.customerPhone,
		BookingDate:   in.date,
		Status:        model.BookingConfirmed,
	}
	for _, id := range in.slotIDs {
		price := priceBySlot[id]
		b.Amount += price
		b.Slots = append(b.Slots, model.BookingSlot{SlotID: id, Price: price})
	}

	if err := h.Bookings.CreateTx(ctx, tx, &b); err != nil {
		return model.Booking{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Booking{}, err
	}
	committed = true

	go h.publishEvent(queue.BookingConfirmedQueue, in.turf, b)
	return b, nil
}

// publishEvent sends a booking event to the broker.  Best-effort: any
// failure is already logged by the publisher and never affects the
// request that triggered it.
func (h *BookingHandler) publishEvent(queueName string, t model.Turf, b model.Booking) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	slotIDs := make([]int, 0, len(b.Slots))
	for _, s := range b.Slots {
		slotIDs = append(slotIDs, s.SlotID)
	}
	_ = service.PublishBookingEvent(ctx, queueName, queue.BookingEvent{
		BookingID:   b.ID,
		Reference:   b.Reference,
		TurfID:      t.ID,
		TurfName:    t.Name,
		City:        t.City,
		BookingDate: b.BookingDate,
		SlotIDs:     slotIDs,
		Amount:      b.Amount,
		WalkIn:      b.IsWalkIn(),
		OccurredAt:  time.Now().UTC().Format(time.RFC3339),
	})
}

// validateBookingReq runs the checks shared by user and walk-in
// creation.  It returns an error message for the 400 response, or ""
// when the request is well-formed.
func validateBookingReq(req createBookingReq) string {
	if req.TurfID == 0 {
		return "turf_id required"
	}
	if !validDate(req.Date) {
		return "date must be YYYY-MM-DD"
	}
	if pastDate(req.Date) {
		return "date has passed"
	}
	if !validSlotIDs(req.SlotIDs) {
		return "slot_ids must be unique values in 1..24"
	}
	now := time.Now()
	for _, id := range req.SlotIDs {
		if availability.IsPastSlot(id, req.Date, now) {
			return "slot time has passed"
		}
	}
	return ""
}

// bookingError maps creation-core errors to HTTP responses.  Slot
// conflicts answer 409 and name the clashing slot ids so the client
// can re-render its slot grid without another availability call.
func bookingError(c echo.Context, err error) error {
	var conflict *repository.SlotConflictError
	switch {
	case errors.As(err, &conflict):
		return c.JSON(http.StatusConflict, echo.Map{
			"error":                "one or more slots already booked",
			"conflicting_slot_ids": conflict.SlotIDs,
		})
	case errors.Is(err, repository.ErrSlotUnavailable):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "one or more slots unavailable"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
	}
}

// CreateBooking books one or more slots for the authenticated user.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := validateBookingReq(req); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	t, err := h.Turfs.GetByID(ctx, req.TurfID)
	if err != nil {
		if errors.Is(err, repository.ErrTurfNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "turf not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !t.IsAvailable {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "turf not available"})
	}

	b, err := h.createBooking(ctx, bookingInput{
		turf:    t,
		date:    req.Date,
		slotIDs: req.SlotIDs,
		userID:  &uid,
	})
	if err != nil {
		return bookingError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"id":        b.ID,
		"reference": b.Reference,
		"turf_id":   b.TurfID,
		"date":      b.BookingDate,
		"status":    b.Status,
		"amount":    b.Amount,
	})
}

// ListMyBookings returns the authenticated user's bookings, newest
// first, with turf names and slot labels.
func (h *BookingHandler) ListMyBookings(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	details, err := h.Bookings.ListByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if details == nil {
		details = []repository.BookingDetail{}
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": details})
}

// bookingElapsed reports whether the booking's playing time is over:
// either the date itself has passed, or it is today and the hour of
// the last booked slot has already started.  A same-day booking stays
// cancellable only while at least its final slot is still ahead.
func bookingElapsed(b model.Booking, now time.Time) bool {
	if b.BookingDate < now.Format(availability.DateLayout) {
		return true
	}
	last := 0
	for _, s := range b.Slots {
		if s.SlotID > last {
			last = s.SlotID
		}
	}
	return last > 0 && availability.IsPastSlot(last, b.BookingDate, now)
}

// CancelBooking cancels the authenticated user's own booking.  Only
// CONFIRMED or PENDING bookings whose time has not elapsed can be
// cancelled.
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	b, err := h.Bookings.GetByIDForUser(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "not your booking"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if bookingElapsed(b, time.Now()) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "booking time has passed"})
	}

	if err := h.Bookings.Cancel(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "booking cannot be cancelled"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel failed"})
	}

	if t, err := h.Turfs.GetByID(ctx, b.TurfID); err == nil {
		b.Status = model.BookingCancelled
		go h.publishEvent(queue.BookingCancelledQueue, t, b)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "booking cancelled", "reference": b.Reference})
}
