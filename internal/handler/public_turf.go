package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/HITENDRAS940/turf-booking-api/internal/availability"
	"github.com/HITENDRAS940/turf-booking-api/internal/model"
	"github.com/HITENDRAS940/turf-booking-api/internal/repository"
)

// PublicHandler serves the unauthenticated browse endpoints: turf
// listings, per-date slot availability and availability search.
type PublicHandler struct {
	Turfs    *repository.TurfRepo
	Slots    *repository.SlotRepo
	Bookings *repository.BookingRepo
	Images   *repository.ImageRepo
}

func NewPublicHandler(t *repository.TurfRepo, s *repository.SlotRepo, b *repository.BookingRepo, i *repository.ImageRepo) *PublicHandler {
	return &PublicHandler{Turfs: t, Slots: s, Bookings: b, Images: i}
}

type turfResp struct {
	ID          uint64   `json:"id"`
	Name        string   `json:"name"`
	City        string   `json:"city"`
	Address     string   `json:"address"`
	Description *string  `json:"description,omitempty"`
	BasePrice   int64    `json:"base_price"`
	IsAvailable bool     `json:"is_available"`
	Images      []string `json:"images,omitempty"`
	LowestPrice *int64   `json:"lowest_price,omitempty"`
}

func toTurfResp(t model.Turf) turfResp {
	return turfResp{
		ID:          t.ID,
		Name:        t.Name,
		City:        t.City,
		Address:     t.Address,
		Description: t.Description,
		BasePrice:   t.BasePrice,
		IsAvailable: t.IsAvailable,
	}
}

// ListTurfs returns turfs filtered by the required city query
// parameter.  The match is case-insensitive and exact.
func (h *PublicHandler) ListTurfs(c echo.Context) error {
	city := strings.TrimSpace(c.QueryParam("city"))
	if city == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "city is required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	turfs, err := h.Turfs.ListByCity(ctx, city)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]turfResp, 0, len(turfs))
	for _, t := range turfs {
		out = append(out, toTurfResp(t))
	}
	return c.JSON(http.StatusOK, echo.Map{"turfs": out})
}

// GetTurf returns one turf with its image gallery and the lowest
// enabled slot price.
func (h *PublicHandler) GetTurf(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid turf id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	t, err := h.Turfs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTurfNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "turf not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	resp := toTurfResp(t)
	if imgs, err := h.Images.ListByTurf(ctx, id); err == nil {
		resp.Images = imgs
	}
	if low, err := h.Turfs.LowestPrice(ctx, id); err == nil {
		resp.LowestPrice = &low
	}
	return c.JSON(http.StatusOK, resp)
}

// GetLowestPrice returns the cheapest enabled slot price for a turf.
// 404 when the turf does not exist or has no enabled slots.
func (h *PublicHandler) GetLowestPrice(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid turf id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Turfs.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTurfNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "turf not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	low, err := h.Turfs.LowestPrice(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSlotUnavailable) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no enabled slots"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"turf_id": id, "lowest_price": low})
}

// GetAvailability returns the reconciled 24-slot view of a turf for a
// date: each slot with its price, display label, booked flag and final
// availability.  Bookings of any status mark a slot booked in this
// view; past hours on today's date are forced unavailable; when the
// whole turf is switched off every slot reads unavailable.
func (h *PublicHandler) GetAvailability(c echo.Context) error {
	turfID := pathID(c, "turfId")
	if turfID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid turf id"})
	}
	date := c.QueryParam("date")
	if !validDate(date) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	t, err := h.Turfs.GetByID(ctx, turfID)
	if err != nil {
		if errors.Is(err, repository.ErrTurfNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "turf not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	slots, err := h.Slots.GetByTurf(ctx, turfID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	bookings, err := h.Bookings.ListForDate(ctx, turfID, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	booked := availability.BookedSlotIDs(bookings)
	merged := availability.MergeSlots(slots, booked, date, time.Now())
	if !t.IsAvailable {
		for i := range merged {
			merged[i].Available = false
		}
	}

	var bookedCount, availableCount int
	for _, s := range merged {
		if !s.Enabled {
			continue
		}
		if s.IsBooked {
			bookedCount++
		} else {
			availableCount++
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"turf_id":         turfID,
		"date":            date,
		"slots":           merged,
		"booked_slots":    bookedCount,
		"available_slots": availableCount,
	})
}

// SearchByAvailability lists turfs whose given slot is free on the
// given date, cheapest first.  Query params: date (required), slotId
// (required, 1..24), city (optional).
func (h *PublicHandler) SearchByAvailability(c echo.Context) error {
	date := c.QueryParam("date")
	if !validDate(date) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}
	slotID, err := strconv.Atoi(c.QueryParam("slotId"))
	if err != nil || slotID < 1 || slotID > model.SlotsPerDay {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "slotId must be 1..24"})
	}
	// A past hour can never be booked, so searching for it is empty by
	// definition.
	if pastDate(date) || availability.IsPastSlot(slotID, date, time.Now()) {
		return c.JSON(http.StatusOK, echo.Map{"turfs": []repository.AvailableTurfRow{}})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	rows, err := h.Turfs.SearchByAvailability(ctx, repository.TurfSearchQuery{
		Date:   date,
		SlotID: slotID,
		City:   strings.TrimSpace(c.QueryParam("city")),
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if rows == nil {
		rows = []repository.AvailableTurfRow{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"date":    date,
		"slot_id": slotID,
		"label":   availability.FormatSlotRange(availability.SlotStartTime(slotID), availability.SlotEndTime(slotID)),
		"turfs":   rows,
	})
}
