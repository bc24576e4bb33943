package handler

import (
	"database/sql"
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

// AdminHandler serves the turf-management endpoints available to
// ADMIN accounts.  Every operation is scoped to turfs the caller
// owns; ownership violations surface as 403.
type AdminHandler struct {
	Turfs    *repository.TurfRepo
	Slots    *repository.SlotRepo
	Bookings *repository.BookingRepo
	Images   *repository.ImageRepo
}

func NewAdminHandler(t *repository.TurfRepo, s *repository.SlotRepo, b *repository.BookingRepo, i *repository.ImageRepo) *AdminHandler {
	return &AdminHandler{Turfs: t, Slots: s, Bookings: b, Images: i}
}

type createTurfReq struct {
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Address     string  `json:"address"`
	Description *string `json:"description"`
	BasePrice   int64   `json:"base_price"`
}

// CreateTurf registers a turf and seeds its 24-slot template at the
// base price, all in one transaction so a turf can never exist
// without its slots.
func (h *AdminHandler) CreateTurf(c echo.Context) error {
	adminID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createTurfReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.City = strings.TrimSpace(req.City)
	req.Address = strings.TrimSpace(req.Address)
	if req.Name == "" || req.City == "" || req.Address == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/city/address required"})
	}
	if req.BasePrice <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "base_price must be positive"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	tx, err := h.Turfs.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create turf failed"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	t := model.Turf{
		AdminID:     adminID,
		Name:        req.Name,
		City:        req.City,
		Address:     req.Address,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		IsAvailable: true,
	}
	if err := h.Turfs.CreateTx(ctx, tx, &t); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create turf failed"})
	}
	if err := h.Slots.SeedDefaultTx(ctx, tx, t.ID, t.BasePrice); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "seed slots failed"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create turf failed"})
	}
	committed = true

	return c.JSON(http.StatusCreated, toTurfResp(t))
}

// ListMyTurfs returns every turf owned by the calling admin.
func (h *AdminHandler) ListMyTurfs(c echo.Context) error {
	adminID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	turfs, err := h.Turfs.ListByAdmin(ctx, adminID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]turfResp, 0, len(turfs))
	for _, t := range turfs {
		out = append(out, toTurfResp(t))
	}
	return c.JSON(http.StatusOK, echo.Map{"turfs": out})
}

// ownedTurf loads a turf and verifies the caller owns it, writing the
// error response itself.  Returns ok=false when a response was
// already sent.
func (h *AdminHandler) ownedTurf(c echo.Context, param string) (model.Turf, uint64, bool) {
	adminID, err := getUserID(c)
	if err != nil {
		_ = c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		return model.Turf{}, 0, false
	}
	id := pathID(c, param)
	if id == 0 {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid turf id"})
		return model.Turf{}, 0, false
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	t, err := h.Turfs.GetByIDAndAdmin(ctx, id, adminID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTurfNotFound):
			_ = c.JSON(http.StatusNotFound, echo.Map{"error": "turf not found"})
		case errors.Is(err, repository.ErrForbidden):
			_ = c.JSON(http.StatusForbidden, echo.Map{"error": "not your turf"})
		default:
			_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
		return model.Turf{}, 0, false
	}
	return t, adminID, true
}

// ListBookings returns the fully joined bookings of an owned turf for
// a date, every status included.
func (h *AdminHandler) ListBookings(c echo.Context) error {
	t, _, ok := h.ownedTurf(c, "turfId")
	if !ok {
		return nil
	}
	date := c.QueryParam("date")
	if !validDate(date) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	details, err := h.Bookings.ListDetailsForDate(ctx, t.ID, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if details == nil {
		details = []repository.BookingDetail{}
	}
	return c.JSON(http.StatusOK, echo.Map{"turf_id": t.ID, "date": date, "bookings": details})
}

// Revenue returns the per-date aggregate for an owned turf: revenue
// and booking count over CONFIRMED and COMPLETED bookings plus the
// booked/available split of the enabled slots.
func (h *AdminHandler) Revenue(c echo.Context) error {
	t, _, ok := h.ownedTurf(c, "turfId")
	if !ok {
		return nil
	}
	date := c.QueryParam("date")
	if !validDate(date) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	slots, err := h.Slots.GetByTurf(ctx, t.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	bookings, err := h.Bookings.ListForDate(ctx, t.ID, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	booked := availability.BookedSlotIDs(bookings)
	merged := availability.MergeSlots(slots, booked, date, time.Now())
	agg := availability.Summarize(bookings, merged)

	return c.JSON(http.StatusOK, echo.Map{
		"turf_id":         t.ID,
		"date":            date,
		"total_revenue":   agg.TotalRevenue,
		"total_bookings":  agg.TotalBookings,
		"booked_slots":    agg.BookedSlots,
		"available_slots": agg.AvailableSlots,
	})
}

type priceReq struct {
	Price int64 `json:"price"`
}

func slotIDParam(c echo.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("slotId"))
	if err != nil || n < 1 || n > model.SlotsPerDay {
		return 0, false
	}
	return n, true
}

// UpdateSlotPrice sets the price of one slot on an owned turf.
// Already-made bookings keep their snapshotted amounts.
func (h *AdminHandler) UpdateSlotPrice(c echo.Context) error {
	adminID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	turfID := pathID(c, "turfId")
	slotID, ok := slotIDParam(c)
	if turfID == 0 || !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid turf or slot id"})
	}
	var req priceReq
	if err := c.Bind(&req); err != nil || req.Price <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price must be positive"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Slots.UpdatePrice(ctx, turfID, adminID, slotID, req.Price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "turf or slot not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"turf_id": turfID, "slot_id": slotID, "price": req.Price})
}

// UpdateAllSlotPrices applies one price to every enabled slot of an
// owned turf in a single statement, so a failure cannot leave the
// template half updated.
func (h *AdminHandler) UpdateAllSlotPrices(c echo.Context) error {
	adminID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	turfID := pathID(c, "turfId")
	if turfID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid turf id"})
	}
	var req priceReq
	if err := c.Bind(&req); err != nil || req.Price <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price must be positive"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	updated, err := h.Slots.ApplyMasterPrice(ctx, turfID, adminID, req.Price)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	if updated == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "turf not found or no enabled slots"})
	}
	return c.JSON(http.StatusOK, echo.Map{"turf_id": turfID, "price": req.Price, "updated_slots": updated})
}

func (h *AdminHandler) setSlotEnabled(c echo.Context, enabled bool) error {
	adminID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	turfID := pathID(c, "turfId")
	slotID, ok := slotIDParam(c)
	if turfID == 0 || !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid turf or slot id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Slots.SetEnabled(ctx, turfID, adminID, slotID, enabled); err != nil {
		switch {
		case errors.Is(err, repository.ErrLastEnabledSlot):
			return c.JSON(http.StatusConflict, echo.Map{"error": "cannot disable the last enabled slot"})
		case errors.Is(err, sql.ErrNoRows):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "turf or slot not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"turf_id": turfID, "slot_id": slotID, "enabled": enabled})
}

// EnableSlot re-enables a slot in the turf's template.
func (h *AdminHandler) EnableSlot(c echo.Context) error { return h.setSlotEnabled(c, true) }

// DisableSlot removes a slot from sale.  The last enabled slot cannot
// be disabled; a turf with zero sellable hours is switched off with
// MarkNotAvailable instead.
func (h *AdminHandler) DisableSlot(c echo.Context) error { return h.setSlotEnabled(c, false) }

func (h *AdminHandler) setAvailability(c echo.Context, available bool) error {
	adminID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	turfID := pathID(c, "turfId")
	if turfID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid turf id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Turfs.SetAvailability(ctx, turfID, adminID, available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "turf not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"turf_id": turfID, "is_available": available})
}

// MarkAvailable switches the whole turf back on for browsing and
// booking.
func (h *AdminHandler) MarkAvailable(c echo.Context) error { return h.setAvailability(c, true) }

// MarkNotAvailable hides the turf from availability; existing
// bookings are untouched.
func (h *AdminHandler) MarkNotAvailable(c echo.Context) error { return h.setAvailability(c, false) }

type imagesReq struct {
	URLs []string `json:"urls"`
}
type imageDeleteReq struct {
	URL string `json:"url"`
}

// AddImages registers gallery image URLs for an owned turf.
func (h *AdminHandler) AddImages(c echo.Context) error {
	adminID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	turfID := pathID(c, "turfId")
	if turfID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid turf id"})
	}
	var req imagesReq
	if err := c.Bind(&req); err != nil || len(req.URLs) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "urls required"})
	}
	for _, u := range req.URLs {
		if strings.TrimSpace(u) == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "urls must be non-empty"})
		}
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Images.Add(ctx, turfID, adminID, req.URLs); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "turf not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "add images failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"turf_id": turfID, "added": len(req.URLs)})
}

// DeleteImage removes one gallery image URL from an owned turf.
func (h *AdminHandler) DeleteImage(c echo.Context) error {
	adminID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	turfID := pathID(c, "turfId")
	if turfID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid turf id"})
	}
	var req imageDeleteReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "url required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Images.Delete(ctx, turfID, adminID, req.URL); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "image not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete image failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "image deleted"})
}
