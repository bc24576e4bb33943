package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/HITENDRAS940/turf-booking-api/internal/config"
	"github.com/HITENDRAS940/turf-booking-api/internal/model"
	"github.com/HITENDRAS940/turf-booking-api/internal/repository"
)

// ManagerHandler serves the MANAGER endpoints: admin account
// lifecycle and platform-wide turf listing.
type ManagerHandler struct {
	Cfg    config.Config
	Users  *repository.UserRepo
	Tokens *repository.TokenRepo
	Turfs  *repository.TurfRepo
}

func NewManagerHandler(cfg config.Config, u *repository.UserRepo, tok *repository.TokenRepo, t *repository.TurfRepo) *ManagerHandler {
	return &ManagerHandler{Cfg: cfg, Users: u, Tokens: tok, Turfs: t}
}

type createAdminReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type adminResp struct {
	ID    uint64  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
	Role  string  `json:"role"`
}

func toAdminResp(u model.User) adminResp {
	return adminResp{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone, Role: u.Role}
}

// CreateAdmin provisions an ADMIN account owned by the calling
// manager.  Admins log in through the regular login endpoint with the
// credentials handed to them here.
func (h *ManagerHandler) CreateAdmin(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createAdminReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/email/password required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Name, req.Email, req.Phone, req.Password, model.RoleAdmin, &managerID, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create admin failed"})
	}

	return c.JSON(http.StatusCreated, adminResp{ID: uid, Name: req.Name, Email: req.Email, Role: model.RoleAdmin})
}

// ListAdmins returns the active admins created by the calling
// manager.
func (h *ManagerHandler) ListAdmins(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	admins, err := h.Users.ListAdminsByManager(ctx, managerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]adminResp, 0, len(admins))
	for _, u := range admins {
		out = append(out, toAdminResp(u))
	}
	return c.JSON(http.StatusOK, echo.Map{"admins": out})
}

// GetAdmin returns one admin account created by the calling manager.
func (h *ManagerHandler) GetAdmin(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid admin id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetAdminForManager(ctx, id, managerID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "admin not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "not your admin"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, toAdminResp(u))
}

// DeleteAdmin deactivates an admin account created by the calling
// manager and revokes its refresh tokens.  The row survives so the
// admin's turfs and booking history stay attributable.
func (h *ManagerHandler) DeleteAdmin(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid admin id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Users.DeactivateAdmin(ctx, id, managerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "admin not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete admin failed"})
	}
	_ = h.Tokens.RevokeAllForUser(ctx, id)

	return c.JSON(http.StatusOK, echo.Map{"message": "admin deactivated"})
}

// ListAllTurfs returns every turf on the platform regardless of city
// or availability, for oversight.
func (h *ManagerHandler) ListAllTurfs(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	turfs, err := h.Turfs.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]turfResp, 0, len(turfs))
	for _, t := range turfs {
		out = append(out, toTurfResp(t))
	}
	return c.JSON(http.StatusOK, echo.Map{"turfs": out})
}
