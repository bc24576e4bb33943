// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/HITENDRAS940/turf-booking-api/internal/config"
	"github.com/HITENDRAS940/turf-booking-api/internal/handler"
	"github.com/HITENDRAS940/turf-booking-api/internal/middleware"
	"github.com/HITENDRAS940/turf-booking-api/internal/model"
)

// Deps carries everything route registration needs.  The redis client
// may be nil, in which case caching and rate limiting run as
// pass-throughs.
type Deps struct {
	Cfg       config.Config
	Cache     config.CacheConfig
	RateLimit config.RateLimitConfig
	Redis     *redis.Client

	Auth    *handler.AuthHandler
	Public  *handler.PublicHandler
	Booking *handler.BookingHandler
	Admin   *handler.AdminHandler
	Manager *handler.ManagerHandler
}

// Register mounts every route on the Echo instance.
func Register(e *echo.Echo, d Deps) {
	e.GET("/healthz", handler.Health)

	registerAuth(e, d)
	registerPublic(e, d)
	registerUser(e, d)
	registerAdmin(e, d)
	registerManager(e, d)
}

// registerAuth mounts registration, login and token lifecycle routes.
// Login and register sit behind the rate limiter so credential
// stuffing is throttled.
func registerAuth(e *echo.Echo, d Deps) {
	limited := middleware.NewTokenBucket(d.RateLimit, d.Redis)

	g := e.Group("/v1/auth")
	g.POST("/register", d.Auth.Register, limited)
	g.POST("/login", d.Auth.Login, limited)
	g.POST("/refresh", d.Auth.Refresh)

	auth := e.Group("/v1", middleware.JWTAuth(d.Cfg.JWTSecret))
	auth.POST("/auth/logout", d.Auth.Logout)
	auth.GET("/me", d.Auth.Me)
}

// registerPublic mounts the unauthenticated browse routes.  These are
// the hot read paths, so responses are served from the Redis cache
// and rate limited per client IP.
func registerPublic(e *echo.Echo, d Deps) {
	cached := middleware.NewRedisCache(d.Cache, d.Redis)
	limited := middleware.NewTokenBucket(d.RateLimit, d.Redis)

	g := e.Group("/v1", limited)
	g.GET("/turfs", d.Public.ListTurfs, cached)
	g.GET("/turfs/:id", d.Public.GetTurf, cached)
	g.GET("/turfs/:id/lowest-price", d.Public.GetLowestPrice, cached)
	g.GET("/turf-slots/:turfId/availability", d.Public.GetAvailability)
	g.GET("/turfs/search-by-availability", d.Public.SearchByAvailability)
}

func registerUser(e *echo.Echo, d Deps) {
	g := e.Group("/v1",
		middleware.JWTAuth(d.Cfg.JWTSecret),
		middleware.RequireRole(model.RoleUser))
	g.POST("/bookings/user", d.Booking.CreateBooking)
	g.GET("/user/bookings", d.Booking.ListMyBookings)
	g.DELETE("/user/bookings/:id", d.Booking.CancelBooking)
}

func registerAdmin(e *echo.Echo, d Deps) {
	g := e.Group("/v1/admin",
		middleware.JWTAuth(d.Cfg.JWTSecret),
		middleware.RequireRole(model.RoleAdmin))

	g.POST("/turfs", d.Admin.CreateTurf)
	g.GET("/turfs", d.Admin.ListMyTurfs)
	g.GET("/turf/:turfId/bookings", d.Admin.ListBookings)
	g.GET("/turf/:turfId/revenue", d.Admin.Revenue)

	g.PATCH("/turf/:turfId/slot/:slotId/price", d.Admin.UpdateSlotPrice)
	g.PATCH("/turf/:turfId/slot/:slotId/enable", d.Admin.EnableSlot)
	g.PATCH("/turf/:turfId/slot/:slotId/disable", d.Admin.DisableSlot)
	g.PATCH("/turf/:turfId/slots/price", d.Admin.UpdateAllSlotPrices)

	g.PATCH("/turf/:turfId/available", d.Admin.MarkAvailable)
	g.PATCH("/turf/:turfId/notAvailable", d.Admin.MarkNotAvailable)

	g.POST("/turf/:turfId/bookings", d.Booking.CreateWalkIn)

	g.POST("/turf/:turfId/images", d.Admin.AddImages)
	g.DELETE("/turf/:turfId/images", d.Admin.DeleteImage)
}

func registerManager(e *echo.Echo, d Deps) {
	g := e.Group("/v1/manager",
		middleware.JWTAuth(d.Cfg.JWTSecret),
		middleware.RequireRole(model.RoleManager))

	g.POST("/admins", d.Manager.CreateAdmin)
	g.GET("/admins", d.Manager.ListAdmins)
	g.GET("/admins/:id", d.Manager.GetAdmin)
	g.DELETE("/admins/:id", d.Manager.DeleteAdmin)
	g.GET("/turfs", d.Manager.ListAllTurfs)
}
