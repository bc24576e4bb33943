// Package cron hosts the background jobs the API runs alongside the
// HTTP server.
package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/HITENDRAS940/turf-booking-api/internal/availability"
	"github.com/HITENDRAS940/turf-booking-api/internal/logger"
	"github.com/HITENDRAS940/turf-booking-api/internal/repository"
)

// StartCompletionSweep schedules the nightly job that moves CONFIRMED
// bookings from past dates to COMPLETED. The schedule is a standard
// five-field cron spec (default "5 0 * * *", shortly after midnight).
// The returned *cron.Cron is already started; callers stop it on
// shutdown.
func StartCompletionSweep(spec string, bookings *repository.BookingRepo) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		sweep(bookings)
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	logger.L().Infow("completion sweep scheduled", "spec", spec)

	// Run once at startup so a long-stopped server catches up without
	// waiting for the next tick.
	go sweep(bookings)
	return c, nil
}

func sweep(bookings *repository.BookingRepo) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	today := time.Now().Format(availability.DateLayout)
	n, err := bookings.CompleteElapsed(ctx, today)
	if err != nil {
		logger.L().Errorw("completion sweep failed", "err", err)
		return
	}
	if n > 0 {
		logger.L().Infow("completion sweep done", "completed", n)
	}
}
