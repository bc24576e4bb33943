package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health reports liveness for load balancers and monitoring.  It does
// not touch the database; a 200 means the process is up.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
