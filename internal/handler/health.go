package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health is the health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"message":   "SYNAPSE Leaderboard API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
