package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/booking"
)

// errorResponse is the REST error body: timestamp, numeric status, the
// status text and a human-readable message.
type errorResponse struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
}

func writeError(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
	})
}

func writeBadRequest(c echo.Context, message string) error {
	return writeError(c, http.StatusBadRequest, message)
}

// writeServiceError maps a booking failure onto its HTTP shape: not
// found → 404, rejected business rules → 400, anything else → 500.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case booking.IsNotFound(err):
		return writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, booking.ErrInvalidDateRange),
		errors.Is(err, booking.ErrRoomUnavailable),
		errors.Is(err, booking.ErrRoomAlreadyBooked):
		return writeError(c, http.StatusBadRequest, err.Error())
	default:
		return writeError(c, http.StatusInternalServerError, "internal error")
	}
}
