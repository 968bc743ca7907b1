package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/booking"
)

// ReservationHandler is the REST front end of the booking service.  It
// does nothing but translate HTTP requests into canonical requests,
// delegate, and render the result or the typed failure; every business
// rule lives in the booking package.
type ReservationHandler struct {
	svc *booking.Service
}

// NewReservationHandler constructs a ReservationHandler.
func NewReservationHandler(svc *booking.Service) *ReservationHandler {
	if svc == nil {
		panic("nil service passed to NewReservationHandler")
	}
	return &ReservationHandler{svc: svc}
}

// Create handles POST /api/reservations.  Returns 201 with the created
// reservation view, 400 on a rejected request, 404 when the referenced
// client or room does not exist.
func (h *ReservationHandler) Create(c echo.Context) error {
	var req booking.ReservationRequest
	if err := c.Bind(&req); err != nil {
		return writeBadRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	view, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, view)
}

// GetByID handles GET /api/reservations/:id.
func (h *ReservationHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeBadRequest(c, "invalid reservation id")
	}
	view, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// List handles GET /api/reservations.
func (h *ReservationHandler) List(c echo.Context) error {
	views, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, views)
}

// ListByClient handles GET /api/reservations/client/:clientId.  An
// unknown client yields an empty list, mirroring the service contract.
func (h *ReservationHandler) ListByClient(c echo.Context) error {
	clientID, err := pathID(c, "clientId")
	if err != nil {
		return writeBadRequest(c, "invalid client id")
	}
	views, err := h.svc.ListByClient(c.Request().Context(), clientID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, views)
}

// Update handles PUT /api/reservations/:id.
func (h *ReservationHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeBadRequest(c, "invalid reservation id")
	}
	var req booking.ReservationRequest
	if err := c.Bind(&req); err != nil {
		return writeBadRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	view, err := h.svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// Delete handles DELETE /api/reservations/:id.  Returns 204 on success.
func (h *ReservationHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeBadRequest(c, "invalid reservation id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.ErrBadRequest
	}
	return id, nil
}
