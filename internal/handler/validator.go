package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator plugs go-playground/validator into Echo so handlers
// can reject malformed request shapes before the canonical request ever
// reaches the booking service.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator returns a validator ready to be assigned to
// echo.Echo.Validator.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks struct tags and reports violations as a 400 response.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
