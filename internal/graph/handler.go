package graph

import (
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/booking"
)

// Handler serves POST /graphql.  Service failures surface as GraphQL
// errors inside the standard result document; the HTTP status stays
// 200, per GraphQL-over-HTTP convention.
type Handler struct {
	schema graphql.Schema
}

// NewHandler builds the schema and returns the endpoint handler.
func NewHandler(svc *booking.Service) (*Handler, error) {
	schema, err := NewSchema(svc)
	if err != nil {
		return nil, err
	}
	return &Handler{schema: schema}, nil
}

type graphqlRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// Handle executes one GraphQL request.
func (h *Handler) Handle(c echo.Context) error {
	var req graphqlRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        c.Request().Context(),
	})
	return c.JSON(http.StatusOK, result)
}
