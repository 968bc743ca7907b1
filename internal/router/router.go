package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/graph"
	"github.com/iliyamo/hotel-reservation/internal/handler"
	"github.com/iliyamo/hotel-reservation/internal/soap"
)

// RegisterAPI wires the REST front end under /api/reservations plus the
// health check.  cacheMW is applied to the read endpoints only; pass a
// pass-through middleware when caching is disabled.
func RegisterAPI(e *echo.Echo, h *handler.ReservationHandler, cacheMW echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	g := e.Group("/api/reservations")
	g.POST("", h.Create)
	g.GET("", h.List, cacheMW)
	g.GET("/:id", h.GetByID, cacheMW)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.GET("/client/:clientId", h.ListByClient, cacheMW)
}

// RegisterSOAP mounts the XML document-exchange endpoint.  All six
// operations arrive as named elements in a POSTed envelope.
func RegisterSOAP(e *echo.Echo, s *soap.Handler) {
	e.POST("/soap/reservations", s.Handle)
}

// RegisterGraphQL mounts the query/mutation endpoint.
func RegisterGraphQL(e *echo.Echo, g *graph.Handler) {
	e.POST("/graphql", g.Handle)
}
