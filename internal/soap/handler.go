package soap

import (
	"context"
	"encoding/xml"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/booking"
)

const envelopeNS = "http://schemas.xmlsoap.org/soap/envelope/"

// Handler serves the document-exchange endpoint.  Like every other
// adapter it only translates: envelope in, canonical request to the
// booking service, envelope or fault out.
type Handler struct {
	svc *booking.Service
}

// NewHandler constructs a SOAP Handler.
func NewHandler(svc *booking.Service) *Handler {
	if svc == nil {
		panic("nil service passed to soap.NewHandler")
	}
	return &Handler{svc: svc}
}

// Handle processes one envelope.  Success responses go out with 200;
// faults with 500, per SOAP 1.1 over HTTP.
func (h *Handler) Handle(c echo.Context) error {
	var env requestEnvelope
	if err := xml.NewDecoder(c.Request().Body).Decode(&env); err != nil {
		return h.writeFault(c, "soap:Client", "malformed envelope")
	}

	ctx := c.Request().Context()
	content, err := h.dispatch(ctx, env.Body)
	if err != nil {
		return h.writeFault(c, faultCode(err), err.Error())
	}
	return h.writeResponse(c, content)
}

// dispatch routes the single operation element found in the body.
func (h *Handler) dispatch(ctx context.Context, body requestBody) (any, error) {
	switch {
	case body.Create != nil:
		req, err := toRequest(body.Create.ClientID, body.Create.RoomID,
			body.Create.StartDate, body.Create.EndDate, body.Create.Preferences)
		if err != nil {
			return nil, err
		}
		view, err := h.svc.Create(ctx, req)
		if err != nil {
			return nil, err
		}
		return createReservationResponse{Reservation: toSoap(*view)}, nil

	case body.Get != nil:
		view, err := h.svc.GetByID(ctx, body.Get.ID)
		if err != nil {
			return nil, err
		}
		return getReservationByIDResponse{Reservation: toSoap(*view)}, nil

	case body.Update != nil:
		req, err := toRequest(body.Update.ClientID, body.Update.RoomID,
			body.Update.StartDate, body.Update.EndDate, body.Update.Preferences)
		if err != nil {
			return nil, err
		}
		view, err := h.svc.Update(ctx, body.Update.ID, req)
		if err != nil {
			return nil, err
		}
		return updateReservationResponse{Reservation: toSoap(*view)}, nil

	case body.Delete != nil:
		if err := h.svc.Delete(ctx, body.Delete.ID); err != nil {
			return nil, err
		}
		return deleteReservationResponse{Success: true}, nil

	case body.GetAll != nil:
		views, err := h.svc.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return getAllReservationsResponse{Reservations: toSoapList(views)}, nil

	case body.ByClient != nil:
		views, err := h.svc.ListByClient(ctx, body.ByClient.ClientID)
		if err != nil {
			return nil, err
		}
		return getReservationsByClientResponse{Reservations: toSoapList(views)}, nil
	}
	return nil, errUnknownOperation
}

var errUnknownOperation = errors.New("unknown operation")

// toRequest converts wire fields to a canonical request, parsing the
// string dates.
func toRequest(clientID, roomID int64, start, end, prefs string) (booking.ReservationRequest, error) {
	startDate, err := booking.ParseDate(start)
	if err != nil {
		return booking.ReservationRequest{}, errors.New("invalid startDate, expected YYYY-MM-DD")
	}
	endDate, err := booking.ParseDate(end)
	if err != nil {
		return booking.ReservationRequest{}, errors.New("invalid endDate, expected YYYY-MM-DD")
	}
	return booking.ReservationRequest{
		ClientID:    clientID,
		RoomID:      roomID,
		StartDate:   startDate,
		EndDate:     endDate,
		Preferences: prefs,
	}, nil
}

func toSoap(view booking.ReservationView) reservationSoap {
	return reservationSoap{
		ID: view.ID,
		Client: clientSoap{
			ID:        view.Client.ID,
			LastName:  view.Client.LastName,
			FirstName: view.Client.FirstName,
			Email:     view.Client.Email,
			Phone:     view.Client.Phone,
		},
		Room: roomSoap{
			ID:        view.Room.ID,
			RoomType:  view.Room.RoomType,
			Price:     view.Room.Price.StringFixed(2),
			Available: view.Room.Available,
		},
		StartDate:   view.StartDate.String(),
		EndDate:     view.EndDate.String(),
		Preferences: view.Preferences,
	}
}

func toSoapList(views []booking.ReservationView) []reservationSoap {
	out := make([]reservationSoap, 0, len(views))
	for _, v := range views {
		out = append(out, toSoap(v))
	}
	return out
}

// faultCode classifies a booking failure: unresolvable references and
// rejected business rules are the caller's fault, the rest is ours.
func faultCode(err error) string {
	if booking.IsNotFound(err) ||
		errors.Is(err, booking.ErrInvalidDateRange) ||
		errors.Is(err, booking.ErrRoomUnavailable) ||
		errors.Is(err, booking.ErrRoomAlreadyBooked) ||
		errors.Is(err, errUnknownOperation) {
		return "soap:Client"
	}
	return "soap:Server"
}

func (h *Handler) writeResponse(c echo.Context, content any) error {
	return writeEnvelope(c, http.StatusOK, content)
}

func (h *Handler) writeFault(c echo.Context, code, message string) error {
	return writeEnvelope(c, http.StatusInternalServerError, fault{Code: code, FaultString: message})
}

func writeEnvelope(c echo.Context, status int, content any) error {
	env := responseEnvelope{
		NS:   envelopeNS,
		Body: responseBody{Content: content},
	}
	out, err := xml.Marshal(env)
	if err != nil {
		return err
	}
	return c.Blob(status, "text/xml; charset=utf-8", append([]byte(xml.Header), out...))
}
