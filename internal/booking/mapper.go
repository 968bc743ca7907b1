package booking

import "github.com/iliyamo/hotel-reservation/internal/model"

// Stateless conversions between persisted entities and the canonical
// shapes.  Scalar fields are copied losslessly; identifier and relation
// fields on request-to-entity conversions are deliberately left at
// their zero values so the service can set them after resolving the
// referenced client and room.

// ClientToView converts a client entity to its canonical view.
func ClientToView(c *model.Client) ClientView {
	return ClientView{
		ID:        c.ID,
		LastName:  c.LastName,
		FirstName: c.FirstName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

// RoomToView converts a room entity to its canonical view.
func RoomToView(r *model.Room) RoomView {
	return RoomView{
		ID:        r.ID,
		RoomType:  string(r.Type),
		Price:     r.Price,
		Available: r.Available,
	}
}

// ReservationToView converts a reservation together with its resolved
// client and room into the canonical nested view.
func ReservationToView(res *model.Reservation, c *model.Client, r *model.Room) ReservationView {
	return ReservationView{
		ID:          res.ID,
		Client:      ClientToView(c),
		Room:        RoomToView(r),
		StartDate:   DateOf(res.StartDate),
		EndDate:     DateOf(res.EndDate),
		Preferences: res.Preferences,
	}
}

// RequestToReservation builds an unsaved reservation from a request.
// ID, ClientID and RoomID stay zero; the service assigns them from the
// resolved entities before the record is persisted.
func RequestToReservation(req ReservationRequest) model.Reservation {
	return model.Reservation{
		StartDate:   req.StartDate.Time,
		EndDate:     req.EndDate.Time,
		Preferences: req.Preferences,
	}
}

// ApplyRequest copies the request's scalar fields onto an existing
// reservation.  The identifier and the client/room references are left
// untouched; rebinding those is the service's job.
func ApplyRequest(req ReservationRequest, res *model.Reservation) {
	res.StartDate = req.StartDate.Time
	res.EndDate = req.EndDate.Time
	res.Preferences = req.Preferences
}
