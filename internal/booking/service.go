package booking

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// Service owns every reservation business rule: date validation, client
// and room resolution, the availability gate and overlap detection.  It
// is stateless between calls; all state lives in the stores.  The same
// instance is shared by all four transport adapters and is safe for
// concurrent use.
type Service struct {
	clients      ClientStore
	rooms        RoomStore
	reservations ReservationStore
	events       EventPublisher
	locks        *roomLocks
	log          zerolog.Logger
}

// New constructs a Service.  events may be nil when no broker is
// configured; publication is then skipped.
func New(clients ClientStore, rooms RoomStore, reservations ReservationStore, events EventPublisher, log zerolog.Logger) *Service {
	if clients == nil || rooms == nil || reservations == nil {
		panic("nil store passed to booking.New")
	}
	return &Service{
		clients:      clients,
		rooms:        rooms,
		reservations: reservations,
		events:       events,
		locks:        newRoomLocks(),
		log:          log,
	}
}

// Create validates and persists a new reservation.  Preconditions are
// checked in a fixed order: date range, client existence, room
// existence, room availability, then overlap against the room's
// existing reservations.  The overlap check and the insert run under
// the room's lock so concurrent creates for the same room cannot both
// succeed.
func (s *Service) Create(ctx context.Context, req ReservationRequest) (*ReservationView, error) {
	s.log.Info().
		Int64("client_id", req.ClientID).
		Int64("room_id", req.RoomID).
		Msg("creating reservation")

	if req.StartDate.After(req.EndDate) {
		return nil, ErrInvalidDateRange
	}

	client, err := s.clients.GetByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, &NotFoundError{Kind: KindClient, ID: req.ClientID}
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, &NotFoundError{Kind: KindRoom, ID: req.RoomID}
	}

	if !room.Available {
		return nil, ErrRoomUnavailable
	}

	// The overlap check and the insert must act as one unit of work.
	unlock := s.locks.lock(room.ID)
	defer unlock()

	overlapping, err := s.reservations.FindOverlapping(ctx, room.ID, req.StartDate.Time, req.EndDate.Time)
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, ErrRoomAlreadyBooked
	}

	res := RequestToReservation(req)
	res.ClientID = client.ID
	res.RoomID = room.ID
	if err := s.reservations.Create(ctx, &res); err != nil {
		return nil, err
	}

	s.log.Info().Int64("reservation_id", res.ID).Msg("created reservation")

	view := ReservationToView(&res, client, room)
	if s.events != nil {
		s.events.ReservationCreated(ctx, view)
	}
	return &view, nil
}

// GetByID returns the canonical view of a single reservation.
func (s *Service) GetByID(ctx context.Context, id int64) (*ReservationView, error) {
	s.log.Debug().Int64("reservation_id", id).Msg("fetching reservation")

	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, &NotFoundError{Kind: KindReservation, ID: id}
	}
	return s.viewOf(ctx, res)
}

// Update rewrites an existing reservation.  Dates are re-validated as
// in Create.  A changed client is resolved and rebound without any
// overlap re-check; a changed room is resolved and checked for overlap
// against that room's other reservations, the updated reservation
// itself excluded by id.  Changing only the dates deliberately skips
// the overlap re-check, matching the behavior this service replaces.
func (s *Service) Update(ctx context.Context, id int64, req ReservationRequest) (*ReservationView, error) {
	s.log.Info().Int64("reservation_id", id).Msg("updating reservation")

	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, &NotFoundError{Kind: KindReservation, ID: id}
	}

	if req.StartDate.After(req.EndDate) {
		return nil, ErrInvalidDateRange
	}

	if res.ClientID != req.ClientID {
		newClient, err := s.clients.GetByID(ctx, req.ClientID)
		if err != nil {
			return nil, err
		}
		if newClient == nil {
			return nil, &NotFoundError{Kind: KindClient, ID: req.ClientID}
		}
		res.ClientID = newClient.ID
	}

	if res.RoomID != req.RoomID {
		newRoom, err := s.rooms.GetByID(ctx, req.RoomID)
		if err != nil {
			return nil, err
		}
		if newRoom == nil {
			return nil, &NotFoundError{Kind: KindRoom, ID: req.RoomID}
		}

		// Reassigning the room re-runs the overlap check against the
		// new room's reservations, under that room's lock.
		unlock := s.locks.lock(newRoom.ID)
		defer unlock()

		overlapping, err := s.reservations.FindOverlapping(ctx, newRoom.ID, req.StartDate.Time, req.EndDate.Time)
		if err != nil {
			return nil, err
		}
		for _, other := range overlapping {
			if other.ID != id {
				return nil, ErrRoomAlreadyBooked
			}
		}
		res.RoomID = newRoom.ID
	}

	ApplyRequest(req, res)
	if err := s.reservations.Update(ctx, res); err != nil {
		return nil, err
	}

	s.log.Info().Int64("reservation_id", id).Msg("updated reservation")

	view, err := s.viewOf(ctx, res)
	if err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.ReservationUpdated(ctx, *view)
	}
	return view, nil
}

// Delete removes a reservation.  The referenced client and room are
// untouched.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.log.Info().Int64("reservation_id", id).Msg("deleting reservation")

	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if res == nil {
		return &NotFoundError{Kind: KindReservation, ID: id}
	}
	if err := s.reservations.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Int64("reservation_id", id).Msg("deleted reservation")

	if s.events != nil {
		s.events.ReservationCancelled(ctx, id)
	}
	return nil
}

// ListAll returns the canonical views of every reservation.
func (s *Service) ListAll(ctx context.Context) ([]ReservationView, error) {
	s.log.Debug().Msg("fetching all reservations")

	all, err := s.reservations.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.viewsOf(ctx, all)
}

// ListByClient returns the reservations held by one client.  An
// unknown client yields an empty list, not an error; client existence
// is deliberately not checked here.
func (s *Service) ListByClient(ctx context.Context, clientID int64) ([]ReservationView, error) {
	s.log.Debug().Int64("client_id", clientID).Msg("fetching reservations for client")

	list, err := s.reservations.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return s.viewsOf(ctx, list)
}

// viewOf resolves the reservation's client and room and assembles the
// nested canonical view.
func (s *Service) viewOf(ctx context.Context, res *model.Reservation) (*ReservationView, error) {
	client, err := s.clients.GetByID(ctx, res.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, &NotFoundError{Kind: KindClient, ID: res.ClientID}
	}
	room, err := s.rooms.GetByID(ctx, res.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, &NotFoundError{Kind: KindRoom, ID: res.RoomID}
	}
	view := ReservationToView(res, client, room)
	return &view, nil
}

func (s *Service) viewsOf(ctx context.Context, list []model.Reservation) ([]ReservationView, error) {
	views := make([]ReservationView, 0, len(list))
	for i := range list {
		v, err := s.viewOf(ctx, &list[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}
