// Package bookingtest provides an in-memory implementation of the
// booking store contracts for use in tests.  It honors the same
// semantics as the MySQL repositories: lookups return (nil, nil) on
// absence, Create assigns identifiers, and the overlap query compares
// inclusively on both endpoints.
package bookingtest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/iliyamo/hotel-reservation/internal/booking"
	"github.com/iliyamo/hotel-reservation/internal/model"
)

// Store holds clients, rooms and reservations in maps.  It is safe for
// concurrent use so service-level locking tests exercise realistic
// interleavings.
type Store struct {
	mu           sync.Mutex
	clients      map[int64]model.Client
	rooms        map[int64]model.Room
	reservations map[int64]model.Reservation
	nextID       int64
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		clients:      make(map[int64]model.Client),
		rooms:        make(map[int64]model.Room),
		reservations: make(map[int64]model.Reservation),
	}
}

// AddClient inserts a client, assigning an identifier, and returns it.
func (s *Store) AddClient(c model.Client) model.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	c.ID = s.nextID
	s.clients[c.ID] = c
	return c
}

// AddRoom inserts a room, assigning an identifier, and returns it.
func (s *Store) AddRoom(r model.Room) model.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	r.ID = s.nextID
	s.rooms[r.ID] = r
	return r
}

// ReservationCount reports how many reservations are stored.
func (s *Store) ReservationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reservations)
}

// Clients returns the client store view.
func (s *Store) Clients() booking.ClientStore { return clientStore{s} }

// Rooms returns the room store view.
func (s *Store) Rooms() booking.RoomStore { return roomStore{s} }

// Reservations returns the reservation store view.
func (s *Store) Reservations() booking.ReservationStore { return reservationStore{s} }

type clientStore struct{ s *Store }

func (cs clientStore) GetByID(_ context.Context, id int64) (*model.Client, error) {
	cs.s.mu.Lock()
	defer cs.s.mu.Unlock()
	if c, ok := cs.s.clients[id]; ok {
		return &c, nil
	}
	return nil, nil
}

type roomStore struct{ s *Store }

func (rs roomStore) GetByID(_ context.Context, id int64) (*model.Room, error) {
	rs.s.mu.Lock()
	defer rs.s.mu.Unlock()
	if r, ok := rs.s.rooms[id]; ok {
		return &r, nil
	}
	return nil, nil
}

type reservationStore struct{ s *Store }

func (rs reservationStore) GetByID(_ context.Context, id int64) (*model.Reservation, error) {
	rs.s.mu.Lock()
	defer rs.s.mu.Unlock()
	if r, ok := rs.s.reservations[id]; ok {
		return &r, nil
	}
	return nil, nil
}

func (rs reservationStore) ListAll(_ context.Context) ([]model.Reservation, error) {
	rs.s.mu.Lock()
	defer rs.s.mu.Unlock()
	out := make([]model.Reservation, 0, len(rs.s.reservations))
	for _, r := range rs.s.reservations {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (rs reservationStore) ListByClient(_ context.Context, clientID int64) ([]model.Reservation, error) {
	rs.s.mu.Lock()
	defer rs.s.mu.Unlock()
	out := make([]model.Reservation, 0)
	for _, r := range rs.s.reservations {
		if r.ClientID == clientID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (rs reservationStore) FindOverlapping(_ context.Context, roomID int64, start, end time.Time) ([]model.Reservation, error) {
	rs.s.mu.Lock()
	defer rs.s.mu.Unlock()
	out := make([]model.Reservation, 0)
	for _, r := range rs.s.reservations {
		if r.RoomID == roomID && !r.StartDate.After(end) && !r.EndDate.Before(start) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (rs reservationStore) Create(_ context.Context, res *model.Reservation) error {
	rs.s.mu.Lock()
	defer rs.s.mu.Unlock()
	rs.s.nextID++
	res.ID = rs.s.nextID
	rs.s.reservations[res.ID] = *res
	return nil
}

func (rs reservationStore) Update(_ context.Context, res *model.Reservation) error {
	rs.s.mu.Lock()
	defer rs.s.mu.Unlock()
	rs.s.reservations[res.ID] = *res
	return nil
}

func (rs reservationStore) Delete(_ context.Context, id int64) error {
	rs.s.mu.Lock()
	defer rs.s.mu.Unlock()
	delete(rs.s.reservations, id)
	return nil
}
