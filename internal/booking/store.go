package booking

import (
	"context"
	"time"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// The store interfaces describe what the service requires from its
// persistence collaborator.  Lookups return (nil, nil) when the record
// is absent; an error always means the store itself failed.  The MySQL
// implementations live in internal/repository.

// ClientStore resolves clients by identifier.  Clients are read-only in
// this service, so no write operations are required.
type ClientStore interface {
	GetByID(ctx context.Context, id int64) (*model.Client, error)
}

// RoomStore resolves rooms by identifier.
type RoomStore interface {
	GetByID(ctx context.Context, id int64) (*model.Room, error)
}

// ReservationStore persists reservations.  Create assigns the record's
// identifier on first save; Update preserves it.  FindOverlapping
// returns every reservation for the room whose [start, end] range
// shares at least one day with the given range, endpoints inclusive.
type ReservationStore interface {
	GetByID(ctx context.Context, id int64) (*model.Reservation, error)
	ListAll(ctx context.Context) ([]model.Reservation, error)
	ListByClient(ctx context.Context, clientID int64) ([]model.Reservation, error)
	FindOverlapping(ctx context.Context, roomID int64, start, end time.Time) ([]model.Reservation, error)
	Create(ctx context.Context, res *model.Reservation) error
	Update(ctx context.Context, res *model.Reservation) error
	Delete(ctx context.Context, id int64) error
}

// EventPublisher receives domain events after successful writes.
// Implementations must not block the request path on broker failures;
// the service treats publication as fire-and-forget.
type EventPublisher interface {
	ReservationCreated(ctx context.Context, view ReservationView)
	ReservationUpdated(ctx context.Context, view ReservationView)
	ReservationCancelled(ctx context.Context, id int64)
}
