package booking

import (
	"errors"
	"fmt"
)

// Kind names the entity a NotFoundError refers to.
type Kind string

const (
	KindClient      Kind = "client"
	KindRoom        Kind = "room"
	KindReservation Kind = "reservation"
)

// NotFoundError reports that a referenced client, room or reservation
// does not exist.  Adapters translate it into their protocol's native
// "not found" representation.
type NotFoundError struct {
	Kind Kind
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id: %d", e.Kind, e.ID)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Business rule failures.  Adapters translate these into "bad request /
// rejected" semantics; the service never retries or recovers from them.
var (
	// ErrInvalidDateRange is returned when the start date falls after
	// the end date.
	ErrInvalidDateRange = errors.New("start date must not be after end date")

	// ErrRoomUnavailable is returned when the target room's static
	// availability flag is false.
	ErrRoomUnavailable = errors.New("room is not available")

	// ErrRoomAlreadyBooked is returned when an existing reservation for
	// the target room overlaps the requested date range.
	ErrRoomAlreadyBooked = errors.New("room is already booked for the selected dates")
)
