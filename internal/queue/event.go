// Package queue defines message payloads exchanged over the message
// broker and the publisher that emits them.
package queue

// Event type names carried in ReservationEvent.Type.
const (
	EventReservationCreated   = "reservation.created"
	EventReservationUpdated   = "reservation.updated"
	EventReservationCancelled = "reservation.cancelled"
)

// ReservationEvent is published whenever the booking service completes
// a write.  It carries enough information for downstream consumers
// (notifications, analytics) without querying the primary database.
// Date fields use the YYYY-MM-DD wire form; they are empty on
// cancellation events, which only identify the removed reservation.
type ReservationEvent struct {
	EventID       string `json:"event_id"`
	Type          string `json:"type"`
	ReservationID int64  `json:"reservation_id"`
	ClientID      int64  `json:"client_id,omitempty"`
	RoomID        int64  `json:"room_id,omitempty"`
	StartDate     string `json:"start_date,omitempty"`
	EndDate       string `json:"end_date,omitempty"`
	OccurredAt    string `json:"occurred_at"`
}
