package model

import "time"

// Reservation books a single room for a single client over an inclusive
// range of calendar days.  The referenced client and room are never
// owned by the reservation: deleting a reservation leaves both intact.
//
// Two reservations for the same room conflict when their date ranges
// share at least one day (inclusive endpoints on both sides).  That
// rule is enforced by the booking service at write time, not by the
// schema.
//
// Fields:
//  ID          – primary key identifier.
//  ClientID    – client holding the booking.
//  RoomID      – room being booked.
//  StartDate   – first day of the stay (date only, UTC).
//  EndDate     – last day of the stay (date only, UTC).
//  Preferences – optional free-text wishes, at most 500 characters.
type Reservation struct {
	ID          int64     // reservations.id
	ClientID    int64     // reservations.client_id
	RoomID      int64     // reservations.room_id
	StartDate   time.Time // reservations.start_date (DATE)
	EndDate     time.Time // reservations.end_date (DATE)
	Preferences string    // reservations.preferences (nullable)
}
