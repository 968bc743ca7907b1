// Package booking implements the protocol-agnostic reservation service.
// Every transport adapter (REST, SOAP, GraphQL, gRPC) converts its wire
// format into the canonical shapes defined here and delegates to the
// Service; no business rule lives outside this package.
package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// dateLayout is the wire format for calendar dates across all transports.
const dateLayout = "2006-01-02"

// Date is a calendar day without a time component.  It marshals to and
// from the YYYY-MM-DD form used by every adapter.
type Date struct {
	time.Time
}

// ParseDate parses a YYYY-MM-DD string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// DateOf truncates t to its calendar day in UTC.
func DateOf(t time.Time) Date {
	u := t.UTC()
	return Date{Time: time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)}
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string { return d.Format(dateLayout) }

// After reports whether d falls on a later calendar day than other.
func (d Date) After(other Date) bool { return d.Time.After(other.Time) }

// MarshalJSON renders the date as a quoted YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON accepts a quoted YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ReservationRequest is the canonical create/update payload.  Adapters
// are responsible for shape validation (all four required fields
// present); the service trusts the shape and applies business rules
// only.
type ReservationRequest struct {
	ClientID    int64  `json:"clientId" validate:"required"`
	RoomID      int64  `json:"roomId" validate:"required"`
	StartDate   Date   `json:"startDate" validate:"required"`
	EndDate     Date   `json:"endDate" validate:"required"`
	Preferences string `json:"preferences,omitempty" validate:"max=500"`
}

// ClientView is the canonical read shape for a client.
type ClientView struct {
	ID        int64  `json:"id"`
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// RoomView is the canonical read shape for a room.
type RoomView struct {
	ID        int64           `json:"id"`
	RoomType  string          `json:"roomType"`
	Price     decimal.Decimal `json:"price"`
	Available bool            `json:"available"`
}

// ReservationView is the canonical read shape for a reservation,
// carrying fully resolved client and room views.
type ReservationView struct {
	ID          int64      `json:"id"`
	Client      ClientView `json:"client"`
	Room        RoomView   `json:"room"`
	StartDate   Date       `json:"startDate"`
	EndDate     Date       `json:"endDate"`
	Preferences string     `json:"preferences,omitempty"`
}
