// Package rpc implements the typed RPC front end of the booking
// service: a gRPC unary service whose messages are plain structs
// carried by a JSON codec.  Dates travel as YYYY-MM-DD strings, prices
// as fixed two-decimal strings.
package rpc

// CreateReservationRequest asks for a new reservation.
type CreateReservationRequest struct {
	ClientID    int64  `json:"client_id"`
	RoomID      int64  `json:"room_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Preferences string `json:"preferences,omitempty"`
}

// GetReservationRequest identifies one reservation to fetch.
type GetReservationRequest struct {
	ID int64 `json:"id"`
}

// UpdateReservationRequest rewrites an existing reservation.
type UpdateReservationRequest struct {
	ID          int64  `json:"id"`
	ClientID    int64  `json:"client_id"`
	RoomID      int64  `json:"room_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Preferences string `json:"preferences,omitempty"`
}

// DeleteReservationRequest identifies one reservation to remove.
type DeleteReservationRequest struct {
	ID int64 `json:"id"`
}

// DeleteReservationResponse acknowledges a removal.
type DeleteReservationResponse struct {
	Success bool `json:"success"`
}

// ListReservationsRequest asks for every reservation.
type ListReservationsRequest struct{}

// ListReservationsByClientRequest asks for one client's reservations.
type ListReservationsByClientRequest struct {
	ClientID int64 `json:"client_id"`
}

// Client mirrors the canonical client view on the RPC wire.
type Client struct {
	ID        int64  `json:"id"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Room mirrors the canonical room view on the RPC wire.
type Room struct {
	ID        int64  `json:"id"`
	RoomType  string `json:"room_type"`
	Price     string `json:"price"`
	Available bool   `json:"available"`
}

// Reservation mirrors the canonical reservation view on the RPC wire.
type Reservation struct {
	ID          int64   `json:"id"`
	Client      *Client `json:"client"`
	Room        *Room   `json:"room"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Preferences string  `json:"preferences,omitempty"`
}

// ReservationResponse wraps a single reservation result.
type ReservationResponse struct {
	Reservation *Reservation `json:"reservation"`
}

// ListReservationsResponse wraps a list result.
type ListReservationsResponse struct {
	Reservations []*Reservation `json:"reservations"`
}
