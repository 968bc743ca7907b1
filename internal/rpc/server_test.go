package rpc

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/iliyamo/hotel-reservation/internal/booking"
	"github.com/iliyamo/hotel-reservation/internal/booking/bookingtest"
	"github.com/iliyamo/hotel-reservation/internal/model"
)

func newServer(t *testing.T) (*Server, *bookingtest.Store) {
	t.Helper()
	store := bookingtest.NewStore()
	store.AddClient(model.Client{
		LastName:  "Dupont",
		FirstName: "Jean",
		Email:     "jean.dupont@example.com",
		Phone:     "+33102030405",
	})
	store.AddRoom(model.Room{
		Type:      model.RoomTypeSimple,
		Price:     decimal.RequireFromString("89.90"),
		Available: true,
	})
	svc := booking.New(store.Clients(), store.Rooms(), store.Reservations(), nil, zerolog.Nop())
	return NewServer(svc), store
}

func createReq() *CreateReservationRequest {
	return &CreateReservationRequest{
		ClientID:  1,
		RoomID:    2,
		StartDate: "2025-06-01",
		EndDate:   "2025-06-05",
	}
}

func requireCode(t *testing.T, err error, want codes.Code) *status.Status {
	t.Helper()
	st, ok := status.FromError(err)
	require.True(t, ok, "expected a status error, got %v", err)
	require.Equal(t, want, st.Code())
	return st
}

func TestRPCCreateReservation(t *testing.T) {
	srv, _ := newServer(t)

	req := createReq()
	req.Preferences = "sea view"
	resp, err := srv.CreateReservation(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.Reservation)

	res := resp.Reservation
	assert.NotZero(t, res.ID)
	assert.Equal(t, "Dupont", res.Client.LastName)
	assert.Equal(t, "SIMPLE", res.Room.RoomType)
	assert.Equal(t, "89.90", res.Room.Price)
	assert.Equal(t, "2025-06-01", res.StartDate)
	assert.Equal(t, "2025-06-05", res.EndDate)
	assert.Equal(t, "sea view", res.Preferences)
}

func TestRPCCreateOverlap(t *testing.T) {
	srv, _ := newServer(t)

	_, err := srv.CreateReservation(context.Background(), createReq())
	require.NoError(t, err)

	req := createReq()
	req.StartDate, req.EndDate = "2025-06-05", "2025-06-10"
	_, err = srv.CreateReservation(context.Background(), req)
	st := requireCode(t, err, codes.FailedPrecondition)
	assert.Equal(t, "room is already booked for the selected dates", st.Message())
}

func TestRPCCreateUnknownClient(t *testing.T) {
	srv, _ := newServer(t)

	req := createReq()
	req.ClientID = 9999
	_, err := srv.CreateReservation(context.Background(), req)
	st := requireCode(t, err, codes.NotFound)
	assert.Equal(t, "client not found with id: 9999", st.Message())
}

func TestRPCCreateBadDate(t *testing.T) {
	srv, _ := newServer(t)

	req := createReq()
	req.StartDate = "June 1st"
	_, err := srv.CreateReservation(context.Background(), req)
	st := requireCode(t, err, codes.InvalidArgument)
	assert.Contains(t, st.Message(), "invalid start_date")
}

func TestRPCCreateInvalidRange(t *testing.T) {
	srv, _ := newServer(t)

	req := createReq()
	req.StartDate, req.EndDate = "2025-06-05", "2025-06-01"
	_, err := srv.CreateReservation(context.Background(), req)
	requireCode(t, err, codes.FailedPrecondition)
}

func TestRPCGetReservation(t *testing.T) {
	srv, _ := newServer(t)

	created, err := srv.CreateReservation(context.Background(), createReq())
	require.NoError(t, err)

	resp, err := srv.GetReservation(context.Background(), &GetReservationRequest{ID: created.Reservation.ID})
	require.NoError(t, err)
	assert.Equal(t, created.Reservation.ID, resp.Reservation.ID)

	_, err = srv.GetReservation(context.Background(), &GetReservationRequest{ID: 42})
	st := requireCode(t, err, codes.NotFound)
	assert.Equal(t, "reservation not found with id: 42", st.Message())
}

func TestRPCUpdateReservation(t *testing.T) {
	srv, _ := newServer(t)

	created, err := srv.CreateReservation(context.Background(), createReq())
	require.NoError(t, err)

	resp, err := srv.UpdateReservation(context.Background(), &UpdateReservationRequest{
		ID:          created.Reservation.ID,
		ClientID:    1,
		RoomID:      2,
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-05",
		Preferences: "late checkout",
	})
	require.NoError(t, err)
	assert.Equal(t, "late checkout", resp.Reservation.Preferences)
}

func TestRPCDeleteReservation(t *testing.T) {
	srv, store := newServer(t)

	created, err := srv.CreateReservation(context.Background(), createReq())
	require.NoError(t, err)

	resp, err := srv.DeleteReservation(context.Background(), &DeleteReservationRequest{ID: created.Reservation.ID})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 0, store.ReservationCount())

	_, err = srv.DeleteReservation(context.Background(), &DeleteReservationRequest{ID: created.Reservation.ID})
	requireCode(t, err, codes.NotFound)
}

func TestRPCListReservations(t *testing.T) {
	srv, _ := newServer(t)

	resp, err := srv.ListReservations(context.Background(), &ListReservationsRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Reservations)

	_, err = srv.CreateReservation(context.Background(), createReq())
	require.NoError(t, err)

	resp, err = srv.ListReservations(context.Background(), &ListReservationsRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 1)
}

func TestRPCListReservationsByClient(t *testing.T) {
	srv, _ := newServer(t)

	_, err := srv.CreateReservation(context.Background(), createReq())
	require.NoError(t, err)

	resp, err := srv.ListReservationsByClient(context.Background(), &ListReservationsByClientRequest{ClientID: 1})
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 1)

	resp, err = srv.ListReservationsByClient(context.Background(), &ListReservationsByClientRequest{ClientID: 9999})
	require.NoError(t, err)
	assert.Empty(t, resp.Reservations)
}
