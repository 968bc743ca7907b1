package booking_test

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation/internal/booking"
	"github.com/iliyamo/hotel-reservation/internal/booking/bookingtest"
	"github.com/iliyamo/hotel-reservation/internal/model"
)

// recordingPublisher counts domain events so tests can assert that
// writes publish and failed writes do not.
type recordingPublisher struct {
	mu        sync.Mutex
	created   int
	updated   int
	cancelled []int64
}

func (p *recordingPublisher) ReservationCreated(_ context.Context, _ booking.ReservationView) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.created++
}

func (p *recordingPublisher) ReservationUpdated(_ context.Context, _ booking.ReservationView) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.updated++
}

func (p *recordingPublisher) ReservationCancelled(_ context.Context, id int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelled = append(p.cancelled, id)
}

func date(t *testing.T, s string) booking.Date {
	t.Helper()
	d, err := booking.ParseDate(s)
	require.NoError(t, err)
	return d
}

// newFixture returns a service over an in-memory store seeded with one
// client and one available room.
func newFixture(t *testing.T) (*booking.Service, *bookingtest.Store, *recordingPublisher, model.Client, model.Room) {
	t.Helper()
	store := bookingtest.NewStore()
	client := store.AddClient(model.Client{
		LastName:  "Dupont",
		FirstName: "Jean",
		Email:     "jean.dupont@example.com",
		Phone:     "+33102030405",
	})
	room := store.AddRoom(model.Room{
		Type:      model.RoomTypeSimple,
		Price:     decimal.RequireFromString("89.90"),
		Available: true,
	})
	events := &recordingPublisher{}
	svc := booking.New(store.Clients(), store.Rooms(), store.Reservations(), events, zerolog.Nop())
	return svc, store, events, client, room
}

func request(t *testing.T, clientID, roomID int64, start, end string) booking.ReservationRequest {
	t.Helper()
	return booking.ReservationRequest{
		ClientID:  clientID,
		RoomID:    roomID,
		StartDate: date(t, start),
		EndDate:   date(t, end),
	}
}

func TestCreateReservation(t *testing.T) {
	svc, store, events, client, room := newFixture(t)

	req := request(t, client.ID, room.ID, "2025-06-01", "2025-06-05")
	req.Preferences = "sea view"

	view, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, view)

	assert.NotZero(t, view.ID)
	assert.Equal(t, client.ID, view.Client.ID)
	assert.Equal(t, "Dupont", view.Client.LastName)
	assert.Equal(t, room.ID, view.Room.ID)
	assert.Equal(t, "SIMPLE", view.Room.RoomType)
	assert.Equal(t, "2025-06-01", view.StartDate.String())
	assert.Equal(t, "2025-06-05", view.EndDate.String())
	assert.Equal(t, "sea view", view.Preferences)

	assert.Equal(t, 1, store.ReservationCount())
	assert.Equal(t, 1, events.created)
}

func TestCreateSingleDayStay(t *testing.T) {
	svc, _, _, client, room := newFixture(t)

	view, err := svc.Create(context.Background(), request(t, client.ID, room.ID, "2025-06-01", "2025-06-01"))
	require.NoError(t, err)
	assert.Equal(t, view.StartDate, view.EndDate)
}

func TestCreateInvalidDateRange(t *testing.T) {
	svc, store, events, client, room := newFixture(t)

	_, err := svc.Create(context.Background(), request(t, client.ID, room.ID, "2025-06-05", "2025-06-01"))
	assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
	assert.Equal(t, 0, store.ReservationCount())
	assert.Equal(t, 0, events.created)
}

func TestCreateUnknownClient(t *testing.T) {
	svc, store, _, _, room := newFixture(t)

	_, err := svc.Create(context.Background(), request(t, 9999, room.ID, "2025-06-01", "2025-06-05"))
	require.Error(t, err)
	assert.True(t, booking.IsNotFound(err))
	assert.EqualError(t, err, "client not found with id: 9999")
	assert.Equal(t, 0, store.ReservationCount())
}

func TestCreateUnknownRoom(t *testing.T) {
	svc, store, _, client, _ := newFixture(t)

	_, err := svc.Create(context.Background(), request(t, client.ID, 9999, "2025-06-01", "2025-06-05"))
	require.Error(t, err)
	assert.True(t, booking.IsNotFound(err))
	assert.EqualError(t, err, "room not found with id: 9999")
	assert.Equal(t, 0, store.ReservationCount())
}

func TestCreateUnavailableRoom(t *testing.T) {
	svc, store, _, client, _ := newFixture(t)
	closed := store.AddRoom(model.Room{
		Type:      model.RoomTypeDouble,
		Price:     decimal.RequireFromString("299.99"),
		Available: false,
	})

	_, err := svc.Create(context.Background(), request(t, client.ID, closed.ID, "2025-06-01", "2025-06-05"))
	assert.ErrorIs(t, err, booking.ErrRoomUnavailable)
	assert.Equal(t, 0, store.ReservationCount())
}

func TestCreateOverlapBoundaries(t *testing.T) {
	svc, _, _, client, room := newFixture(t)

	_, err := svc.Create(context.Background(), request(t, client.ID, room.ID, "2025-06-01", "2025-06-05"))
	require.NoError(t, err)

	cases := []struct {
		name       string
		start, end string
		booked     bool
	}{
		{"identical range", "2025-06-01", "2025-06-05", true},
		{"contained range", "2025-06-02", "2025-06-04", true},
		{"starts on last day", "2025-06-05", "2025-06-10", true},
		{"ends on first day", "2025-05-28", "2025-06-01", true},
		{"surrounding range", "2025-05-28", "2025-06-10", true},
		{"starts the day after", "2025-06-06", "2025-06-10", false},
		{"ends the day before", "2025-05-28", "2025-05-31", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			view, err := svc.Create(context.Background(), request(t, client.ID, room.ID, tc.start, tc.end))
			if tc.booked {
				assert.ErrorIs(t, err, booking.ErrRoomAlreadyBooked)
				return
			}
			require.NoError(t, err)
			// Clean up so the next case only competes with the
			// original reservation.
			require.NoError(t, svc.Delete(context.Background(), view.ID))
		})
	}
}

func TestCreateOtherRoomUnaffected(t *testing.T) {
	svc, store, _, client, room := newFixture(t)
	other := store.AddRoom(model.Room{
		Type:      model.RoomTypeDouble,
		Price:     decimal.RequireFromString("149.50"),
		Available: true,
	})

	_, err := svc.Create(context.Background(), request(t, client.ID, room.ID, "2025-06-01", "2025-06-05"))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), request(t, client.ID, other.ID, "2025-06-01", "2025-06-05"))
	assert.NoError(t, err)
}

func TestConcurrentCreateSameRoom(t *testing.T) {
	svc, store, _, client, room := newFixture(t)

	const attempts = 16
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(context.Background(), request(t, client.ID, room.ID, "2025-06-01", "2025-06-05"))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, booking.ErrRoomAlreadyBooked)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, store.ReservationCount())
}

func TestGetByID(t *testing.T) {
	svc, _, _, client, room := newFixture(t)

	created, err := svc.Create(context.Background(), request(t, client.ID, room.ID, "2025-06-01", "2025-06-05"))
	require.NoError(t, err)

	view, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *view)
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _, _, _, _ := newFixture(t)

	_, err := svc.GetByID(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, booking.IsNotFound(err))
	assert.EqualError(t, err, "reservation not found with id: 42")
}

func TestDelete(t *testing.T) {
	svc, store, events, client, room := newFixture(t)

	created, err := svc.Create(context.Background(), request(t, client.ID, room.ID, "2025-06-01", "2025-06-05"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Equal(t, 0, store.ReservationCount())
	assert.Equal(t, []int64{created.ID}, events.cancelled)

	_, err = svc.GetByID(context.Background(), created.ID)
	assert.True(t, booking.IsNotFound(err))

	// Deleting again reports not found rather than succeeding silently.
	err = svc.Delete(context.Background(), created.ID)
	assert.True(t, booking.IsNotFound(err))
}

func TestDeleteFreesTheDates(t *testing.T) {
	svc, _, _, client, room := newFixture(t)

	created, err := svc.Create(context.Background(), request(t, client.ID, room.ID, "2025-06-01", "2025-06-05"))
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.Create(context.Background(), request(t, client.ID, room.ID, "2025-06-01", "2025-06-05"))
	assert.NoError(t, err)
}

func TestUpdatePreferencesOnly(t *testing.T) {
	svc, _, events, client, room := newFixture(t)

	created, err := svc.Create(context.Background(), request(t, client.ID, room.ID, "2025-06-01", "2025-06-05"))
	require.NoError(t, err)

	req := request(t, client.ID, room.ID, "2025-06-01", "2025-06-05")
	req.Preferences = "late checkout"

	view, err := svc.Update(context.Background(), created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "late checkout", view.Preferences)
	assert.Equal(t, created.StartDate, view.StartDate)
	assert.Equal(t, created.EndDate, view.EndDate)
	assert.Equal(t, 1, events.updated)
}

func TestUpdateNotFound(t *testing.T) {
	svc, _, _, client, room := newFixture(t)

	_, err := svc.Update(context.Background(), 42, request(t, client.ID, room.ID, "2025-06-01", "2025-06-05"))
	require.Error(t, err)
	assert.True(t, booking.IsNotFound(err))
	assert.EqualError(t, err, "reservation not found with id: 42")
}

func TestUpdateInvalidDateRange(t *testing.T) {
	svc, _, _, client, room := newFixture(t)

	created, err := svc.Create(context.Background(), request(t, client.ID, room.ID, "2025-06-01", "2025-06-05"))
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, request(t, client.ID, room.ID, "2025-06-05", "2025-06-01"))
	assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
}

func TestUpdateRebindsClient(t *testing.T) {
	svc, store, _, client, room := newFixture(t)
	other := store.AddClient(model.Client{
		LastName:  "Martin",
		FirstName: "Marie",
		Email:     "marie.martin@example.com",
		Phone:     "+33605040302",
	})

	created, err := svc.Create(context.Background(), request(t, client.ID, room.ID, "2025-06-01", "2025-06-05"))
	require.NoError(t, err)

	view, err := svc.Update(context.Background(), created.ID, request(t, other.ID, room.ID, "2025-06-01", "2025-06-05"))
	require.NoError(t, err)
	assert.Equal(t, other.ID, view.Client.ID)
	assert.Equal(t, "Martin", view.Client.LastName)
}

func TestUpdateUnknownClient(t *testing.T) {
	svc, _, _, client, room := newFixture(t)

	created, err := svc.Create(context.Background(), request(t, client.ID, room.ID, "2025-06-01", "2025-06-05"))
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, request(t, 9999, room.ID, "2025-06-01", "2025-06-05"))
	require.Error(t, err)
	assert.EqualError(t, err, "client not found with id: 9999")
}

// Changing only the dates does not re-run the overlap check; the
// reservation may be moved onto dates held by another booking for the
// same room.  Moving it to a different room does re-check.
func TestUpdateDateChangeSkipsOverlapCheck(t *testing.T) {
	svc, _, _, client, room := newFixture(t)

	first, err := svc.Create(context.Background(), request(t, client.ID, room.ID, "2025-06-01", "2025-06-05"))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), request(t, client.ID, room.ID, "2025-06-10", "2025-06-15"))
	require.NoError(t, err)

	view, err := svc.Update(context.Background(), first.ID, request(t, client.ID, room.ID, "2025-06-10", "2025-06-15"))
	require.NoError(t, err)
	assert.Equal(t, "2025-06-10", view.StartDate.String())
}

func TestUpdateRoomChangeChecksOverlap(t *testing.T) {
	svc, store, _, client, room := newFixture(t)
	target := store.AddRoom(model.Room{
		Type:      model.RoomTypeDouble,
		Price:     decimal.RequireFromString("149.50"),
		Available: true,
	})

	created, err := svc.Create(context.Background(), request(t, client.ID, room.ID, "2025-06-01", "2025-06-05"))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), request(t, client.ID, target.ID, "2025-06-03", "2025-06-08"))
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, request(t, client.ID, target.ID, "2025-06-01", "2025-06-05"))
	assert.ErrorIs(t, err, booking.ErrRoomAlreadyBooked)

	// The failed move leaves the reservation in its original room.
	view, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, room.ID, view.Room.ID)
}

func TestUpdateRoomChangeToFreeRoom(t *testing.T) {
	svc, store, _, client, room := newFixture(t)
	target := store.AddRoom(model.Room{
		Type:      model.RoomTypeDouble,
		Price:     decimal.RequireFromString("149.50"),
		Available: true,
	})

	created, err := svc.Create(context.Background(), request(t, client.ID, room.ID, "2025-06-01", "2025-06-05"))
	require.NoError(t, err)

	view, err := svc.Update(context.Background(), created.ID, request(t, client.ID, target.ID, "2025-06-01", "2025-06-05"))
	require.NoError(t, err)
	assert.Equal(t, target.ID, view.Room.ID)

	// The vacated room is bookable again.
	_, err = svc.Create(context.Background(), request(t, client.ID, room.ID, "2025-06-01", "2025-06-05"))
	assert.NoError(t, err)
}

func TestUpdateUnknownRoom(t *testing.T) {
	svc, _, _, client, room := newFixture(t)

	created, err := svc.Create(context.Background(), request(t, client.ID, room.ID, "2025-06-01", "2025-06-05"))
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, request(t, client.ID, 9999, "2025-06-01", "2025-06-05"))
	require.Error(t, err)
	assert.EqualError(t, err, "room not found with id: 9999")
}

func TestListAll(t *testing.T) {
	svc, _, _, client, room := newFixture(t)

	list, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.Create(context.Background(), request(t, client.ID, room.ID, "2025-06-01", "2025-06-05"))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), request(t, client.ID, room.ID, "2025-06-10", "2025-06-15"))
	require.NoError(t, err)

	list, err = svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestListByClient(t *testing.T) {
	svc, store, _, client, room := newFixture(t)
	other := store.AddClient(model.Client{
		LastName:  "Martin",
		FirstName: "Marie",
		Email:     "marie.martin@example.com",
		Phone:     "+33605040302",
	})

	_, err := svc.Create(context.Background(), request(t, client.ID, room.ID, "2025-06-01", "2025-06-05"))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), request(t, other.ID, room.ID, "2025-06-10", "2025-06-15"))
	require.NoError(t, err)

	list, err := svc.ListByClient(context.Background(), client.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, client.ID, list[0].Client.ID)
}

func TestListByClientUnknownClientIsEmpty(t *testing.T) {
	svc, _, _, _, _ := newFixture(t)

	list, err := svc.ListByClient(context.Background(), 9999)
	require.NoError(t, err)
	assert.Empty(t, list)
}
