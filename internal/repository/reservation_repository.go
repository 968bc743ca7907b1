package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// ReservationRepo provides CRUD operations for reservations.  Dates are
// stored in DATE columns and travel as time.Time values truncated to
// midnight UTC (the driver is configured with parseTime=true&loc=UTC).
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

const reservationColumns = `id, client_id, room_id, start_date, end_date, preferences`

// scanReservation reads one row into a Reservation, converting the
// nullable preferences column to an empty string.
func scanReservation(row interface{ Scan(...any) error }) (*model.Reservation, error) {
	var res model.Reservation
	var prefs sql.NullString
	if err := row.Scan(&res.ID, &res.ClientID, &res.RoomID, &res.StartDate, &res.EndDate, &prefs); err != nil {
		return nil, err
	}
	if prefs.Valid {
		res.Preferences = prefs.String
	}
	return &res, nil
}

// GetByID returns the reservation with the given id, or (nil, nil) when
// no such reservation exists.
func (r *ReservationRepo) GetByID(ctx context.Context, id int64) (*model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = ?`
	res, err := scanReservation(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ListAll returns every reservation ordered by id.
func (r *ReservationRepo) ListAll(ctx context.Context) ([]model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations ORDER BY id`
	return r.list(ctx, q)
}

// ListByClient returns the reservations held by one client, ordered by
// start date.  An unknown client simply yields an empty slice.
func (r *ReservationRepo) ListByClient(ctx context.Context, clientID int64) ([]model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations WHERE client_id = ? ORDER BY start_date`
	return r.list(ctx, q, clientID)
}

// ListByRoom returns the reservations targeting one room, ordered by
// start date.
func (r *ReservationRepo) ListByRoom(ctx context.Context, roomID int64) ([]model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations WHERE room_id = ? ORDER BY start_date`
	return r.list(ctx, q, roomID)
}

// FindOverlapping returns every reservation for the room whose date
// range overlaps [start, end].  Both endpoints are inclusive: a stay
// ending on a given day conflicts with one starting that same day.
func (r *ReservationRepo) FindOverlapping(ctx context.Context, roomID int64, start, end time.Time) ([]model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations
	           WHERE room_id = ? AND start_date <= ? AND end_date >= ?`
	return r.list(ctx, q, roomID, end, start)
}

func (r *ReservationRepo) list(ctx context.Context, q string, args ...any) ([]model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new reservation and populates its generated id.  The
// insert and the read-back of column defaults run inside a transaction.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	const q = `INSERT INTO reservations (client_id, room_id, start_date, end_date, preferences)
	           VALUES (?, ?, ?, ?, ?)`
	result, err := tx.ExecContext(ctx, q, res.ClientID, res.RoomID, res.StartDate, res.EndDate, nullable(res.Preferences))
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = id

	const sel = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = ?`
	stored, err := scanReservation(tx.QueryRowContext(ctx, sel, id))
	if err != nil {
		return err
	}
	*res = *stored

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// Update rewrites all mutable columns of an existing reservation.
func (r *ReservationRepo) Update(ctx context.Context, res *model.Reservation) error {
	const q = `UPDATE reservations
	           SET client_id = ?, room_id = ?, start_date = ?, end_date = ?, preferences = ?
	           WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q, res.ClientID, res.RoomID, res.StartDate, res.EndDate, nullable(res.Preferences), res.ID)
	return err
}

// Delete removes a reservation by id.  Deleting an absent id is a
// no-op; existence checks are the caller's responsibility.
func (r *ReservationRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id)
	return err
}

// nullable maps an empty string to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
