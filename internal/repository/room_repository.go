package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// RoomRepo provides access to hotel rooms.  The booking service only
// reads rooms; the availability flag is mutated by direct field update
// outside this service's scope.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo returns a new RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// GetByID returns the room with the given id, or (nil, nil) when no
// such room exists.
func (r *RoomRepo) GetByID(ctx context.Context, id int64) (*model.Room, error) {
	const q = `SELECT id, room_type, price, available FROM rooms WHERE id = ?`
	var rm model.Room
	err := r.db.QueryRowContext(ctx, q, id).Scan(&rm.ID, &rm.Type, &rm.Price, &rm.Available)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rm, nil
}

// Create inserts a new room and populates its generated id.  Used by
// the sample-data seeder only.
func (r *RoomRepo) Create(ctx context.Context, rm *model.Room) error {
	const q = `INSERT INTO rooms (room_type, price, available) VALUES (?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q, string(rm.Type), rm.Price, rm.Available)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	rm.ID = id
	return nil
}

// Count returns the number of room records.
func (r *RoomRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rooms`).Scan(&n)
	return n, err
}
