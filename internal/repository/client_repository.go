package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// ClientRepo provides read access to hotel clients.  Clients are only
// ever written at seed time, so the write surface is limited to Create.
type ClientRepo struct {
	db *sql.DB
}

// NewClientRepo returns a new ClientRepo bound to the given database.
func NewClientRepo(db *sql.DB) *ClientRepo { return &ClientRepo{db: db} }

// GetByID returns the client with the given id, or (nil, nil) when no
// such client exists.
func (r *ClientRepo) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	const q = `SELECT id, last_name, first_name, email, phone FROM clients WHERE id = ?`
	var c model.Client
	err := r.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.LastName, &c.FirstName, &c.Email, &c.Phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new client and populates its generated id.  Used by
// the sample-data seeder only.
func (r *ClientRepo) Create(ctx context.Context, c *model.Client) error {
	const q = `INSERT INTO clients (last_name, first_name, email, phone) VALUES (?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q, c.LastName, c.FirstName, c.Email, c.Phone)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

// Count returns the number of client records.
func (r *ClientRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`).Scan(&n)
	return n, err
}
