package database

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/repository"
)

// Seed populates sample clients and rooms so the four transport fronts
// have data to work against out of the box.  It is a no-op when any
// client already exists, so restarting the server never duplicates
// rows.  Reservations are never seeded; those only come into existence
// through the booking service.
func Seed(ctx context.Context, db *sql.DB, log zerolog.Logger) error {
	clients := repository.NewClientRepo(db)
	rooms := repository.NewRoomRepo(db)

	n, err := clients.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Debug().Int64("clients", n).Msg("sample data already present, skipping seed")
		return nil
	}

	log.Info().Msg("seeding sample data")

	sampleClients := []model.Client{
		{LastName: "Dupont", FirstName: "Jean", Email: "jean.dupont@email.com", Phone: "+33612345678"},
		{LastName: "Martin", FirstName: "Marie", Email: "marie.martin@email.com", Phone: "+33623456789"},
		{LastName: "Bernard", FirstName: "Pierre", Email: "pierre.bernard@email.com", Phone: "+33634567890"},
	}
	for i := range sampleClients {
		if err := clients.Create(ctx, &sampleClients[i]); err != nil {
			return err
		}
	}
	log.Info().Int("count", len(sampleClients)).Msg("seeded sample clients")

	sampleRooms := []model.Room{
		{Type: model.RoomTypeSimple, Price: decimal.RequireFromString("89.99"), Available: true},
		{Type: model.RoomTypeDouble, Price: decimal.RequireFromString("149.99"), Available: true},
		{Type: model.RoomTypeSimple, Price: decimal.RequireFromString("79.99"), Available: true},
		{Type: model.RoomTypeDouble, Price: decimal.RequireFromString("199.99"), Available: true},
		{Type: model.RoomTypeDouble, Price: decimal.RequireFromString("299.99"), Available: false},
	}
	for i := range sampleRooms {
		if err := rooms.Create(ctx, &sampleRooms[i]); err != nil {
			return err
		}
	}
	log.Info().Int("count", len(sampleRooms)).Msg("seeded sample rooms")

	return nil
}
