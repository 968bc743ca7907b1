package database

import (
	"context"
	"database/sql"
)

// schema defines the three tables the service owns.  Statements are
// idempotent so EnsureSchema can run on every startup.  The overlap
// rule is enforced by the booking service at write time, not by a
// schema constraint, so reservations carries only plain foreign keys
// and an index covering the overlap query.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id         BIGINT       NOT NULL AUTO_INCREMENT,
		last_name  VARCHAR(100) NOT NULL,
		first_name VARCHAR(100) NOT NULL,
		email      VARCHAR(255) NOT NULL,
		phone      VARCHAR(30)  NOT NULL,
		PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS rooms (
		id        BIGINT                   NOT NULL AUTO_INCREMENT,
		room_type ENUM('SIMPLE','DOUBLE')  NOT NULL,
		price     DECIMAL(10,2)            NOT NULL,
		available BOOLEAN                  NOT NULL DEFAULT TRUE,
		PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS reservations (
		id          BIGINT       NOT NULL AUTO_INCREMENT,
		client_id   BIGINT       NOT NULL,
		room_id     BIGINT       NOT NULL,
		start_date  DATE         NOT NULL,
		end_date    DATE         NOT NULL,
		preferences VARCHAR(500) NULL,
		PRIMARY KEY (id),
		KEY idx_reservations_room_dates (room_id, start_date, end_date),
		KEY idx_reservations_client (client_id),
		CONSTRAINT fk_reservations_client FOREIGN KEY (client_id) REFERENCES clients (id),
		CONSTRAINT fk_reservations_room   FOREIGN KEY (room_id)   REFERENCES rooms (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the service's tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
