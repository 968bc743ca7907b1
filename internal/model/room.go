package model

import "github.com/shopspring/decimal"

// RoomType enumerates the kinds of rooms the hotel offers.  The values
// are stored verbatim in the rooms.room_type column.
type RoomType string

const (
	RoomTypeSimple RoomType = "SIMPLE" // single occupancy room
	RoomTypeDouble RoomType = "DOUBLE" // double occupancy room
)

// ValidRoomType reports whether s names a known room type.
func ValidRoomType(s string) bool {
	switch RoomType(s) {
	case RoomTypeSimple, RoomTypeDouble:
		return true
	}
	return false
}

// Room is a bookable hotel room.  Availability is a static gate checked
// at booking time; creating or deleting a reservation never flips it.
//
// Fields:
//  ID        – primary key identifier.
//  Type      – room category (SIMPLE or DOUBLE).
//  Price     – nightly price with two fraction digits.
//  Available – whether new reservations may target this room.
type Room struct {
	ID        int64           // rooms.id
	Type      RoomType        // rooms.room_type
	Price     decimal.Decimal // rooms.price (DECIMAL(10,2))
	Available bool            // rooms.available
}
