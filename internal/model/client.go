package model

// Client is a hotel guest on whose behalf reservations are made.
// Clients are created at seed time and are read-only inside this
// service: no operation updates or deletes a client record.
//
// Fields:
//  ID        – primary key identifier.
//  LastName  – family name of the guest.
//  FirstName – given name of the guest.
//  Email     – contact email address.
//  Phone     – contact phone number.
type Client struct {
	ID        int64  // clients.id
	LastName  string // clients.last_name
	FirstName string // clients.first_name
	Email     string // clients.email
	Phone     string // clients.phone
}
