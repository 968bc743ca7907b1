// Package soap implements the document-exchange front end of the
// booking service.  All operations arrive as named elements inside a
// SOAP 1.1 envelope POSTed to a single endpoint; results and faults go
// back the same way.  Dates travel as YYYY-MM-DD strings on the wire.
package soap

import "encoding/xml"

// serviceNS is the namespace of every request and response element.
const serviceNS = "http://soap.hotel.com/"

// requestEnvelope decodes an incoming envelope.  Exactly one pointer in
// the body is non-nil after decoding; the handler dispatches on it.
// Element matching is by local name so clients may prefix the service
// namespace however they like.
type requestEnvelope struct {
	XMLName xml.Name    `xml:"Envelope"`
	Body    requestBody `xml:"Body"`
}

type requestBody struct {
	Create   *createReservation       `xml:"createReservation"`
	Get      *getReservationByID      `xml:"getReservationById"`
	Update   *updateReservation       `xml:"updateReservation"`
	Delete   *deleteReservation       `xml:"deleteReservation"`
	GetAll   *getAllReservations      `xml:"getAllReservations"`
	ByClient *getReservationsByClient `xml:"getReservationsByClient"`
}

type createReservation struct {
	ClientID    int64  `xml:"clientId"`
	RoomID      int64  `xml:"roomId"`
	StartDate   string `xml:"startDate"`
	EndDate     string `xml:"endDate"`
	Preferences string `xml:"preferences"`
}

type getReservationByID struct {
	ID int64 `xml:"id"`
}

type updateReservation struct {
	ID          int64  `xml:"id"`
	ClientID    int64  `xml:"clientId"`
	RoomID      int64  `xml:"roomId"`
	StartDate   string `xml:"startDate"`
	EndDate     string `xml:"endDate"`
	Preferences string `xml:"preferences"`
}

type deleteReservation struct {
	ID int64 `xml:"id"`
}

type getAllReservations struct{}

type getReservationsByClient struct {
	ClientID int64 `xml:"clientId"`
}

// responseEnvelope wraps one response element or one fault.
type responseEnvelope struct {
	XMLName xml.Name     `xml:"soap:Envelope"`
	NS      string       `xml:"xmlns:soap,attr"`
	Body    responseBody `xml:"soap:Body"`
}

type responseBody struct {
	Content any `xml:",omitempty"`
}

// fault is a SOAP 1.1 fault.  faultcode soap:Client marks rejected or
// unresolvable requests, soap:Server marks internal failures.
type fault struct {
	XMLName     xml.Name `xml:"soap:Fault"`
	Code        string   `xml:"faultcode"`
	FaultString string   `xml:"faultstring"`
}

// Wire shapes for responses.

type clientSoap struct {
	ID        int64  `xml:"id"`
	LastName  string `xml:"lastName"`
	FirstName string `xml:"firstName"`
	Email     string `xml:"email"`
	Phone     string `xml:"phone"`
}

type roomSoap struct {
	ID        int64  `xml:"id"`
	RoomType  string `xml:"roomType"`
	Price     string `xml:"price"`
	Available bool   `xml:"available"`
}

type reservationSoap struct {
	ID          int64      `xml:"id"`
	Client      clientSoap `xml:"client"`
	Room        roomSoap   `xml:"room"`
	StartDate   string     `xml:"startDate"`
	EndDate     string     `xml:"endDate"`
	Preferences string     `xml:"preferences,omitempty"`
}

type createReservationResponse struct {
	XMLName     xml.Name        `xml:"http://soap.hotel.com/ createReservationResponse"`
	Reservation reservationSoap `xml:"reservation"`
}

type getReservationByIDResponse struct {
	XMLName     xml.Name        `xml:"http://soap.hotel.com/ getReservationByIdResponse"`
	Reservation reservationSoap `xml:"reservation"`
}

type updateReservationResponse struct {
	XMLName     xml.Name        `xml:"http://soap.hotel.com/ updateReservationResponse"`
	Reservation reservationSoap `xml:"reservation"`
}

type deleteReservationResponse struct {
	XMLName xml.Name `xml:"http://soap.hotel.com/ deleteReservationResponse"`
	Success bool     `xml:"success"`
}

type getAllReservationsResponse struct {
	XMLName      xml.Name          `xml:"http://soap.hotel.com/ getAllReservationsResponse"`
	Reservations []reservationSoap `xml:"reservations"`
}

type getReservationsByClientResponse struct {
	XMLName      xml.Name          `xml:"http://soap.hotel.com/ getReservationsByClientResponse"`
	Reservations []reservationSoap `xml:"reservations"`
}
