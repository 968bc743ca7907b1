// Package graph implements the query/mutation front end of the booking
// service using graphql-go.  The schema mirrors the canonical shapes:
// reservations nest fully resolved client and room views, dates travel
// as YYYY-MM-DD strings.
package graph

import (
	"errors"

	"github.com/graphql-go/graphql"

	"github.com/iliyamo/hotel-reservation/internal/booking"
)

// NewSchema builds the executable schema bound to a booking service.
func NewSchema(svc *booking.Service) (graphql.Schema, error) {
	roomTypeEnum := graphql.NewEnum(graphql.EnumConfig{
		Name: "RoomType",
		Values: graphql.EnumValueConfigMap{
			"SIMPLE": &graphql.EnumValueConfig{Value: "SIMPLE"},
			"DOUBLE": &graphql.EnumValueConfig{Value: "DOUBLE"},
		},
	})

	clientType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Client",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"lastName":  &graphql.Field{Type: graphql.String},
			"firstName": &graphql.Field{Type: graphql.String},
			"email":     &graphql.Field{Type: graphql.String},
			"phone":     &graphql.Field{Type: graphql.String},
		},
	})

	roomType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Room",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"roomType": &graphql.Field{Type: roomTypeEnum},
			"price": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					room, ok := p.Source.(booking.RoomView)
					if !ok {
						return nil, errors.New("unexpected source for price")
					}
					return room.Price.InexactFloat64(), nil
				},
			},
			"available": &graphql.Field{Type: graphql.Boolean},
		},
	})

	reservationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Reservation",
		Fields: graphql.Fields{
			"id": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"client": &graphql.Field{
				Type: clientType,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return sourceView(p).Client, nil
				},
			},
			"room": &graphql.Field{
				Type: roomType,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return sourceView(p).Room, nil
				},
			},
			"startDate": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return sourceView(p).StartDate.String(), nil
				},
			},
			"endDate": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return sourceView(p).EndDate.String(), nil
				},
			},
			"preferences": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return sourceView(p).Preferences, nil
				},
			},
		},
	})

	reservationInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ReservationInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"clientId":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"roomId":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"startDate":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"endDate":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"preferences": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"reservationById": &graphql.Field{
				Type: reservationType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					view, err := svc.GetByID(p.Context, argInt64(p.Args, "id"))
					if err != nil {
						return nil, err
					}
					return *view, nil
				},
			},
			"allReservations": &graphql.Field{
				Type: graphql.NewList(reservationType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return svc.ListAll(p.Context)
				},
			},
			"reservationsByClient": &graphql.Field{
				Type: graphql.NewList(reservationType),
				Args: graphql.FieldConfigArgument{
					"clientId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return svc.ListByClient(p.Context, argInt64(p.Args, "clientId"))
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createReservation": &graphql.Field{
				Type: reservationType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(reservationInput)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					req, err := inputToRequest(p.Args["input"])
					if err != nil {
						return nil, err
					}
					view, err := svc.Create(p.Context, req)
					if err != nil {
						return nil, err
					}
					return *view, nil
				},
			},
			"updateReservation": &graphql.Field{
				Type: reservationType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(reservationInput)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					req, err := inputToRequest(p.Args["input"])
					if err != nil {
						return nil, err
					}
					view, err := svc.Update(p.Context, argInt64(p.Args, "id"), req)
					if err != nil {
						return nil, err
					}
					return *view, nil
				},
			},
			"deleteReservation": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					if err := svc.Delete(p.Context, argInt64(p.Args, "id")); err != nil {
						return nil, err
					}
					return true, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}

// sourceView extracts the reservation view a field resolver operates on.
func sourceView(p graphql.ResolveParams) booking.ReservationView {
	if v, ok := p.Source.(booking.ReservationView); ok {
		return v
	}
	return booking.ReservationView{}
}

// argInt64 reads an Int argument; graphql-go delivers Int args as int.
func argInt64(args map[string]any, name string) int64 {
	if n, ok := args[name].(int); ok {
		return int64(n)
	}
	return 0
}

// inputToRequest converts a ReservationInput argument map into the
// canonical request, parsing the string dates.
func inputToRequest(raw any) (booking.ReservationRequest, error) {
	input, ok := raw.(map[string]any)
	if !ok {
		return booking.ReservationRequest{}, errors.New("invalid input")
	}
	startDate, err := booking.ParseDate(stringArg(input, "startDate"))
	if err != nil {
		return booking.ReservationRequest{}, errors.New("invalid startDate, expected YYYY-MM-DD")
	}
	endDate, err := booking.ParseDate(stringArg(input, "endDate"))
	if err != nil {
		return booking.ReservationRequest{}, errors.New("invalid endDate, expected YYYY-MM-DD")
	}
	return booking.ReservationRequest{
		ClientID:    argInt64(input, "clientId"),
		RoomID:      argInt64(input, "roomId"),
		StartDate:   startDate,
		EndDate:     endDate,
		Preferences: stringArg(input, "preferences"),
	}, nil
}

func stringArg(args map[string]any, name string) string {
	if s, ok := args[name].(string); ok {
		return s
	}
	return ""
}
