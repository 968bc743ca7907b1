package rpc

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/iliyamo/hotel-reservation/internal/booking"
)

// ReservationServiceServer is the typed contract the RPC front end
// exposes: the same six operations every other adapter offers.
type ReservationServiceServer interface {
	CreateReservation(ctx context.Context, req *CreateReservationRequest) (*ReservationResponse, error)
	GetReservation(ctx context.Context, req *GetReservationRequest) (*ReservationResponse, error)
	UpdateReservation(ctx context.Context, req *UpdateReservationRequest) (*ReservationResponse, error)
	DeleteReservation(ctx context.Context, req *DeleteReservationRequest) (*DeleteReservationResponse, error)
	ListReservations(ctx context.Context, req *ListReservationsRequest) (*ListReservationsResponse, error)
	ListReservationsByClient(ctx context.Context, req *ListReservationsByClientRequest) (*ListReservationsResponse, error)
}

// Server adapts the booking service onto the RPC contract.
type Server struct {
	svc *booking.Service
}

// NewServer constructs the RPC adapter.
func NewServer(svc *booking.Service) *Server {
	if svc == nil {
		panic("nil service passed to rpc.NewServer")
	}
	return &Server{svc: svc}
}

// CreateReservation creates a reservation over RPC.
func (s *Server) CreateReservation(ctx context.Context, req *CreateReservationRequest) (*ReservationResponse, error) {
	canonical, err := toCanonical(req.ClientID, req.RoomID, req.StartDate, req.EndDate, req.Preferences)
	if err != nil {
		return nil, err
	}
	view, err := s.svc.Create(ctx, canonical)
	if err != nil {
		return nil, rpcError(err)
	}
	return &ReservationResponse{Reservation: toWire(*view)}, nil
}

// GetReservation fetches one reservation over RPC.
func (s *Server) GetReservation(ctx context.Context, req *GetReservationRequest) (*ReservationResponse, error) {
	view, err := s.svc.GetByID(ctx, req.ID)
	if err != nil {
		return nil, rpcError(err)
	}
	return &ReservationResponse{Reservation: toWire(*view)}, nil
}

// UpdateReservation rewrites one reservation over RPC.
func (s *Server) UpdateReservation(ctx context.Context, req *UpdateReservationRequest) (*ReservationResponse, error) {
	canonical, err := toCanonical(req.ClientID, req.RoomID, req.StartDate, req.EndDate, req.Preferences)
	if err != nil {
		return nil, err
	}
	view, err := s.svc.Update(ctx, req.ID, canonical)
	if err != nil {
		return nil, rpcError(err)
	}
	return &ReservationResponse{Reservation: toWire(*view)}, nil
}

// DeleteReservation removes one reservation over RPC.
func (s *Server) DeleteReservation(ctx context.Context, req *DeleteReservationRequest) (*DeleteReservationResponse, error) {
	if err := s.svc.Delete(ctx, req.ID); err != nil {
		return nil, rpcError(err)
	}
	return &DeleteReservationResponse{Success: true}, nil
}

// ListReservations returns every reservation over RPC.
func (s *Server) ListReservations(ctx context.Context, req *ListReservationsRequest) (*ListReservationsResponse, error) {
	views, err := s.svc.ListAll(ctx)
	if err != nil {
		return nil, rpcError(err)
	}
	return &ListReservationsResponse{Reservations: toWireList(views)}, nil
}

// ListReservationsByClient returns one client's reservations over RPC.
func (s *Server) ListReservationsByClient(ctx context.Context, req *ListReservationsByClientRequest) (*ListReservationsResponse, error) {
	views, err := s.svc.ListByClient(ctx, req.ClientID)
	if err != nil {
		return nil, rpcError(err)
	}
	return &ListReservationsResponse{Reservations: toWireList(views)}, nil
}

// toCanonical builds the canonical request, rejecting unparseable dates
// with InvalidArgument before the booking service is involved.
func toCanonical(clientID, roomID int64, start, end, prefs string) (booking.ReservationRequest, error) {
	startDate, err := booking.ParseDate(start)
	if err != nil {
		return booking.ReservationRequest{}, status.Error(codes.InvalidArgument, "invalid start_date, expected YYYY-MM-DD")
	}
	endDate, err := booking.ParseDate(end)
	if err != nil {
		return booking.ReservationRequest{}, status.Error(codes.InvalidArgument, "invalid end_date, expected YYYY-MM-DD")
	}
	return booking.ReservationRequest{
		ClientID:    clientID,
		RoomID:      roomID,
		StartDate:   startDate,
		EndDate:     endDate,
		Preferences: prefs,
	}, nil
}

func toWire(view booking.ReservationView) *Reservation {
	return &Reservation{
		ID: view.ID,
		Client: &Client{
			ID:        view.Client.ID,
			LastName:  view.Client.LastName,
			FirstName: view.Client.FirstName,
			Email:     view.Client.Email,
			Phone:     view.Client.Phone,
		},
		Room: &Room{
			ID:        view.Room.ID,
			RoomType:  view.Room.RoomType,
			Price:     view.Room.Price.StringFixed(2),
			Available: view.Room.Available,
		},
		StartDate:   view.StartDate.String(),
		EndDate:     view.EndDate.String(),
		Preferences: view.Preferences,
	}
}

func toWireList(views []booking.ReservationView) []*Reservation {
	out := make([]*Reservation, 0, len(views))
	for _, v := range views {
		out = append(out, toWire(v))
	}
	return out
}

// rpcError maps booking failures onto gRPC status codes: not found →
// NotFound, rejected business rules → FailedPrecondition, anything
// else → Internal.
func rpcError(err error) error {
	switch {
	case booking.IsNotFound(err):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, booking.ErrInvalidDateRange),
		errors.Is(err, booking.ErrRoomUnavailable),
		errors.Is(err, booking.ErrRoomAlreadyBooked):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

const serviceName = "hotel.ReservationService"

// RegisterReservationServiceServer registers the service on a gRPC
// server created with grpc.ForceServerCodec(Codec()).
func RegisterReservationServiceServer(s *grpc.Server, srv ReservationServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

// serviceDesc is written by hand: the messages are plain structs, so
// there is no generated descriptor to lean on.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*ReservationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateReservation", Handler: createReservationHandler},
		{MethodName: "GetReservation", Handler: getReservationHandler},
		{MethodName: "UpdateReservation", Handler: updateReservationHandler},
		{MethodName: "DeleteReservation", Handler: deleteReservationHandler},
		{MethodName: "ListReservations", Handler: listReservationsHandler},
		{MethodName: "ListReservationsByClient", Handler: listReservationsByClientHandler},
	},
	Streams: []grpc.StreamDesc{},
}

func createReservationHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateReservationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReservationServiceServer).CreateReservation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/CreateReservation"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReservationServiceServer).CreateReservation(ctx, req.(*CreateReservationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getReservationHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetReservationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReservationServiceServer).GetReservation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/GetReservation"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReservationServiceServer).GetReservation(ctx, req.(*GetReservationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func updateReservationHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateReservationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReservationServiceServer).UpdateReservation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/UpdateReservation"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReservationServiceServer).UpdateReservation(ctx, req.(*UpdateReservationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func deleteReservationHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteReservationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReservationServiceServer).DeleteReservation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/DeleteReservation"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReservationServiceServer).DeleteReservation(ctx, req.(*DeleteReservationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func listReservationsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListReservationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReservationServiceServer).ListReservations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/ListReservations"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReservationServiceServer).ListReservations(ctx, req.(*ListReservationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func listReservationsByClientHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListReservationsByClientRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReservationServiceServer).ListReservationsByClient(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/ListReservationsByClient"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReservationServiceServer).ListReservationsByClient(ctx, req.(*ListReservationsByClientRequest))
	}
	return interceptor(ctx, in, info, handler)
}
