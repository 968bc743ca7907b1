package main // Entry point package

import (
	"context"
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"google.golang.org/grpc"

	"github.com/iliyamo/hotel-reservation/internal/booking"
	"github.com/iliyamo/hotel-reservation/internal/config"
	"github.com/iliyamo/hotel-reservation/internal/database"
	"github.com/iliyamo/hotel-reservation/internal/graph"
	"github.com/iliyamo/hotel-reservation/internal/handler"
	"github.com/iliyamo/hotel-reservation/internal/middleware"
	"github.com/iliyamo/hotel-reservation/internal/queue"
	"github.com/iliyamo/hotel-reservation/internal/repository"
	"github.com/iliyamo/hotel-reservation/internal/router"
	"github.com/iliyamo/hotel-reservation/internal/rpc"
	"github.com/iliyamo/hotel-reservation/internal/soap"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments use the environment

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	zlog.Logger = log

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	ctx := context.Background()
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("schema bootstrap failed")
	}
	if cfg.SeedData {
		if err := database.Seed(ctx, db, log); err != nil {
			log.Fatal().Err(err).Msg("sample data seed failed")
		}
	}

	clients := repository.NewClientRepo(db)
	rooms := repository.NewRoomRepo(db)
	reservations := repository.NewReservationRepo(db)

	var events booking.EventPublisher
	if cfg.AMQPURL != "" {
		events = queue.NewPublisher(cfg.AMQPURL, log)
	}

	svc := booking.New(clients, rooms, reservations, events, log)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewRequestValidator()
	e.Use(middleware.RequestLogger(log))

	cacheMW := middleware.ResponseCache(config.LoadCacheConfig(), config.NewRedisClient())
	router.RegisterAPI(e, handler.NewReservationHandler(svc), cacheMW)
	router.RegisterSOAP(e, soap.NewHandler(svc))

	gql, err := graph.NewHandler(svc)
	if err != nil {
		log.Fatal().Err(err).Msg("graphql schema build failed")
	}
	router.RegisterGraphQL(e, gql)

	if cfg.GRPCPort != "" {
		go serveRPC(cfg.GRPCPort, svc, log)
	}

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("http server listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("http server stopped")
	}
}

// serveRPC runs the typed RPC front end on its own listener.
func serveRPC(port string, svc *booking.Service, log zerolog.Logger) {
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		log.Fatal().Err(err).Str("port", port).Msg("rpc listen failed")
	}
	s := grpc.NewServer(grpc.ForceServerCodec(rpc.Codec()))
	rpc.RegisterReservationServiceServer(s, rpc.NewServer(svc))
	log.Info().Str("port", port).Msg("rpc server listening")
	if err := s.Serve(lis); err != nil {
		log.Fatal().Err(err).Msg("rpc server stopped")
	}
}
