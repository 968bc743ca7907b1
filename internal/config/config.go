package config // package config loads application configuration from environment variables

import (
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

// Config holds all runtime configuration values.  Each field maps to an
// environment variable.  Database settings are required; everything
// else falls back to a sensible default so a bare `go run` against a
// local MySQL works.
type Config struct {
	Env      string // application environment (e.g. "dev", "prod")
	Port     string // HTTP port serving REST, SOAP and GraphQL
	GRPCPort string // port for the typed RPC server; empty disables it
	DBUser   string // database username
	DBPass   string // database password (optional)
	DBHost   string // database host address
	DBPort   string // database port number
	DBName   string // database name
	AMQPURL  string // RabbitMQ URL for event publication; empty disables it
	SeedData bool   // whether to insert sample clients and rooms at startup
}

// Load reads configuration from environment variables.  Missing
// required variables terminate the process with a fatal log message.
func Load() Config {
	return Config{
		Env:      getenvDefault("APP_ENV", "dev"),
		Port:     getenvDefault("APP_PORT", "8080"),
		GRPCPort: os.Getenv("GRPC_PORT"),
		DBUser:   must("DB_USER"),
		DBPass:   os.Getenv("DB_PASS"),
		DBHost:   must("DB_HOST"),
		DBPort:   must("DB_PORT"),
		DBName:   must("DB_NAME"),
		AMQPURL:  os.Getenv("RABBITMQ_URL"),
		SeedData: getenvBool("SEED_DATA", true),
	}
}

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatal().Str("var", key).Msg("missing required env var")
	}
	return v
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
