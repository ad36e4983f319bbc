package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string
	ServerPort       string
	JWTSecret        string
	JWTIssuer        string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A local .env overrides nothing that is already exported.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		ServerPort:       "9446",
		JWTSecret:        "local-dev-secret",
		JWTIssuer:        "finance-tracker-dev",
	}

	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")
	envServerPort := os.Getenv("SERVER_PORT")
	envJWTSecret := os.Getenv("JWT_SECRET")
	envJWTIssuer := os.Getenv("JWT_ISSUER")

	if len(envPostgresAddress) != 0 {
		env.PostgresAddress = envPostgresAddress
	}

	if len(envPostgresPort) != 0 {
		env.PostgresPort = envPostgresPort
	}

	if len(envPostgresDB) != 0 {
		env.PostgresDB = envPostgresDB
	}

	if len(envPostgresUsername) != 0 {
		env.PostgresUsername = envPostgresUsername
	}

	if len(envPostgresPassword) != 0 {
		env.PostgresPassword = envPostgresPassword
	}

	if len(envServerPort) != 0 {
		env.ServerPort = envServerPort
	}

	if len(envJWTSecret) != 0 {
		env.JWTSecret = envJWTSecret
	}

	if len(envJWTIssuer) != 0 {
		env.JWTIssuer = envJWTIssuer
	}

	return &env, nil
}

// ConnectionString assembles the postgres DSN used by both the server and
// the migrations runner.
func (c *Config) ConnectionString() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
