package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the API server settings read from the environment.
type Config struct {
	Port        int
	JWTSecret   string
	CORSOrigins string
	StaticDir   string
	DB          Database
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Schema   string
}

// DSN returns the postgres connection string understood by the pgx driver.
func (d Database) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": {"disable"}, "search_path": {d.Schema}}.Encode(),
	}
	return u.String()
}

// ErrMissingJWTSecret is returned by Validate when no signing key is set.
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

// Validate reports settings the server cannot safely start without.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

// Load reads an optional .env file and then the process environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("error loading env file: %w", err)
	}

	port, err := strconv.Atoi(getenv("PORT", "8080"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid PORT: %w", err)
	}

	cfg := Config{
		Port:        port,
		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET")),
		CORSOrigins: getenv("CORS_ORIGINS", "http://localhost:8080"),
		StaticDir:   os.Getenv("STATIC_DIR"),
		DB: Database{
			Host:     getenv("DB_HOST", "localhost"),
			Port:     getenv("DB_PORT", "5432"),
			User:     getenv("DB_USERNAME", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getenv("DB_DATABASE", "notecards"),
			Schema:   getenv("DB_SCHEMA", "public"),
		},
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
