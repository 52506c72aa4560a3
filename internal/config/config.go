// Package config provides the environment configuration surface for the
// calendar gateway. Values are loaded from environment variables with
// sensible defaults; an optional .env file is loaded by the CLI layer
// before Load is called.
//
// Environment Variables:
//
// Google credentials (one mode must be resolvable at first use):
//   - GOOGLE_CLIENT_ID: OAuth2 client ID
//   - GOOGLE_CLIENT_SECRET: OAuth2 client secret
//   - GOOGLE_REFRESH_TOKEN: OAuth2 refresh token
//   - GOOGLE_REDIRECT_URI: OAuth2 redirect URI (default: urn:ietf:wg:oauth:2.0:oob)
//   - GOOGLE_SERVICE_ACCOUNT_KEY: service account key as a literal JSON blob
//   - GOOGLE_SERVICE_ACCOUNT_KEY_FILE: path to a service account key file
//
// Service-account configuration takes precedence over the OAuth2 triple.
// When both the literal key and the key file are set, the literal wins and
// a warning is logged.
//
// Application settings:
//   - GOOGLE_CALENDAR_ID: default calendar for operations (default: primary)
//   - LOG_LEVEL: debug, info, warn or error (default: info)
//   - HOST: REST listen host (default: 0.0.0.0)
//   - PORT: REST listen port (default: 3000)
//   - METRICS_ADDR: Prometheus metrics listener (default: :9090)
package config

import "os"

// PrimaryCalendar is the sentinel calendar identifier meaning "the
// authenticated identity's default calendar".
const PrimaryCalendar = "primary"

// DefaultRedirectURI is the out-of-band redirect used when none is
// configured; refresh-token flows never follow it.
const DefaultRedirectURI = "urn:ietf:wg:oauth:2.0:oob"

// Config holds all configuration values for the gateway.
type Config struct {
	// OAuth2 credentials
	ClientID     string
	ClientSecret string
	RefreshToken string
	RedirectURI  string

	// Service account credentials. Key is a literal JSON blob, KeyFile a
	// path on disk. Key wins when both are set.
	ServiceAccountKey     string
	ServiceAccountKeyFile string

	// CalendarID is the default calendar for all operations.
	CalendarID string

	// Application settings
	LogLevel    string
	Host        string
	Port        string
	MetricsAddr string
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		ClientID:              os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret:          os.Getenv("GOOGLE_CLIENT_SECRET"),
		RefreshToken:          os.Getenv("GOOGLE_REFRESH_TOKEN"),
		RedirectURI:           getEnv("GOOGLE_REDIRECT_URI", DefaultRedirectURI),
		ServiceAccountKey:     os.Getenv("GOOGLE_SERVICE_ACCOUNT_KEY"),
		ServiceAccountKeyFile: os.Getenv("GOOGLE_SERVICE_ACCOUNT_KEY_FILE"),
		CalendarID:            getEnv("GOOGLE_CALENDAR_ID", PrimaryCalendar),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		Host:                  getEnv("HOST", "0.0.0.0"),
		Port:                  getEnv("PORT", "3000"),
		MetricsAddr:           getEnv("METRICS_ADDR", ":9090"),
	}
}

// HasServiceAccount reports whether service-account configuration is
// present in either form.
func (c *Config) HasServiceAccount() bool {
	return c.ServiceAccountKey != "" || c.ServiceAccountKeyFile != ""
}

// HasOAuth2 reports whether the complete OAuth2 triple is present.
func (c *Config) HasOAuth2() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
}

// ListenAddr returns the REST server bind address.
func (c *Config) ListenAddr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
