package google

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/calgate/calgate/internal/calerr"
	"github.com/calgate/calgate/internal/config"
)

// Mode identifies the selected credential mode.
type Mode string

const (
	ModeOAuth2         Mode = "oauth2"
	ModeServiceAccount Mode = "service-account"
)

// Credentials is the discriminated credential configuration: exactly one of
// the two concrete types is produced per process.
type Credentials interface {
	Mode() Mode
}

// OAuth2Credentials carries the refresh-token triple plus redirect URI.
type OAuth2Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	RedirectURI  string
}

// Mode implements Credentials.
func (*OAuth2Credentials) Mode() Mode { return ModeOAuth2 }

// ServiceAccountCredentials carries the parsed-ready service account key.
type ServiceAccountCredentials struct {
	KeyJSON []byte
}

// Mode implements Credentials.
func (*ServiceAccountCredentials) Mode() Mode { return ModeServiceAccount }

// ResolveCredentials selects the credential mode from configuration.
// Service-account configuration takes precedence over the OAuth2 triple
// regardless of whether OAuth2 values are also present. All failures are
// authentication-kind errors.
func ResolveCredentials(cfg *config.Config, logger *slog.Logger) (Credentials, error) {
	if cfg.HasServiceAccount() {
		key, err := loadServiceAccountKey(cfg, logger)
		if err != nil {
			return nil, err
		}
		if !json.Valid(key) {
			return nil, calerr.Authentication("service account key is not valid JSON", nil)
		}
		return &ServiceAccountCredentials{KeyJSON: key}, nil
	}

	if cfg.HasOAuth2() {
		return &OAuth2Credentials{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RefreshToken: cfg.RefreshToken,
			RedirectURI:  cfg.RedirectURI,
		}, nil
	}

	return nil, calerr.Authentication(
		"no usable google credentials: set GOOGLE_SERVICE_ACCOUNT_KEY(_FILE) or the GOOGLE_CLIENT_ID/GOOGLE_CLIENT_SECRET/GOOGLE_REFRESH_TOKEN triple",
		nil,
	)
}

// loadServiceAccountKey returns the key bytes from the literal value or the
// configured file. The literal wins when both are set; that ambiguity is
// surfaced as a warning rather than an error.
func loadServiceAccountKey(cfg *config.Config, logger *slog.Logger) ([]byte, error) {
	if cfg.ServiceAccountKey != "" {
		if cfg.ServiceAccountKeyFile != "" {
			logger.Warn("both GOOGLE_SERVICE_ACCOUNT_KEY and GOOGLE_SERVICE_ACCOUNT_KEY_FILE are set; using the literal key",
				slog.String("ignored_file", cfg.ServiceAccountKeyFile))
		}
		return []byte(cfg.ServiceAccountKey), nil
	}

	data, err := os.ReadFile(cfg.ServiceAccountKeyFile)
	if err != nil {
		return nil, calerr.Authentication(
			fmt.Sprintf("failed to read service account key file: %v", err),
			map[string]any{"path": cfg.ServiceAccountKeyFile},
		)
	}
	return data, nil
}
