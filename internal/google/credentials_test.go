package google

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calgate/calgate/internal/calerr"
	"github.com/calgate/calgate/internal/config"
)

const fakeServiceAccountKey = `{"type":"service_account","project_id":"test","client_email":"svc@test.iam.gserviceaccount.com"}`

func TestResolveCredentialsServiceAccountWinsOverOAuth2(t *testing.T) {
	cfg := &config.Config{
		ClientID:          "id",
		ClientSecret:      "secret",
		RefreshToken:      "token",
		ServiceAccountKey: fakeServiceAccountKey,
	}

	creds, err := ResolveCredentials(cfg, slog.Default())
	require.NoError(t, err)
	assert.Equal(t, ModeServiceAccount, creds.Mode())
}

func TestResolveCredentialsOAuth2(t *testing.T) {
	cfg := &config.Config{
		ClientID:     "id",
		ClientSecret: "secret",
		RefreshToken: "token",
		RedirectURI:  config.DefaultRedirectURI,
	}

	creds, err := ResolveCredentials(cfg, slog.Default())
	require.NoError(t, err)
	require.Equal(t, ModeOAuth2, creds.Mode())

	oauth := creds.(*OAuth2Credentials)
	assert.Equal(t, "id", oauth.ClientID)
	assert.Equal(t, "token", oauth.RefreshToken)
}

func TestResolveCredentialsNeitherModeConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{name: "empty config", cfg: config.Config{}},
		{name: "incomplete oauth2 triple", cfg: config.Config{ClientID: "id", ClientSecret: "secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveCredentials(&tt.cfg, slog.Default())
			require.Error(t, err)
			assert.Equal(t, calerr.KindAuthentication, calerr.Normalize(err).Kind)
		})
	}
}

func TestResolveCredentialsServiceAccountKeyFromFile(t *testing.T) {
	keyFile := filepath.Join(t.TempDir(), "key.json")
	require.NoError(t, os.WriteFile(keyFile, []byte(fakeServiceAccountKey), 0o600))

	creds, err := ResolveCredentials(&config.Config{ServiceAccountKeyFile: keyFile}, slog.Default())
	require.NoError(t, err)
	require.Equal(t, ModeServiceAccount, creds.Mode())
	assert.JSONEq(t, fakeServiceAccountKey, string(creds.(*ServiceAccountCredentials).KeyJSON))
}

func TestResolveCredentialsMissingKeyFile(t *testing.T) {
	_, err := ResolveCredentials(&config.Config{ServiceAccountKeyFile: "/nonexistent/key.json"}, slog.Default())
	require.Error(t, err)

	normalized := calerr.Normalize(err)
	assert.Equal(t, calerr.KindAuthentication, normalized.Kind)
	assert.Equal(t, "/nonexistent/key.json", normalized.Details["path"])
}

func TestResolveCredentialsMalformedKeyJSON(t *testing.T) {
	_, err := ResolveCredentials(&config.Config{ServiceAccountKey: "not json"}, slog.Default())
	require.Error(t, err)
	assert.Equal(t, calerr.KindAuthentication, calerr.Normalize(err).Kind)
}

func TestResolveCredentialsLiteralKeyWinsOverFile(t *testing.T) {
	cfg := &config.Config{
		ServiceAccountKey:     fakeServiceAccountKey,
		ServiceAccountKeyFile: "/nonexistent/key.json",
	}

	creds, err := ResolveCredentials(cfg, slog.Default())
	require.NoError(t, err)
	assert.JSONEq(t, fakeServiceAccountKey, string(creds.(*ServiceAccountCredentials).KeyJSON))
}
