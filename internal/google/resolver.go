package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/oauth2"
	oauthgoogle "golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/calgate/calgate/internal/calerr"
	"github.com/calgate/calgate/internal/config"
)

// handshakeFunc performs mode selection and authentication, returning the
// provider service handle. Replaceable for tests.
type handshakeFunc func(ctx context.Context) (*calendar.Service, error)

// Resolver produces and caches the authenticated calendar service handle
// and the resolved default calendar identifier.
//
// The first call to Service performs the authentication handshake under a
// mutex so concurrent callers trigger at most one handshake; afterwards the
// cached handle is returned without re-authenticating. Reset clears the
// cache, forcing the next call to repeat mode selection and authentication.
type Resolver struct {
	cfg    *config.Config
	logger *slog.Logger

	mu         sync.Mutex
	svc        *calendar.Service
	calendarID string

	handshake handshakeFunc
}

// NewResolver creates a Resolver over the given configuration. No I/O
// happens until the first Service call.
func NewResolver(cfg *config.Config, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Resolver{cfg: cfg, logger: logger}
	r.handshake = r.authenticate
	return r
}

// Service returns the cached authenticated calendar service, performing the
// authentication handshake on first use. All failures are
// authentication-kind normalized errors and are never retried here.
func (r *Resolver) Service(ctx context.Context) (*calendar.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.svc != nil {
		return r.svc, nil
	}

	svc, err := r.handshake(ctx)
	if err != nil {
		return nil, err
	}

	r.svc = svc
	r.calendarID = r.cfg.CalendarID
	return r.svc, nil
}

// Reset clears the cached handle and default calendar identifier. In-flight
// operations holding an already-obtained handle are unaffected.
func (r *Resolver) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.svc = nil
	r.calendarID = ""
}

// CalendarID resolves the effective calendar identifier: the requested
// value if non-empty, else the default cached at handshake time, else the
// primary-calendar sentinel. Pure resolution, no I/O.
func (r *Resolver) CalendarID(requested string) string {
	r.mu.Lock()
	cached := r.calendarID
	r.mu.Unlock()
	return ResolveCalendarID(requested, cached)
}

// ResolveCalendarID applies the calendar-identifier precedence rule.
func ResolveCalendarID(requested, fallback string) string {
	if requested != "" {
		return requested
	}
	if fallback != "" {
		return fallback
	}
	return config.PrimaryCalendar
}

// authenticate selects the credential mode and builds the service handle.
func (r *Resolver) authenticate(ctx context.Context) (*calendar.Service, error) {
	creds, err := ResolveCredentials(r.cfg, r.logger)
	if err != nil {
		return nil, err
	}

	r.logger.Info("authenticating to google calendar", slog.String("auth_mode", string(creds.Mode())))

	switch c := creds.(type) {
	case *ServiceAccountCredentials:
		return r.serviceAccountService(ctx, c)
	case *OAuth2Credentials:
		return r.oauth2Service(ctx, c)
	default:
		return nil, calerr.Authentication(fmt.Sprintf("unsupported credential mode %q", creds.Mode()), nil)
	}
}

// serviceAccountService builds a calendar service from a JWT config scoped
// to calendar read/write access.
func (r *Resolver) serviceAccountService(ctx context.Context, creds *ServiceAccountCredentials) (*calendar.Service, error) {
	jwtConfig, err := oauthgoogle.JWTConfigFromJSON(creds.KeyJSON, Scopes...)
	if err != nil {
		return nil, calerr.Authentication(fmt.Sprintf("failed to parse service account key: %v", err), nil)
	}

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, calerr.Authentication(fmt.Sprintf("failed to create calendar service: %v", err), nil)
	}
	return svc, nil
}

// oauth2Service builds a calendar service from the refresh-token triple and
// immediately fetches one access token as a liveness check, so an expired
// or revoked refresh token fails here rather than on the first operation.
func (r *Resolver) oauth2Service(ctx context.Context, creds *OAuth2Credentials) (*calendar.Service, error) {
	conf := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint:     oauthgoogle.Endpoint,
		RedirectURL:  creds.RedirectURI,
		Scopes:       Scopes,
	}

	source := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: creds.RefreshToken})

	token, err := source.Token()
	if err != nil {
		if isInvalidGrant(err) {
			return nil, calerr.Authentication(
				"google refresh token is invalid or expired; generate a new one",
				map[string]any{"cause": "invalid_grant"},
			)
		}
		return nil, calerr.Authentication(fmt.Sprintf("failed to obtain access token: %v", err), nil)
	}

	client := oauth2.NewClient(ctx, oauth2.ReuseTokenSource(token, source))
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, calerr.Authentication(fmt.Sprintf("failed to create calendar service: %v", err), nil)
	}
	return svc, nil
}

// isInvalidGrant reports whether a token fetch failed because the refresh
// token itself is no longer accepted.
func isInvalidGrant(err error) bool {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && retrieveErr.ErrorCode == "invalid_grant" {
		return true
	}
	return strings.Contains(err.Error(), "invalid_grant")
}
