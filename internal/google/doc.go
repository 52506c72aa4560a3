// Package google resolves Google Calendar credentials and owns the
// process-wide authenticated client handle.
//
// Two credential modes are supported: a service account key (literal JSON
// or file path) and an OAuth2 refresh-token triple. Service-account
// configuration always wins when both are present. The authenticated
// calendar service is created lazily on first use, guarded so concurrent
// callers trigger at most one authentication handshake, cached for the
// process lifetime, and replaceable only through an explicit Reset.
package google
