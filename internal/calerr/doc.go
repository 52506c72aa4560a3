// Package calerr defines the closed error taxonomy used at every operation
// boundary of the gateway.
//
// Every failure that leaves an operation handler is a *calerr.Error with one
// of five kinds: authentication, validation, provider, not-found or unknown.
// Opaque Google API failures are collapsed into that set by Normalize, which
// inspects the structured googleapi.Error response when one is present and
// falls back to the plain error message otherwise.
package calerr
