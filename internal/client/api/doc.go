// Package api contains the HTTP building blocks for talking to the portal
// backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     authentication (Login/Register/Logout/CurrentUser), the catalog
//     (NKOs, events, news, cities), favorites, and a liveness probe.
//  2. A concrete net/http implementation (see HTTPClient) that attaches the
//     stored bearer token to every request, transparently refreshes the
//     session once on a 401, coalesces concurrent refreshes, and converts
//     backend failures into structured *APIError values.
//
// # Error Handling
//
// Every non-2xx response becomes an *APIError carrying a translated message,
// the HTTP status, and the raw backend detail string. Two conditions are
// additionally matchable with errors.Is: common.ErrUnavailable (transport
// failure) and common.ErrSessionExpired (a 401 that survived the one refresh
// attempt).
//
// The refresh is deliberately one-shot. An endpoint that still returns 401
// after a successful refresh surfaces the session-expired error to the
// caller; repeated retries on a still-invalid credential would only mask a
// real authentication failure as latency.
package api
