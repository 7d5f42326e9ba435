// Package client contains the client-side building blocks for talking to
// the upstream auth/profile service.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface): Login,
//     GetUser, SetToken and Ping.
//  2. A concrete JSON-over-HTTP implementation (see HTTPClient) that stamps
//     each request with a request id and the current bearer token, and maps
//     response statuses to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite session store with embedded goose migrations.
//  4. ProfileSubject, which reads the user id out of a login token.
//
// # Error Handling
//
// Transport failures match ErrUnavailable, ErrUnauthorized or
// ErrUnexpectedStatus via errors.Is; non-2xx responses are *StatusError.
// Responses that are 2xx but unusable match ErrMissingToken or
// ErrMalformedResponse.
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context and honor cancellation.
package client
