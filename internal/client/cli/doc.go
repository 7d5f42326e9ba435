// Package cli provides the interactive storefront command-line client.
//
// It wires configuration, the session store, the upstream client and the
// session manager, then runs a REPL. The screen shown (login, loading or
// profile) is chosen by the router after every session change.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, OpenStore and runREPL for details.
package cli
