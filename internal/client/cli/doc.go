// Package cli provides the interactive command-line client for the
// Доброделы portal.
//
// It wires configuration, the persistent cookie jar, the API client, and an
// interactive REPL that browses the catalog (NKOs, events, news, cities) and
// manages the account session. On startup the previous session is restored
// from cookies when possible; a background watcher tracks backend
// reachability.
//
// Key features:
//   - Register / Login / Logout / whoami
//   - Browse NKOs, events, news, and cities with filters
//   - Mark and unmark favorites
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
