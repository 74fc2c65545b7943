// Package cli provides the moneyboy command-line client.
//
// It wires configuration, the encrypted local session store, the Pesca API
// services and a cobra command tree. Without a subcommand it starts an
// interactive shell that resumes the stored session (falling back to the
// cached profile when the server is unreachable) and then executes user
// commands.
//
// Key features:
//   - Register / Login / Logout
//   - Who am I, with offline fallback
//   - List users
//   - List and create payments
//   - Inspect the stored session without network access
//
// See NewRootCommand, App and runREPL for details.
package cli
