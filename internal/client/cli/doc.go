// Package cli provides the interactive idea-bank command-line client.
//
// It wires configuration, the local vote ledger, the remote API client and
// an interactive REPL built around four sections (home, submit, bank,
// contacts). The bank section lists ideas with search and pagination, and
// keeps itself fresh with a background polling ticker that runs only while
// the section is active.
//
// Key features:
//   - Browse, search and paginate the idea list
//   - Submit new ideas via an interactive form
//   - Vote once per idea, remembered across restarts
//   - Read and post comments on an idea
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
