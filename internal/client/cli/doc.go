// Package cli provides the interactive techfolio command-line client.
//
// It wires configuration, the durable local store, the REST API client and
// an interactive REPL over the directory's catalogs. Typical flow: browse
// events or opportunities with local filtering, log in to save items, and
// manage both catalogs from the admin console when the session carries the
// admin role.
//
// Key features:
//   - Browse + filter events and opportunities (free text, type, tags, format)
//   - Login / Register / Logout with a persisted session
//   - Profile display and draft-based editing
//   - Save, like and apply actions on catalog items
//   - Admin console: create / edit / delete for both catalogs
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
