// Package cli provides the interactive SkillExchange command-line client.
//
// It wires configuration, local storage, the API client, and an interactive
// REPL. Typical flow: restore the persisted session on startup, then execute
// user commands until exit.
//
// Key features:
//   - Signup / Login / Logout with a locally persisted session
//   - Profile: view, edit, photo upload, view other users by id
//   - Skills: browse the catalog, attach/detach, create new entries
//   - Search users by skill and/or name with paging
//   - Theme preference stored locally
//   - Admin: role updates and skill assignment
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
