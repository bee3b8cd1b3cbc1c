// Package sqlite provides the SQLite-based implementation of driven.NoteStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. A Store owns a single database handle
// limited to one connection; SQLite serialises writes and concurrent callers queue.
//
// # Lifecycle
//
// NewStore builds an uninitialised store. Initialise opens (or creates) the
// database file and applies migrations; it is idempotent. Every other operation
// fails with domain.ErrNotInitialised until Initialise has completed.
// Open combines both steps.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.jotter/data/notes_database.db
package sqlite
