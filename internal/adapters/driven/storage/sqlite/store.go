package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/jotter/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/jotter/internal/core/domain"
	"github.com/custodia-labs/jotter/internal/core/ports/driven"
	"github.com/custodia-labs/jotter/internal/logger"
)

// DatabaseFile is the name of the notes database within the data directory.
const DatabaseFile = "notes_database.db"

// Ensure Store implements the interface.
var _ driven.NoteStore = (*Store)(nil)

// Store is a SQLite-backed note store.
type Store struct {
	mu      sync.Mutex
	db      *sql.DB
	dataDir string
	path    string
}

// NewStore creates an uninitialised store for the specified data directory.
// If dataDir is empty, Initialise defaults to ~/.jotter/data.
// No I/O happens until Initialise is called.
func NewStore(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

// Open creates a store and initialises it.
func Open(ctx context.Context, dataDir string) (*Store, error) {
	s := NewStore(dataDir)
	if err := s.Initialise(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// DefaultDataDir returns ~/.jotter/data.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".jotter", "data"), nil
}

// Initialise opens (or creates) the database file and ensures the notes
// table exists. Calling it on an initialised store does nothing.
func (s *Store) Initialise(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return nil
	}

	dataDir := s.dataDir
	if dataDir == "" {
		var err error
		if dataDir, err = DefaultDataDir(); err != nil {
			return err
		}
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DatabaseFile)

	// Open database with WAL mode; busy_timeout makes concurrent writers queue
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return domain.NewStorageError("open", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return domain.NewStorageError("open", err)
	}

	if err := migrate(ctx, db, migrations.FS); err != nil {
		db.Close()
		return fmt.Errorf("running migrations: %w", err)
	}

	s.db = db
	s.path = dbPath
	logger.Debug("database initialised at %s", dbPath)
	return nil
}

// Close closes the database connection. The store reports
// domain.ErrNotInitialised afterwards until Initialise is called again.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Path returns the database file path, or "" before initialisation.
func (s *Store) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// conn returns the open handle or domain.ErrNotInitialised.
func (s *Store) conn() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, domain.ErrNotInitialised
	}
	return s.db, nil
}

// migrate runs all pending migrations, each in its own transaction.
func migrate(ctx context.Context, db *sql.DB, fsys fs.FS) error {
	// Ensure schema_migrations table exists
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return domain.NewStorageError("migrate", err)
	}

	var currentVersion int
	row := db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return domain.NewStorageError("migrate", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_notes.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if err := applyMigration(ctx, db, version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		logger.Debug("applied migration %s", name)
	}

	return nil
}

func applyMigration(ctx context.Context, db *sql.DB, version int, content string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return domain.NewStorageError("migrate", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, content); err != nil {
		return domain.NewStorageError("migrate", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		return domain.NewStorageError("migrate", err)
	}
	return domain.NewStorageError("migrate", tx.Commit())
}

// ==================== Note Store ====================

// Create stores a new note and returns its assigned ID.
func (s *Store) Create(ctx context.Context, title, description, colour string) (int64, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	result, err := db.ExecContext(ctx,
		"INSERT INTO notes (title, description, color) VALUES (?, ?, ?)",
		title, description, colour,
	)
	if err != nil {
		return 0, domain.NewStorageError("create", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, domain.NewStorageError("create", err)
	}

	logger.Debug("note added with id %d", id)
	return id, nil
}

// ReadAll returns every note in insertion order.
func (s *Store) ReadAll(ctx context.Context) ([]domain.Note, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, "SELECT id, title, description, color FROM notes ORDER BY id")
	if err != nil {
		return nil, domain.NewStorageError("read all", err)
	}
	defer rows.Close()

	return scanNotes("read all", rows)
}

// Search returns notes whose title starts with query. Matching follows
// SQLite's LIKE collation (case-insensitive for ASCII). Wildcard
// characters in query match literally.
func (s *Store) Search(ctx context.Context, query string) ([]domain.Note, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, title, description, color FROM notes WHERE title LIKE ? ESCAPE '\' ORDER BY id`,
		escapeLike(query)+"%",
	)
	if err != nil {
		return nil, domain.NewStorageError("search", err)
	}
	defer rows.Close()

	return scanNotes("search", rows)
}

// Get retrieves a note by ID.
func (s *Store) Get(ctx context.Context, id int64) (*domain.Note, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	var note domain.Note
	err = db.QueryRowContext(ctx,
		"SELECT id, title, description, color FROM notes WHERE id = ?", id,
	).Scan(&note.ID, &note.Title, &note.Description, &note.Colour)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, domain.NewStorageError("get", err)
	}

	return &note, nil
}

// Update replaces title, description and colour in one statement.
// A missing ID matches no rows and is not an error.
func (s *Store) Update(ctx context.Context, id int64, title, description, colour string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx,
		"UPDATE notes SET title = ?, description = ?, color = ? WHERE id = ?",
		title, description, colour, id,
	)
	if err != nil {
		return domain.NewStorageError("update", err)
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		logger.Debug("update matched no note with id %d", id)
		return nil
	}
	logger.Debug("note with id %d updated", id)
	return nil
}

// Delete removes a note. A missing ID is not an error.
func (s *Store) Delete(ctx context.Context, id int64) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id); err != nil {
		return domain.NewStorageError("delete", err)
	}

	logger.Debug("note with id %d deleted", id)
	return nil
}

func scanNotes(op string, rows *sql.Rows) ([]domain.Note, error) {
	notes := make([]domain.Note, 0)
	for rows.Next() {
		var note domain.Note
		if err := rows.Scan(&note.ID, &note.Title, &note.Description, &note.Colour); err != nil {
			return nil, domain.NewStorageError(op, err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError(op, err)
	}
	return notes, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE wildcards so query matches literally.
func escapeLike(query string) string {
	return likeEscaper.Replace(query)
}
