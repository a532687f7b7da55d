package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/scout/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/ports/driven"
)

// Ensure Store implements the interfaces.
var (
	_ driven.CatalogSource = (*Store)(nil)
	_ driven.CatalogSink   = (*Store)(nil)
)

// DatabaseFile is the file name inside the data directory.
const DatabaseFile = "catalog.db"

// Store is a SQLite-backed catalog source and sink.
type Store struct {
	db   *sql.DB
	path string
}

// Import records one Replace call.
type Import struct {
	ID         string
	Rows       int
	ImportedAt time.Time
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.scout/data/catalog.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".scout", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DatabaseFile)

	// WAL lets readers proceed while an import is written.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate applies pending NNN_name.up.sql files in version order.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// SchemaVersion returns the highest applied migration.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	var v int
	err := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&v)
	return v, err
}

// ==================== Catalog ====================

// Load returns every catalog row in row order.
func (s *Store) Load(ctx context.Context) ([]domain.CatalogEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, title_url, release_year, runtime_minutes, rating,
		       genres, persona, content_type, combined_text
		FROM catalog
		ORDER BY row_index
	`)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var entries []domain.CatalogEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating catalog: %w", err)
	}
	return entries, nil
}

// Replace swaps the catalog for entries in a single transaction and
// records the import.
func (s *Store) Replace(ctx context.Context, entries []domain.CatalogEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM catalog"); err != nil {
		return fmt.Errorf("clearing catalog: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO catalog (
			row_index, title, title_url, release_year, runtime_minutes,
			rating, genres, persona, content_type, combined_text
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		genres := e.Genres
		if genres == nil {
			genres = []string{}
		}
		genresJSON, err := json.Marshal(genres)
		if err != nil {
			return fmt.Errorf("marshalling genres: %w", err)
		}
		_, err = stmt.ExecContext(ctx,
			i, e.Title, nullString(e.TitleURL), nullInt(e.ReleaseYear), nullInt(e.RuntimeMinutes),
			nullString(e.Rating), string(genresJSON), nullString(e.Persona),
			e.ContentType.OrUnknown().String(), e.CombinedText,
		)
		if err != nil {
			return fmt.Errorf("inserting row %d: %w", i, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO catalog_imports (id, rows, imported_at) VALUES (?, ?, ?)",
		uuid.NewString(), len(entries), time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("recording import: %w", err)
	}

	return tx.Commit()
}

// LastImport returns the most recent import, or domain.ErrNotFound.
func (s *Store) LastImport(ctx context.Context) (*Import, error) {
	var (
		imp Import
		ms  int64
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, rows, imported_at FROM catalog_imports ORDER BY imported_at DESC, rowid DESC LIMIT 1",
	).Scan(&imp.ID, &imp.Rows, &ms)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying imports: %w", err)
	}
	imp.ImportedAt = time.UnixMilli(ms)
	return &imp, nil
}

// ==================== Helper Functions ====================

func scanEntry(rows *sql.Rows) (*domain.CatalogEntry, error) {
	var (
		e                         domain.CatalogEntry
		titleURL, rating, persona sql.NullString
		releaseYear, runtime      sql.NullInt64
		genresJSON, contentType   string
	)
	if err := rows.Scan(
		&e.Title, &titleURL, &releaseYear, &runtime, &rating,
		&genresJSON, &persona, &contentType, &e.CombinedText,
	); err != nil {
		return nil, fmt.Errorf("scanning catalog row: %w", err)
	}
	if err := json.Unmarshal([]byte(genresJSON), &e.Genres); err != nil {
		return nil, fmt.Errorf("unmarshalling genres: %w", err)
	}

	e.TitleURL = stringPtr(titleURL)
	e.Rating = stringPtr(rating)
	e.Persona = stringPtr(persona)
	e.ReleaseYear = intPtr(releaseYear)
	e.RuntimeMinutes = intPtr(runtime)
	e.ContentType = domain.ContentType(contentType)
	return &e, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func intPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	n := int(ni.Int64)
	return &n
}
