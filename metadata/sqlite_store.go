package metadata

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteStore is a Store backed by an embedded, read-only SQLite
// database with the schema:
//
//	CREATE TABLE page (id INTEGER PRIMARY KEY, title TEXT NOT NULL UNIQUE);
//	CREATE TABLE link (from_id INTEGER NOT NULL, to_id INTEGER NOT NULL,
//	                    title TEXT, PRIMARY KEY (from_id, to_id));
//
// The companion file is resolved by the caller (see wikisearch.Open),
// which strips the graph file's extension and appends ".metadata".
//
// SQLiteStore serializes access to its prepared statements behind a
// mutex; database/sql's own connection pool would otherwise let two
// goroutines race on the same *sql.Stmt.
type SQLiteStore struct {
	db *sql.DB

	mu            sync.Mutex
	pageByIDStmt  *sql.Stmt
	pageByTtlStmt *sql.Stmt
	linkStmt      *sql.Stmt
}

// OpenSQLiteStore opens filename read-only and prepares the three
// queries the core depends on.
func OpenSQLiteStore(filename string) (*SQLiteStore, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro&immutable=1", filename)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("metadata: open %s: %w", filename, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("metadata: open %s: %w", filename, err)
	}

	s := &SQLiteStore{db: db}
	stmts := []struct {
		dst  **sql.Stmt
		text string
	}{
		{&s.pageByIDStmt, "SELECT id, title FROM page WHERE id = ?"},
		{&s.pageByTtlStmt, "SELECT id, title FROM page WHERE title = ?"},
		{&s.linkStmt, "SELECT from_id, to_id, title FROM link WHERE from_id = ? AND to_id = ?"},
	}
	for _, st := range stmts {
		prepared, err := db.Prepare(st.text)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("metadata: prepare: %w", err)
		}
		*st.dst = prepared
	}
	return s, nil
}

// Close releases the underlying database connection and statements.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// GetPageByID implements Store.
func (s *SQLiteStore) GetPageByID(id uint32) (Page, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var p Page
	err := s.pageByIDStmt.QueryRow(id).Scan(&p.ID, &p.Title)
	return scanPageResult(p, err)
}

// GetPageByTitle implements Store.
func (s *SQLiteStore) GetPageByTitle(title string) (Page, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var p Page
	err := s.pageByTtlStmt.QueryRow(title).Scan(&p.ID, &p.Title)
	return scanPageResult(p, err)
}

// GetLink implements Store.
func (s *SQLiteStore) GetLink(fromID, toID uint32) (Link, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var l Link
	var title sql.NullString
	err := s.linkStmt.QueryRow(fromID, toID).Scan(&l.FromID, &l.ToID, &title)
	if errors.Is(err, sql.ErrNoRows) {
		return Link{}, false, nil
	}
	if err != nil {
		return Link{}, false, fmt.Errorf("metadata: GetLink: %w", err)
	}
	l.HasTitle = title.Valid
	l.Title = title.String
	return l, true, nil
}

func scanPageResult(p Page, err error) (Page, bool, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return Page{}, false, nil
	}
	if err != nil {
		return Page{}, false, fmt.Errorf("metadata: GetPage: %w", err)
	}
	return p, true, nil
}
