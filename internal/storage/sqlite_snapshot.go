package storage

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SnapshotStore persists a structural summary of concepts (name, budget
// and snapshot id per concept) to a SQLite file. Tasks, beliefs, truth
// values and term structure are not stored, and loading returns the
// records only; it does not rebuild a reasoner's memory.
type SnapshotStore struct {
	db *sql.DB
}

// ConceptRecord is one row of a persisted concept snapshot. SnapshotID tags
// every row written by the same SaveConcepts call with one opaque id, so a
// reader can tell which generation a row belongs to; it carries no
// evidential meaning and is unrelated to a stamp's serial numbers.
type ConceptRecord struct {
	Name       string
	Priority   float64
	Durability float64
	Quality    float64
	SnapshotID string
}

// OpenSnapshotStore opens (creating if necessary) the sqlite file at path
// and ensures the schema exists.
func OpenSnapshotStore(path string) (*SnapshotStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open snapshot store: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: create schema: %w", err)
	}
	return &SnapshotStore{db: db}, nil
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS concepts (
	name TEXT PRIMARY KEY,
	priority REAL NOT NULL,
	durability REAL NOT NULL,
	quality REAL NOT NULL,
	snapshot_id TEXT NOT NULL
);
`

// Close releases the underlying database handle.
func (s *SnapshotStore) Close() error { return s.db.Close() }

// SaveConcepts replaces the persisted concept table with records, inside a
// single transaction so a crash mid-save never leaves a half-written
// snapshot.
func (s *SnapshotStore) SaveConcepts(records []ConceptRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM concepts"); err != nil {
		return fmt.Errorf("storage: clear concepts: %w", err)
	}
	stmt, err := tx.Prepare("INSERT INTO concepts(name, priority, durability, quality, snapshot_id) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("storage: prepare insert: %w", err)
	}
	defer stmt.Close()

	generation := uuid.New().String()
	for _, r := range records {
		if _, err := stmt.Exec(r.Name, r.Priority, r.Durability, r.Quality, generation); err != nil {
			return fmt.Errorf("storage: insert concept %s: %w", r.Name, err)
		}
	}
	return tx.Commit()
}

// LoadConcepts returns every persisted concept record.
func (s *SnapshotStore) LoadConcepts() ([]ConceptRecord, error) {
	rows, err := s.db.Query("SELECT name, priority, durability, quality, snapshot_id FROM concepts")
	if err != nil {
		return nil, fmt.Errorf("storage: query concepts: %w", err)
	}
	defer rows.Close()

	var out []ConceptRecord
	for rows.Next() {
		var r ConceptRecord
		if err := rows.Scan(&r.Name, &r.Priority, &r.Durability, &r.Quality, &r.SnapshotID); err != nil {
			return nil, fmt.Errorf("storage: scan concept row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
