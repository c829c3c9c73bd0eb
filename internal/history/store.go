package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kspace-org/kspace/internal/db"
)

// Store records and lists revisions.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Record inserts rev. If rev.ID is empty a UUID is generated; the stored ID
// is returned.
func (s *Store) Record(ctx context.Context, rev Revision) (string, error) {
	if rev.ID == "" {
		rev.ID = uuid.New().String()
	}

	var snapshot sql.NullString
	if rev.Snapshot != "" {
		snapshot = sql.NullString{String: rev.Snapshot, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO revisions (
			id, action, ok, data_file, sections, items, pending,
			summary, detail, snapshot
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rev.ID,
		string(rev.Action),
		rev.OK,
		rev.DataFile,
		rev.Sections,
		rev.Items,
		rev.Pending,
		rev.Summary,
		rev.Detail,
		snapshot,
	)
	if err != nil {
		return "", fmt.Errorf("inserting revision: %w", err)
	}
	return rev.ID, nil
}

// GetByID retrieves a single revision, including its snapshot.
func (s *Store) GetByID(ctx context.Context, id string) (*Revision, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, timestamp, action, ok, data_file, sections, items, pending,
			   summary, detail, snapshot
		FROM revisions WHERE id = ?`, id)
	return scanInto(row)
}

// QueryFilter controls which revisions are returned by Query.
type QueryFilter struct {
	Action Action
	Limit  int
}

// Query returns revisions newest first. Snapshots are left out.
func (s *Store) Query(ctx context.Context, filter QueryFilter) ([]Revision, error) {
	var (
		clauses []string
		args    []any
	)
	if filter.Action != "" {
		clauses = append(clauses, "action = ?")
		args = append(args, string(filter.Action))
	}

	query := "SELECT id, timestamp, action, ok, data_file, sections, items, pending, summary, detail, NULL FROM revisions"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY timestamp DESC, rowid DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying revisions: %w", err)
	}
	defer rows.Close()

	revs := []Revision{}
	for rows.Next() {
		rev, err := scanInto(rows)
		if err != nil {
			return nil, err
		}
		revs = append(revs, *rev)
	}
	return revs, rows.Err()
}

// scanner is implemented by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanInto(sc scanner) (*Revision, error) {
	var (
		rev      Revision
		action   string
		ts       string
		snapshot sql.NullString
	)
	err := sc.Scan(
		&rev.ID, &ts, &action, &rev.OK, &rev.DataFile,
		&rev.Sections, &rev.Items, &rev.Pending,
		&rev.Summary, &rev.Detail, &snapshot,
	)
	if err != nil {
		return nil, err
	}
	rev.Action = Action(action)
	if t, parseErr := time.Parse(time.DateTime, ts); parseErr == nil {
		rev.Timestamp = t
	} else if t, parseErr := time.Parse(time.RFC3339, ts); parseErr == nil {
		rev.Timestamp = t
	}
	if snapshot.Valid {
		rev.Snapshot = snapshot.String
	}
	return &rev, nil
}
