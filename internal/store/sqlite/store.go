package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jask/loggr/internal/apperr"
	"github.com/jask/loggr/internal/timesheet"
)

// FileName is the database file created inside the storage dir.
const FileName = "loggr.db"

// Store implements the timesheet store on SQLite.
type Store struct {
	db *sql.DB
}

// Open creates dir if needed, migrates dir/loggr.db and opens it.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperr.IO("create storage dir", dir, err)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, apperr.IO("resolve storage dir", dir, err)
	}
	path := filepath.Join(abs, FileName)
	db, err := openDB(path)
	if err != nil {
		return nil, apperr.IO("open", path, err)
	}
	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, apperr.IO("migrate", path, err)
	}
	return &Store{db: db}, nil
}

// projectID is stable for a name, so re-saving never changes a row's key.
func projectID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("project:"+name)).String()
}

func (s *Store) Load(ctx context.Context, name string) (timesheet.Timesheet, error) {
	var id string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM projects WHERE name = ?`, name).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return timesheet.Timesheet{}, apperr.NotFound("load", name, err)
		}
		return timesheet.Timesheet{}, apperr.IO("load", name, err)
	}

	rows, err := s.db.QueryContext(ctx, `
	SELECT date, time_in, time_out FROM entries
	WHERE project_id = ?
	ORDER BY seq`, id)
	if err != nil {
		return timesheet.Timesheet{}, apperr.IO("load", name, err)
	}
	defer rows.Close()

	ts := timesheet.New(name)
	for rows.Next() {
		var e timesheet.Entry
		if err := rows.Scan(&e.Date, &e.TimeIn, &e.TimeOut); err != nil {
			return timesheet.Timesheet{}, apperr.Parse("load", name, err)
		}
		ts.Entries = append(ts.Entries, e)
	}
	if err := rows.Err(); err != nil {
		return timesheet.Timesheet{}, apperr.IO("load", name, err)
	}
	return ts, nil
}

// Save replaces the project's entries in one transaction.
func (s *Store) Save(ctx context.Context, ts timesheet.Timesheet) error {
	if ts.Name == "" {
		return apperr.IO("save", ts.Name, errors.New("empty project name"))
	}
	id := projectID(ts.Name)
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO projects(id, name) VALUES (?, ?)
		ON CONFLICT(id) DO NOTHING;
		`, id, ts.Name); err != nil {
			return fmt.Errorf("upsert project: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE project_id = ?`, id); err != nil {
			return fmt.Errorf("clear entries: %w", err)
		}
		for i, e := range ts.Entries {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO entries(project_id, seq, date, time_in, time_out)
			VALUES (?, ?, ?, ?, ?)`, id, i, e.Date, e.TimeIn, e.TimeOut); err != nil {
				return fmt.Errorf("insert entry %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return apperr.IO("save", ts.Name, err)
	}
	return nil
}

func (s *Store) ListNames(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM projects ORDER BY created_at, rowid`)
	if err != nil {
		return nil, apperr.IO("list", "", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, apperr.IO("list", "", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.IO("list", "", err)
	}
	return out, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
