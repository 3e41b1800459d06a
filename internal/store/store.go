// Package store selects the persistence backend for timesheets.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jask/loggr/internal/store/jsonfile"
	"github.com/jask/loggr/internal/store/sqlite"
	"github.com/jask/loggr/internal/timesheet"
)

// Store is the durable home of every project's timesheet.
//
// Load fails with apperr.ErrNotFound when no record exists and apperr.ErrParse
// when the record is malformed. Save overwrites and fails with apperr.ErrIO.
// ListNames returns names in creation order.
type Store interface {
	Load(ctx context.Context, name string) (timesheet.Timesheet, error)
	Save(ctx context.Context, ts timesheet.Timesheet) error
	ListNames(ctx context.Context) ([]string, error)
	Close() error
}

// Backend names a storage implementation.
type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
)

// ParseBackend accepts the config spelling of a backend.
func ParseBackend(s string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(s))) {
	case "", BackendJSON:
		return BackendJSON, nil
	case BackendSQLite, "sqlite3":
		return BackendSQLite, nil
	default:
		return "", fmt.Errorf("unknown storage backend %q (want json or sqlite)", s)
	}
}

// Open creates dir if needed and opens the backend rooted there.
func Open(backend Backend, dir string) (Store, error) {
	switch backend {
	case BackendJSON:
		s, err := jsonfile.Open(dir)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendSQLite:
		s, err := sqlite.Open(dir)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
