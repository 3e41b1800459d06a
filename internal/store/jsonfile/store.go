// Package jsonfile persists one JSON document per project in a directory.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jask/loggr/internal/apperr"
	"github.com/jask/loggr/internal/timesheet"
)

const (
	ext       = ".json"
	indexFile = "projects.index"
)

// Store reads and writes timesheets under Dir.
type Store struct {
	dir string
}

// Open ensures dir exists and returns a Store rooted there.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperr.IO("create storage dir", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir is the storage root.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, url.PathEscape(name)+ext)
}

type record struct {
	Name    *string           `json:"name"`
	Entries []timesheet.Entry `json:"entries"`
}

func (s *Store) Load(_ context.Context, name string) (timesheet.Timesheet, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return timesheet.Timesheet{}, apperr.NotFound("load", name, err)
		}
		return timesheet.Timesheet{}, apperr.IO("load", name, err)
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return timesheet.Timesheet{}, apperr.Parse("load", name, err)
	}
	if rec.Name == nil {
		return timesheet.Timesheet{}, apperr.Parse("load", name, errors.New("missing name"))
	}
	if *rec.Name != name {
		return timesheet.Timesheet{}, apperr.Parse("load", name, fmt.Errorf("record is named %q", *rec.Name))
	}
	ts := timesheet.Timesheet{Name: *rec.Name, Entries: rec.Entries}
	if ts.Entries == nil {
		ts.Entries = []timesheet.Entry{}
	}
	return ts, nil
}

func (s *Store) Save(_ context.Context, ts timesheet.Timesheet) error {
	if ts.Name == "" {
		return apperr.IO("save", ts.Name, errors.New("empty project name"))
	}
	data, err := encode(ts)
	if err != nil {
		return apperr.IO("save", ts.Name, err)
	}
	if err := writeAtomic(s.path(ts.Name), data); err != nil {
		return apperr.IO("save", ts.Name, err)
	}
	if err := s.remember(ts.Name); err != nil {
		return apperr.IO("save", ts.Name, err)
	}
	return nil
}

// ListNames returns project names in creation order. Files missing from the
// index are appended in lexical order; index names without a file are dropped.
func (s *Store) ListNames(_ context.Context) ([]string, error) {
	onDisk, err := s.scan()
	if err != nil {
		return nil, apperr.IO("list", "", err)
	}
	index, err := s.readIndex()
	if err != nil {
		return nil, apperr.IO("list", "", err)
	}
	present := make(map[string]bool, len(onDisk))
	for _, n := range onDisk {
		present[n] = true
	}
	names := make([]string, 0, len(onDisk))
	seen := make(map[string]bool, len(onDisk))
	for _, n := range index {
		if present[n] && !seen[n] {
			names = append(names, n)
			seen[n] = true
		}
	}
	for _, n := range onDisk {
		if !seen[n] {
			names = append(names, n)
		}
	}
	return names, nil
}

func (s *Store) Close() error { return nil }

func encode(ts timesheet.Timesheet) ([]byte, error) {
	name := ts.Name
	rec := record{Name: &name, Entries: ts.Entries}
	if rec.Entries == nil {
		rec.Entries = []timesheet.Entry{}
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// scan lists project names from file names, sorted.
func (s *Store) scan() ([]string, error) {
	ents, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		name, err := url.PathUnescape(strings.TrimSuffix(e.Name(), ext))
		if err != nil || name == "" {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

func (s *Store) readIndex() ([]string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, indexFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		// A damaged index only loses ordering; files are still listed.
		return nil, nil
	}
	return names, nil
}

func (s *Store) remember(name string) error {
	index, err := s.readIndex()
	if err != nil {
		return err
	}
	if slices.Contains(index, name) {
		return nil
	}
	index = append(index, name)
	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}
	return writeAtomic(filepath.Join(s.dir, indexFile), append(data, '\n'))
}
