package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/loggr/internal/apperr"
	"github.com/jask/loggr/internal/timesheet"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "loggr"))
	require.NoError(t, err)
	return s
}

func sample() timesheet.Timesheet {
	return timesheet.Timesheet{Name: "Alpha", Entries: []timesheet.Entry{
		{Date: "2026-10-15", TimeIn: "09:00", TimeOut: "12:00"},
		{Date: "2026-10-16", TimeIn: "13:00"},
	}}
}

func TestOpenCreatesDirOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "loggr")
	_, err := Open(dir)
	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = Open(dir)
	require.NoError(t, err, "existing dir is not an error")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	want := sample()

	require.NoError(t, s.Save(ctx, want))
	got, err := s.Load(ctx, "Alpha")
	require.NoError(t, err)
	assert.True(t, want.Equal(got), "got %+v", got)
}

func TestSaveEmptyTimesheetWritesEmptyArray(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	require.NoError(t, s.Save(ctx, timesheet.Timesheet{Name: "Alpha"}))

	data, err := os.ReadFile(filepath.Join(s.Dir(), "Alpha.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"Alpha\",\n  \"entries\": []\n}\n", string(data))

	got, err := s.Load(ctx, "Alpha")
	require.NoError(t, err)
	assert.NotNil(t, got.Entries)
	assert.Empty(t, got.Entries)
}

func TestResaveIsByteIdentical(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	path := filepath.Join(s.Dir(), "Alpha.json")

	require.NoError(t, s.Save(ctx, sample()))
	first, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, sample()))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadMissingIsNotFound(t *testing.T) {
	_, err := newStore(t).Load(context.Background(), "Nope")
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestLoadMalformedIsParseError(t *testing.T) {
	s := newStore(t)
	tests := map[string]string{
		"Broken":   "{not json",
		"Nameless": `{"entries": []}`,
		"BadEntry": `{"name": "BadEntry", "entries": [{"date": 5}]}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), name+".json"), []byte(body), 0o600))
			_, err := s.Load(context.Background(), name)
			require.ErrorIs(t, err, apperr.ErrParse)
		})
	}
}

func TestLoadRejectsRecordForAnotherProject(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "Alpha.json"), []byte(`{"name": "Beta", "entries": []}`), 0o600))

	_, err := s.Load(ctx, "Alpha")
	require.ErrorIs(t, err, apperr.ErrParse)
	assert.Contains(t, err.Error(), `record is named "Beta"`)

	names, err := s.ListNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha"}, names)
}

func TestSaveFailureIsIOError(t *testing.T) {
	s := newStore(t)
	// a directory where the record should go makes the rename fail
	require.NoError(t, os.Mkdir(filepath.Join(s.Dir(), "Alpha.json"), 0o755))
	err := s.Save(context.Background(), sample())
	require.ErrorIs(t, err, apperr.ErrIO)
}

func TestNamesAreEscapedOnDisk(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	ts := timesheet.New("client/acme ✓")
	require.NoError(t, s.Save(ctx, ts))

	_, err := os.Stat(filepath.Join(s.Dir(), "client%2Facme%20%E2%9C%93.json"))
	require.NoError(t, err)

	got, err := s.Load(ctx, "client/acme ✓")
	require.NoError(t, err)
	assert.Equal(t, "client/acme ✓", got.Name)

	names, err := s.ListNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"client/acme ✓"}, names)
}

func TestListNamesKeepsCreationOrder(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	for _, n := range []string{"Zulu", "Alpha", "Mike"} {
		require.NoError(t, s.Save(ctx, timesheet.New(n)))
	}
	// re-saving does not move a project
	require.NoError(t, s.Save(ctx, timesheet.New("Zulu")))

	names, err := s.ListNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Zulu", "Alpha", "Mike"}, names)
}

func TestListNamesReconcilesIndexWithFiles(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	require.NoError(t, s.Save(ctx, timesheet.New("Beta")))
	require.NoError(t, s.Save(ctx, timesheet.New("Alpha")))

	// dropped in by hand, unknown to the index
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "Charlie.json"), []byte(`{"name":"Charlie","entries":[]}`), 0o600))
	// removed by hand, still in the index
	require.NoError(t, os.Remove(filepath.Join(s.Dir(), "Beta.json")))

	names, err := s.ListNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Charlie"}, names)
}

func TestListNamesEmptyDir(t *testing.T) {
	names, err := newStore(t).ListNames(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}
