package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/loggr/internal/apperr"
	"github.com/jask/loggr/internal/timesheet"
)

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in      string
		want    Backend
		wantErr bool
	}{
		{"", BackendJSON, false},
		{"json", BackendJSON, false},
		{" SQLite ", BackendSQLite, false},
		{"sqlite3", BackendSQLite, false},
		{"mysql", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBackend(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Every backend must honor the same contract.
func TestBackendsShareContract(t *testing.T) {
	for _, b := range []Backend{BackendJSON, BackendSQLite} {
		t.Run(string(b), func(t *testing.T) {
			ctx := context.Background()
			s, err := Open(b, t.TempDir())
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })

			_, err = s.Load(ctx, "Alpha")
			require.ErrorIs(t, err, apperr.ErrNotFound)

			want := timesheet.Timesheet{Name: "Alpha", Entries: []timesheet.Entry{
				{Date: "2026-10-16", TimeIn: "09:00", TimeOut: "10:00"},
			}}
			require.NoError(t, s.Save(ctx, want))
			require.NoError(t, s.Save(ctx, timesheet.New("Beta")))

			got, err := s.Load(ctx, "Alpha")
			require.NoError(t, err)
			assert.True(t, want.Equal(got))

			names, err := s.ListNames(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"Alpha", "Beta"}, names)
		})
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open(Backend("nope"), t.TempDir())
	require.Error(t, err)
}
