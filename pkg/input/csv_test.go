package input

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/Gthulhu/schedsim/pkg/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProcesses(t *testing.T) {
	data := `pid,burst,arrival,priority
# comment line
P1, 5, 0, 2
P2,3,1
P3,8,2,1
`
	processes, err := LoadProcesses(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []scheduler.Process{
		{ID: "P1", Burst: 5, Arrival: 0, Priority: 2},
		{ID: "P2", Burst: 3, Arrival: 1},
		{ID: "P3", Burst: 8, Arrival: 2, Priority: 1},
	}, processes)
}

func TestLoadProcessesWithoutHeader(t *testing.T) {
	processes, err := LoadProcesses(strings.NewReader("1,5,0\n2,9,3\n"))
	require.NoError(t, err)
	require.Len(t, processes, 2)
	assert.Equal(t, "2", processes[1].ID)
	assert.Equal(t, 9, processes[1].Burst)
	assert.Equal(t, 3, processes[1].Arrival)
}

func TestLoadProcessesFormatErrors(t *testing.T) {
	cases := []struct {
		name   string
		data   string
		row    int
		column string
		target error
	}{
		{name: "non numeric burst", data: "P1,five,0\n", row: 1, column: "burst", target: strconv.ErrSyntax},
		{name: "non numeric priority", data: "P1,5,0,x\n", row: 1, column: "priority", target: strconv.ErrSyntax},
		{name: "zero burst", data: "P1,5,0\nP2,0,1\n", row: 2, column: "burst", target: ErrNonPositive},
		{name: "negative arrival", data: "P1,5,-1\n", row: 1, column: "arrival", target: ErrNegativeValue},
		{name: "empty pid", data: " ,5,0\n", row: 1, column: "pid", target: ErrEmptyPID},
		{name: "too few fields", data: "P1,5\n", row: 1, target: ErrFieldCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadProcesses(strings.NewReader(tc.data))
			require.Error(t, err)

			var formatErr *InputFormatError
			require.True(t, errors.As(err, &formatErr))
			assert.Equal(t, tc.row, formatErr.Row)
			assert.Equal(t, tc.column, formatErr.Column)
			assert.ErrorIs(t, err, tc.target)
			assert.NotErrorIs(t, err, scheduler.ErrConfiguration)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processes.csv")
	require.NoError(t, os.WriteFile(path, []byte("P1,2,0\n"), 0o600))

	processes, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, processes, 1)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
