package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Gthulhu/schedsim/pkg/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWorkload(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "processes.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunCommand(t *testing.T) {
	path := writeWorkload(t, "pid,burst,arrival\nP1,5,0\nP2,3,1\nP3,8,2\n")
	cmd := newRunCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-f", path, "-a", "fcfs"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "FCFS")
	assert.Contains(t, out.String(), "Average turnaround time: 8.67")
	assert.Contains(t, out.String(), "Average waiting time: 3.33")
}

func TestRunCommandCompareAll(t *testing.T) {
	path := writeWorkload(t, "P1,7,0,2\nP2,4,2,1\n")
	cmd := newRunCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-f", path, "--all", "-q", "3"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Algorithm comparison")
	assert.Contains(t, out.String(), "Round Robin (q=3)")
	assert.Contains(t, out.String(), "SRTF (Preemptive)")
}

func TestRunCommandConfigurationError(t *testing.T) {
	path := writeWorkload(t, "P1,5,0\n")
	cmd := newRunCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-f", path, "-a", "rr", "-q", "0"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, scheduler.ErrInvalidQuantum)
}

func TestRunCommandUnknownAlgorithm(t *testing.T) {
	path := writeWorkload(t, "P1,5,0\n")
	cmd := newRunCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-f", path, "-a", "lottery"})

	assert.ErrorIs(t, cmd.Execute(), scheduler.ErrUnknownAlgorithm)
}

func TestRunCommandCompareAllRejectsBeforeOutput(t *testing.T) {
	path := writeWorkload(t, "P1,5,0\nP2,3,1\n")
	cmd := newRunCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-f", path, "--all", "-q", "0"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, scheduler.ErrInvalidQuantum)
	assert.Contains(t, err.Error(), "Round Robin")
	assert.Empty(t, out.String())
}
