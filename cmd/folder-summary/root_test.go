package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stackvity/folder-summary/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand is a helper function to execute cobra command and capture output
func executeCommand(root *cobra.Command, args ...string) (stdout string, stderr string, err error) {
	stdoutBuf := new(bytes.Buffer)
	stderrBuf := new(bytes.Buffer)
	root.SetOut(stdoutBuf)
	root.SetErr(stderrBuf)
	root.SetArgs(args)

	err = root.Execute()

	return stdoutBuf.String(), stderrBuf.String(), err
}

// TestRootCmdHelp tests the basic --help flag output structure
func TestRootCmdHelp(t *testing.T) {
	stdout, stderr, err := executeCommand(newRootCmd(), "--help")

	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "folder-summary [folder] [output]")
	assert.Contains(t, stdout, "--version")
}

// TestRootCmdHelp_AllFlagsPresent verifies all defined flags appear in help output
func TestRootCmdHelp_AllFlagsPresent(t *testing.T) {
	cmd := newRootCmd()
	stdout, _, err := executeCommand(cmd, "--help")
	require.NoError(t, err)

	check := func(f *pflag.Flag) {
		assert.Contains(t, stdout, "--"+f.Name, "Help output should contain flag --%s", f.Name)
		if f.Shorthand != "" {
			assert.Contains(t, stdout, "-"+f.Shorthand+",", "Help output should contain shorthand -%s", f.Shorthand)
		}
	}
	cmd.Flags().VisitAll(check)
	cmd.PersistentFlags().VisitAll(check)
}

// TestRootCmdVersion tests the --version flag output format
func TestRootCmdVersion(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	version, commit, date = "test-1.2.3", "testcommit123", "2024-01-01T10:00:00Z"
	defer func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	}()

	stdout, stderr, err := executeCommand(newRootCmd(), "--version")

	require.NoError(t, err)
	assert.Empty(t, stderr)
	expected := fmt.Sprintf("folder-summary version %s (commit: %s, built: %s)\n", version, commit, date)
	assert.Equal(t, expected, stdout)
}

func TestRootCmd_ArgumentErrors(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		errorMsg string
	}{
		{"too many arguments", []string{"a", "b", "c"}, "accepts at most 2 arg(s)"},
		{"unknown flag", []string{"--unknown-flag"}, "unknown flag: --unknown-flag"},
		{"invalid int", []string{"--file-keywords", "abc"}, `invalid argument "abc" for "--file-keywords" flag`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, stderr, err := executeCommand(newRootCmd(), tc.args...)
			require.Error(t, err)
			assert.Contains(t, stderr, tc.errorMsg)
		})
	}
}

func TestRootCmd_NoSelectionExitsCleanly(t *testing.T) {
	_, _, err := executeCommand(newRootCmd(), "--no-tui")
	assert.NoError(t, err)

	_, _, err = executeCommand(newRootCmd(), t.TempDir(), "--no-tui")
	assert.NoError(t, err)
}

func TestRootCmd_WritesReport(t *testing.T) {
	dir := t.TempDir()
	testutil.CreateDummyFile(t, filepath.Join(dir, "a.txt"), "folder summary folder report")
	testutil.CreateDocx(t, filepath.Join(dir, "b.docx"), "summary of the folder")
	out := filepath.Join(t.TempDir(), "report")

	_, _, err := executeCommand(newRootCmd(), dir, out, "--no-tui", "--output-format", "json")
	require.NoError(t, err)

	info, err := os.Stat(out + ".docx")
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRootCmd_ConfigErrorFails(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(t.TempDir(), "report.txt")

	_, _, err := executeCommand(newRootCmd(), dir, out, "--no-tui", "--output-format", "xml")
	require.Error(t, err)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}
