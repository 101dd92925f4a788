package main

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubBuildInfo(t *testing.T, v, c, d string) {
	t.Helper()
	oldVersion, oldCommit, oldDate := version, commit, date
	t.Cleanup(func() { version, commit, date = oldVersion, oldCommit, oldDate })
	version, commit, date = v, c, d
}

func runVersion(t *testing.T, args ...string) string {
	t.Helper()
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"version"}, args...))
	require.NoError(t, root.Execute())
	return out.String()
}

func TestVersionPrintsBuildInfo(t *testing.T) {
	stubBuildInfo(t, "0.3.0", "abcdef1", "2026-10-01")

	out := runVersion(t)
	assert.Contains(t, out, "tabs 0.3.0\n")
	assert.Contains(t, out, "commit: abcdef1\n")
	assert.Contains(t, out, "built: 2026-10-01\n")
	assert.Contains(t, out, runtime.Version())
}

func TestVersionShort(t *testing.T) {
	stubBuildInfo(t, "0.3.0", "abcdef1", "2026-10-01")

	assert.Equal(t, "0.3.0\n", runVersion(t, "--short"))
}

func TestVersionRejectsArguments(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"version", "extra"})
	require.Error(t, root.Execute())
}
