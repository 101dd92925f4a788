package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	tabserrors "github.com/alexisbeaulieu97/tabs/pkg/errors"
)

const testLayout = `tabs:
  - key: a
    text: hi
  - key: b
    text: yo
`

func writeLayout(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testLayout), 0o600))
	return path
}

func runRender(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"render", "--config", writeLayout(t), "--width", "9", "--height", "5"}, args...))

	err := root.Execute()
	return strings.TrimSuffix(out.String(), "\n"), err
}

func TestRenderCommand(t *testing.T) {
	out, err := runRender(t)
	require.NoError(t, err)

	require.Equal(t, strings.Join([]string{
		" │a│b│   ",
		"┌┘ └─┴──┐",
		"│hi     │",
		"└───────┘",
		"Prev Next",
	}, "\n"), out)
}

func TestRenderCommandBorderFlag(t *testing.T) {
	out, err := runRender(t, "--border", "rounded", "--theme", "dark")
	require.NoError(t, err)

	require.Equal(t, strings.Join([]string{
		" │a│b│   ",
		"╭╯ ╰─┴──╮",
		"│hi     │",
		"╰───────╯",
		"Prev Next",
	}, "\n"), out)
}

func TestRenderCommandRejectsUnknownTheme(t *testing.T) {
	_, err := runRender(t, "--theme", "neon")

	var validationErr *tabserrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "theme", validationErr.Field)
}

func TestRenderCommandReplaysInput(t *testing.T) {
	out, err := runRender(t, "--input", "right,enter")
	require.NoError(t, err)

	require.Equal(t, strings.Join([]string{
		" │a│b│   ",
		"┌┴─┘ └──┐",
		"│yo     │",
		"└───────┘",
		"Prev Next",
	}, "\n"), out)
}

func TestRenderCommandReadsEnvironment(t *testing.T) {
	t.Setenv("TABS_PLACEMENT", "bottom")

	out, err := runRender(t)
	require.NoError(t, err)

	require.Equal(t, strings.Join([]string{
		"┌───────┐",
		"│hi     │",
		"└┐ ┌─┬──┘",
		" │a│b│   ",
		"Prev Next",
	}, "\n"), out)
}

func TestRenderCommandRejectsUnknownActive(t *testing.T) {
	_, err := runRender(t, "--active", "bb")

	var validationErr *tabserrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "active", validationErr.Field)
	require.Equal(t, "b", validationErr.Suggestion)
}

func TestRenderCommandRejectsBadInput(t *testing.T) {
	_, err := runRender(t, "--input", "warp")
	require.ErrorContains(t, err, "--input")

	_, err = runRender(t, "--placement", "middle")
	require.ErrorContains(t, err, "--placement")
}

func TestLogFileClosedAfterCommand(t *testing.T) {
	for name, input := range map[string]string{"success": "right", "failure": "warp"} {
		t.Run(name, func(t *testing.T) {
			logPath := filepath.Join(t.TempDir(), "tabs.log")
			a := newApp()
			root := a.rootCmd()
			root.SetOut(&bytes.Buffer{})
			root.SetErr(&bytes.Buffer{})
			root.SetArgs([]string{"render", "--config", writeLayout(t), "--width", "9", "--height", "5",
				"--log-level", "debug", "--log-file", logPath, "--input", input})

			err := root.Execute()
			if name == "failure" {
				require.ErrorContains(t, err, "--input")
			} else {
				require.NoError(t, err)
			}

			require.Nil(t, a.closer, "log file must be closed")
			data, readErr := os.ReadFile(logPath)
			require.NoError(t, readErr)
			require.Contains(t, string(data), "layout built")
		})
	}
}

func TestBuiltinLayoutIsValid(t *testing.T) {
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"render", "--width", "60", "--height", "12", "--log-level", "error"})

	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "about")
	require.Contains(t, out.String(), "A tab panel for terminal UIs.")
}
