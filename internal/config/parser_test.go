package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	tabserrors "github.com/alexisbeaulieu97/tabs/pkg/errors"
	"github.com/alexisbeaulieu97/tabs/pkg/tabs"
)

func TestParseLayout(t *testing.T) {
	t.Parallel()

	validYAML := `placement: left
align: center
active: notes
tabs:
  - key: about
    text: |
      A tab panel demo.
  - key: notes
    kind: textarea
    placeholder: "Write here"
  - log
keys:
  quit: [ctrl+c, ctrl+q]
`

	invalidYAML := `tabs: [about
`

	badPlacement := `placement: diagonal
tabs: [about]
`

	missingTabs := `placement: top
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, layout *Layout, err error)
	}{
		{
			name:     "valid layout is parsed",
			contents: validYAML,
			assert: func(t *testing.T, layout *Layout, err error) {
				require.NoError(t, err)
				require.NotNil(t, layout)
				require.Equal(t, tabs.VerticalLeft, layout.Placement)
				require.Equal(t, tabs.AlignCenter, layout.Align)
				require.Equal(t, "notes", layout.Active)
				require.Equal(t, []string{"about", "notes", "log"}, layout.TabKeys())
				require.Equal(t, KindText, layout.Tabs[0].Kind)
				require.Equal(t, "A tab panel demo.\n", layout.Tabs[0].Text)
				require.Equal(t, KindTextarea, layout.Tabs[1].Kind)
				require.Equal(t, KindText, layout.Tabs[2].Kind)
				require.Equal(t, []string{"ctrl+c", "ctrl+q"}, layout.Bindings["quit"])
			},
		},
		{
			name:     "syntax errors carry a line",
			contents: invalidYAML,
			assert: func(t *testing.T, layout *Layout, err error) {
				require.Nil(t, layout)
				var parseErr *tabserrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "unknown placement is a parse error",
			contents: badPlacement,
			assert: func(t *testing.T, layout *Layout, err error) {
				var parseErr *tabserrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, err.Error(), "unknown placement")
			},
		},
		{
			name:     "tabs are required",
			contents: missingTabs,
			assert: func(t *testing.T, layout *Layout, err error) {
				var validationErr *tabserrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "tabs", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "layout.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0o600))

			layout, err := ParseLayout(path)
			tc.assert(t, layout, err)
		})
	}
}

func TestParseLayoutMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseLayout(filepath.Join(t.TempDir(), "absent.yaml"))

	var parseErr *tabserrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Zero(t, extractLine(nil))
	require.Equal(t, 7, extractLine(errString("yaml: line 7: mapping values are not allowed")))
	require.Zero(t, extractLine(errString("no line here")))
}

type errString string

func (e errString) Error() string { return string(e) }
