package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tabs/pkg/host"
	"github.com/alexisbeaulieu97/tabs/pkg/tabs"
	"github.com/alexisbeaulieu97/tabs/pkg/ui/components"
	"github.com/alexisbeaulieu97/tabs/pkg/view"
)

func TestBuildLayout(t *testing.T) {
	t.Parallel()

	layout, err := Parse("inline", []byte(`placement: bottom
align: end
tabs:
  - key: about
    text: hello
  - key: notes
    kind: textarea
    text: draft
`))
	require.NoError(t, err)

	panel, err := layout.Build(nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"about", "notes"}, panel.TabOrder())
	assert.Equal(t, tabs.HorizontalBottom, panel.BarPlacement())
	assert.Equal(t, tabs.AlignEnd, panel.BarAlignment())

	key, ok := panel.ActiveTab()
	require.True(t, ok)
	assert.Equal(t, "about", key, "the first tab is active by default")

	var found view.View
	panel.CallOnAny(view.ByName("about"), func(v view.View) { found = v })
	require.IsType(t, &components.Text{}, found)
	assert.Equal(t, "hello", found.(*components.Text).Content())

	screen := host.Snapshot(panel, view.NewVec2(20, 5))
	assert.Contains(t, screen.Line(1), "hello")
}

func TestBuildLayoutTheme(t *testing.T) {
	t.Parallel()

	layout := validLayout()
	layout.Theme = "dark"
	layout.Border = "rounded"

	panel, err := layout.Build(nil)
	require.NoError(t, err)

	screen := host.Snapshot(panel, view.NewVec2(20, 5))
	assert.Equal(t, "╰", string([]rune(screen.Line(4))[0]))
	assert.Equal(t, "╯", string([]rune(screen.Line(4))[19]))

	layout.Theme = "neon"
	_, err = layout.Build(nil)
	require.ErrorContains(t, err, `unknown theme "neon"`)
}

func TestBuildLayoutActive(t *testing.T) {
	t.Parallel()

	layout := validLayout()
	layout.Active = "notes"

	panel, err := layout.Build(nil)
	require.NoError(t, err)
	key, _ := panel.ActiveTab()
	assert.Equal(t, "notes", key)

	layout.Active = "missing"
	_, err = layout.Build(nil)
	var notFound *tabs.ErrKeyNotFound
	require.ErrorAs(t, err, &notFound)
}

func TestLayoutKeyMap(t *testing.T) {
	t.Parallel()

	layout := validLayout()
	layout.Bindings = map[string][]string{
		"quit":      {"ctrl+q"},
		"shift_tab": {"ctrl+p"},
	}

	base := host.DefaultKeyMap()
	km := layout.KeyMap(base)

	assert.Equal(t, []string{"ctrl+q"}, km.Quit.Keys())
	assert.Equal(t, []string{"ctrl+p"}, km.BackTab.Keys())
	assert.Equal(t, base.Up.Keys(), km.Up.Keys())
	assert.Equal(t, []string{"ctrl+c"}, base.Quit.Keys(), "the base map is left alone")
}
