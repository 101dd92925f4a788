package host

import (
	"testing"

	"github.com/alexisbeaulieu97/tabs/pkg/tabs"
	"github.com/alexisbeaulieu97/tabs/pkg/ui/components"
	"github.com/alexisbeaulieu97/tabs/pkg/view"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPanel() *tabs.TabPanel[string] {
	return tabs.NewTabPanel[string]().
		WithTab("a", components.NewText("hi")).
		WithTab("b", components.NewText("hi"))
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTranslateKeys(t *testing.T) {
	km := DefaultKeyMap()

	tr, ok := km.translate(tea.KeyMsg{Type: tea.KeyUp})
	require.True(t, ok)
	assert.True(t, tr.event.IsKey(view.KeyUp))

	tr, ok = km.translate(runes("k"))
	require.True(t, ok)
	assert.Equal(t, view.EventChar, tr.event.Kind)
	assert.Equal(t, 'k', tr.event.Rune)
	assert.Equal(t, view.KeyUp, tr.alias)

	tr, ok = km.translate(runes("x"))
	require.True(t, ok)
	assert.Equal(t, view.KeyNone, tr.alias)

	_, ok = km.translate(tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.False(t, ok)
}

func TestTranslateMouse(t *testing.T) {
	ev, ok := translateMouse(tea.MouseMsg{X: 3, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
	require.True(t, ok)
	assert.Equal(t, view.MouseLeft, ev.Mouse.Button)
	assert.Equal(t, view.MouseRelease, ev.Mouse.Action)
	pos, ok := ev.RelativePosition()
	require.True(t, ok)
	assert.Equal(t, view.NewVec2(3, 1), pos)

	_, ok = translateMouse(tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	assert.False(t, ok, "bare motion is dropped")

	ev, ok = translateMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	require.True(t, ok)
	assert.False(t, ev.GrabsFocus())
}

func TestProgramKeyboardSwitchesTab(t *testing.T) {
	panel := newPanel()
	p := New(panel)

	Feed(p,
		tea.WindowSizeMsg{Width: 7, Height: 4},
		tea.KeyMsg{Type: tea.KeyLeft},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	assert.Equal(t, []string{
		" │a│b│ ",
		"┌┘ └─┴┐",
		"│hi   │",
		"└─────┘",
	}, p.Screen().Lines())

	key, ok := panel.ActiveTab()
	require.True(t, ok)
	assert.Equal(t, "a", key)
}

func TestProgramVimAlias(t *testing.T) {
	panel := newPanel()
	p := New(panel, WithSize(view.NewVec2(20, 5)))

	Feed(p, runes("h"))

	cursor, ok := panel.Bar().Cursor()
	require.True(t, ok)
	assert.Equal(t, "a", cursor)
}

func TestProgramMouseClick(t *testing.T) {
	panel := newPanel()
	p := New(panel)

	msgs, err := ParseInput("click:2:0")
	require.NoError(t, err)
	Feed(p, append([]tea.Msg{tea.WindowSizeMsg{Width: 7, Height: 4}}, msgs...)...)
	p.Screen()

	key, _ := panel.ActiveTab()
	assert.Equal(t, "a", key)
}

func TestProgramGlobalsAndQuit(t *testing.T) {
	p := New(newPanel(),
		WithSize(view.NewVec2(20, 5)),
		WithGlobal('q', func(r view.Runner) { r.Quit() }),
	)

	_, cmd := p.Update(runes("z"))
	assert.Nil(t, cmd)
	assert.False(t, p.Quitting())

	_, cmd = p.Update(runes("q"))
	assert.NotNil(t, cmd)
	assert.True(t, p.Quitting())
	assert.Empty(t, p.View())

	other := New(newPanel())
	_, cmd = other.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
	assert.True(t, other.Quitting())
}

func TestProgramRunnerCapabilities(t *testing.T) {
	target := view.Named("target", components.NewButton("go", nil))
	panel := tabs.NewTabPanel[string]().
		WithTab("one", components.NewText("first")).
		WithTab("two", target)
	p := New(panel, WithSize(view.NewVec2(20, 5)))
	p.Screen()
	require.True(t, panel.BarFocused())

	called := 0
	assert.True(t, p.CallOn(view.ByName("target"), func(view.View) { called++ }))
	assert.Equal(t, 1, called)
	assert.False(t, p.CallOn(view.ByName("missing"), func(view.View) { called++ }))

	require.NoError(t, p.Focus(view.ByName("target")))
	assert.False(t, panel.BarFocused())
	assert.ErrorIs(t, p.Focus(view.ByName("missing")), view.ErrViewNotFound)
}

func TestProgramCallbacksScheduleCommands(t *testing.T) {
	type doneMsg struct{}
	button := components.NewButton("go", func(r view.Runner) {
		r.(components.CmdRunner).Cmd(func() tea.Msg { return doneMsg{} })
	})
	p := New(button, WithSize(view.NewVec2(4, 1)))

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, doneMsg{}, cmd())
}

func TestSnapshot(t *testing.T) {
	panel := newPanel().WithBarPlacement(tabs.HorizontalBottom)

	assert.Equal(t, []string{
		"┌─────┐",
		"│hi   │",
		"└┬─┐ ┌┘",
		" │a│b│ ",
	}, Snapshot(panel, view.NewVec2(7, 4)).Lines())

	assert.NotEmpty(t, Render(newPanel(), view.NewVec2(7, 4)))
}

func TestParseInput(t *testing.T) {
	msgs, err := ParseInput("down, enter,x,space,shift+tab,click:4:1")
	require.NoError(t, err)
	require.Len(t, msgs, 7)

	assert.Equal(t, tea.KeyMsg{Type: tea.KeyDown}, msgs[0])
	assert.Equal(t, tea.KeyMsg{Type: tea.KeyEnter}, msgs[1])
	assert.Equal(t, runes("x"), msgs[2])
	assert.Equal(t, tea.KeySpace, msgs[3].(tea.KeyMsg).Type)
	assert.Equal(t, tea.KeyMsg{Type: tea.KeyShiftTab}, msgs[4])
	assert.Equal(t, tea.MouseActionPress, msgs[5].(tea.MouseMsg).Action)
	assert.Equal(t, 4, msgs[6].(tea.MouseMsg).X)

	_, err = ParseInput("hyperspace")
	assert.ErrorContains(t, err, "unknown key")
	_, err = ParseInput("click:1")
	assert.Error(t, err)
}
