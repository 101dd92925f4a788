package host

import (
	"github.com/alexisbeaulieu97/tabs/pkg/view"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap maps terminal keys onto view keys. Bindings may list printable
// aliases such as the vim motions; those are delivered as characters first
// and only become navigation keys when nothing consumes the character.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Enter     key.Binding
	Tab       key.Binding
	BackTab   key.Binding
	Esc       key.Binding
	Backspace key.Binding
	Delete    key.Binding
	Home      key.Binding
	End       key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns arrow navigation with vim aliases and ctrl+c to quit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next focus")),
		BackTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous focus")),
		Esc:       key.NewBinding(key.WithKeys("esc")),
		Backspace: key.NewBinding(key.WithKeys("backspace")),
		Delete:    key.NewBinding(key.WithKeys("delete")),
		Home:      key.NewBinding(key.WithKeys("home")),
		End:       key.NewBinding(key.WithKeys("end")),
		PageUp:    key.NewBinding(key.WithKeys("pgup")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Left, km.Right, km.Enter, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Left, km.Right},
		{km.Enter, km.Tab, km.BackTab, km.Quit},
	}
}

func (km KeyMap) bindings() []struct {
	binding key.Binding
	key     view.Key
} {
	return []struct {
		binding key.Binding
		key     view.Key
	}{
		{km.Up, view.KeyUp},
		{km.Down, view.KeyDown},
		{km.Left, view.KeyLeft},
		{km.Right, view.KeyRight},
		{km.Enter, view.KeyEnter},
		{km.Tab, view.KeyTab},
		{km.BackTab, view.KeyBackTab},
		{km.Esc, view.KeyEsc},
		{km.Backspace, view.KeyBackspace},
		{km.Delete, view.KeyDelete},
		{km.Home, view.KeyHome},
		{km.End, view.KeyEnd},
		{km.PageUp, view.KeyPageUp},
		{km.PageDown, view.KeyPageDown},
	}
}

// lookup returns the view key bound to msg.
func (km KeyMap) lookup(msg tea.KeyMsg) (view.Key, bool) {
	for _, b := range km.bindings() {
		if key.Matches(msg, b.binding) {
			return b.key, true
		}
	}
	return view.KeyNone, false
}

// translation is a key message as the root sees it. For printable keys
// alias holds the navigation key to retry with.
type translation struct {
	event view.Event
	alias view.Key
}

func (km KeyMap) translate(msg tea.KeyMsg) (translation, bool) {
	bound, ok := km.lookup(msg)

	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		if len(msg.Runes) != 1 {
			return translation{}, false
		}
		ev := view.NewChar(msg.Runes[0]).WithMsg(msg)
		ev.Alt = msg.Alt
		tr := translation{event: ev}
		if ok {
			tr.alias = bound
		}
		return tr, true
	default:
		if !ok {
			return translation{}, false
		}
		ev := view.NewKey(bound).WithMsg(msg)
		ev.Alt = msg.Alt
		return translation{event: ev}, true
	}
}

func translateMouse(msg tea.MouseMsg) (view.Event, bool) {
	pos := view.NewVec2(msg.X, msg.Y)

	var button view.MouseButton
	switch msg.Button {
	case tea.MouseButtonLeft:
		button = view.MouseLeft
	case tea.MouseButtonMiddle:
		button = view.MouseMiddle
	case tea.MouseButtonRight:
		button = view.MouseRight
	case tea.MouseButtonWheelUp:
		button = view.MouseWheelUp
	case tea.MouseButtonWheelDown:
		button = view.MouseWheelDown
	case tea.MouseButtonNone:
		button = view.MouseNone
	default:
		return view.Event{}, false
	}

	var action view.MouseAction
	switch msg.Action {
	case tea.MouseActionPress:
		action = view.MousePress
	case tea.MouseActionRelease:
		action = view.MouseRelease
		// X10 style reporting does not say which button was let go.
		if button == view.MouseNone {
			button = view.MouseLeft
		}
	case tea.MouseActionMotion:
		if button == view.MouseNone {
			return view.Event{}, false
		}
		action = view.MouseHold
	default:
		return view.Event{}, false
	}

	return view.NewMouse(action, button, pos).WithMsg(msg), true
}
