package components

import (
	"strings"

	"github.com/alexisbeaulieu97/tabs/pkg/view"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Model is the value-receiver model shape used by the bubbles widgets, such
// as textarea.Model and viewport.Model.
type Model[M any] interface {
	Update(tea.Msg) (M, tea.Cmd)
	View() string
}

// CmdRunner is implemented by runners able to schedule bubbletea commands.
type CmdRunner interface {
	view.Runner
	Cmd(tea.Cmd)
}

type focuser interface {
	Focus() tea.Cmd
	Blur()
}

type resizer interface {
	SetWidth(int)
	SetHeight(int)
}

// ModelView adapts a bubbletea model into a view. Key events are forwarded as
// tea.KeyMsg; the event counts as consumed when the rendered output changes.
type ModelView[M Model[M]] struct {
	view.Base
	model   M
	fill    bool
	focused bool
	size    view.Vec2
}

// NewModelView wraps model.
func NewModelView[M Model[M]](model M) *ModelView[M] {
	return &ModelView[M]{model: model}
}

// WithFill makes the view ask for all the space it is offered.
func (m *ModelView[M]) WithFill() *ModelView[M] {
	m.fill = true
	return m
}

// Model returns the wrapped model.
func (m *ModelView[M]) Model() M {
	return m.model
}

// SetModel replaces the wrapped model.
func (m *ModelView[M]) SetModel(model M) {
	m.model = model
}

func (m *ModelView[M]) RequiredSize(constraint view.Vec2) view.Vec2 {
	if m.fill {
		return constraint
	}
	out := m.model.View()
	return view.Vec2{X: lipgloss.Width(out), Y: lipgloss.Height(out)}
}

func (m *ModelView[M]) Layout(size view.Vec2) {
	m.size = size
	if r, ok := any(&m.model).(resizer); ok {
		r.SetWidth(size.X)
		r.SetHeight(size.Y)
	}
}

// Draw prints the model's output with escape sequences removed, and keeps the
// model's own focus state in line with the printer's.
func (m *ModelView[M]) Draw(p *view.Printer) {
	m.syncFocus(p.IsFocused())
	lines := strings.Split(ansi.Strip(m.model.View()), "\n")
	for y, line := range lines {
		if y >= p.Size().Y {
			break
		}
		p.Print(view.Vec2{Y: y}, line)
	}
}

func (m *ModelView[M]) syncFocus(focused bool) {
	if focused == m.focused {
		return
	}
	f, ok := any(&m.model).(focuser)
	if !ok {
		return
	}
	if focused {
		f.Focus()
	} else {
		f.Blur()
	}
	m.focused = focused
}

func (m *ModelView[M]) OnEvent(ev view.Event) view.EventResult {
	msg, ok := toTeaMsg(ev)
	if !ok {
		return view.Ignored()
	}

	before := m.model.View()
	next, cmd := m.model.Update(msg)
	m.model = next
	if m.model.View() == before {
		return view.Ignored()
	}
	if cmd == nil {
		return view.Consumed()
	}
	return view.ConsumedWith(func(r view.Runner) {
		if cr, ok := r.(CmdRunner); ok {
			cr.Cmd(cmd)
		}
	})
}

// TakeFocus succeeds for models that can be focused.
func (m *ModelView[M]) TakeFocus(view.Direction) (view.EventResult, error) {
	f, ok := any(&m.model).(focuser)
	if !ok {
		return view.Ignored(), view.ErrCannotFocus
	}
	if !m.focused {
		f.Focus()
		m.focused = true
	}
	return view.Consumed(), nil
}

func (m *ModelView[M]) NeedsRelayout() bool {
	return false
}

var teaKeys = map[view.Key]tea.KeyType{
	view.KeyUp:        tea.KeyUp,
	view.KeyDown:      tea.KeyDown,
	view.KeyLeft:      tea.KeyLeft,
	view.KeyRight:     tea.KeyRight,
	view.KeyEnter:     tea.KeyEnter,
	view.KeyTab:       tea.KeyTab,
	view.KeyBackTab:   tea.KeyShiftTab,
	view.KeyEsc:       tea.KeyEsc,
	view.KeyBackspace: tea.KeyBackspace,
	view.KeyDelete:    tea.KeyDelete,
	view.KeyHome:      tea.KeyHome,
	view.KeyEnd:       tea.KeyEnd,
	view.KeyPageUp:    tea.KeyPgUp,
	view.KeyPageDown:  tea.KeyPgDown,
}

// toTeaMsg prefers the message the event came from and synthesises one for
// events built by hand.
func toTeaMsg(ev view.Event) (tea.Msg, bool) {
	switch ev.Kind {
	case view.EventKey:
		if msg, ok := ev.Msg.(tea.KeyMsg); ok {
			return msg, true
		}
		kt, ok := teaKeys[ev.Key]
		if !ok {
			return nil, false
		}
		return tea.KeyMsg{Type: kt, Alt: ev.Alt}, true
	case view.EventChar:
		if msg, ok := ev.Msg.(tea.KeyMsg); ok {
			return msg, true
		}
		if ev.Rune == ' ' {
			return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}, Alt: ev.Alt}, true
		}
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{ev.Rune}, Alt: ev.Alt}, true
	default:
		return nil, false
	}
}
