package host

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/tabs/pkg/logger"
	"github.com/alexisbeaulieu97/tabs/pkg/view"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Program drives a view tree as a bubbletea model. Every event is preceded by
// a layout pass so views see up to date geometry and drained channels.
type Program struct {
	root    view.View
	keys    KeyMap
	globals map[rune]view.Callback
	log     *logger.Logger

	size    view.Vec2
	focused bool
	quit    bool
	cmds    []tea.Cmd
}

// Option configures a Program.
type Option func(*Program)

// WithKeyMap replaces the default key bindings.
func WithKeyMap(km KeyMap) Option {
	return func(p *Program) {
		p.keys = km
	}
}

// WithLogger sets the logger used for event tracing.
func WithLogger(log *logger.Logger) Option {
	return func(p *Program) {
		p.log = log.Component("host")
	}
}

// WithGlobal runs cb when r reaches the root and nothing consumes it.
func WithGlobal(r rune, cb view.Callback) Option {
	return func(p *Program) {
		p.globals[r] = cb
	}
}

// WithSize sets the screen size used until the terminal reports one.
func WithSize(size view.Vec2) Option {
	return func(p *Program) {
		p.size = size
	}
}

// New returns a program rooted at root.
func New(root view.View, opts ...Option) *Program {
	p := &Program{
		root:    root,
		keys:    DefaultKeyMap(),
		globals: make(map[rune]view.Callback),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Root returns the root view.
func (p *Program) Root() view.View {
	return p.root
}

// Size returns the current screen size.
func (p *Program) Size() view.Vec2 {
	return p.size
}

// Quitting reports whether a callback asked the program to stop.
func (p *Program) Quitting() bool {
	return p.quit
}

func (p *Program) Init() tea.Cmd {
	return nil
}

func (p *Program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.size = view.NewVec2(msg.Width, msg.Height)
		p.layout()
		return p, p.Step(view.NewResize(p.size).WithMsg(msg))

	case tea.KeyMsg:
		if key.Matches(msg, p.keys.Quit) {
			p.quit = true
			return p, tea.Quit
		}
		tr, ok := p.keys.translate(msg)
		if !ok {
			p.log.Debug("unbound key", "key", msg.String())
			return p, nil
		}
		return p, p.dispatch(tr)

	case tea.MouseMsg:
		ev, ok := translateMouse(msg)
		if !ok {
			return p, nil
		}
		return p, p.Step(ev)
	}
	return p, nil
}

func (p *Program) View() string {
	if p.quit || p.size.X <= 0 || p.size.Y <= 0 {
		return ""
	}
	return p.Screen().Render()
}

// Screen lays the tree out and draws it into a fresh screen.
func (p *Program) Screen() *view.Screen {
	p.layout()
	screen := view.NewScreen(p.size)
	p.root.Draw(view.NewPrinter(screen))
	return screen
}

// Step delivers ev to the root and runs what it schedules. The returned
// command batches everything callbacks queued through Cmd and Quit.
func (p *Program) Step(ev view.Event) tea.Cmd {
	return p.dispatch(translation{event: ev})
}

func (p *Program) dispatch(tr translation) tea.Cmd {
	p.layout()

	ev := tr.event
	res := p.root.OnEvent(ev)
	if !res.IsConsumed() {
		res = p.fallback(tr)
	}
	p.log.Trace("event", "event", ev.String(), "consumed", res.IsConsumed())
	res.Process(p)

	return p.flush()
}

// fallback handles what the root ignored: focus cycling, vim style aliases
// and global callbacks, in that order.
func (p *Program) fallback(tr translation) view.EventResult {
	ev := tr.event
	switch {
	case ev.IsKey(view.KeyTab):
		return p.takeFocus(view.DirectionFront)
	case ev.IsKey(view.KeyBackTab):
		return p.takeFocus(view.DirectionBack)
	case ev.Kind != view.EventChar:
		return view.Ignored()
	}

	if tr.alias != view.KeyNone {
		alias := view.NewKey(tr.alias).WithMsg(ev.Msg)
		if res := p.root.OnEvent(alias); res.IsConsumed() {
			return res
		}
	}
	if cb, ok := p.globals[ev.Rune]; ok {
		return view.ConsumedWith(cb)
	}
	return view.Ignored()
}

func (p *Program) takeFocus(source view.Direction) view.EventResult {
	res, err := p.root.TakeFocus(source)
	if err != nil {
		return view.Ignored()
	}
	return res
}

// layout runs one layout pass and hands initial focus to the root on the
// first one.
func (p *Program) layout() {
	if p.size.X <= 0 || p.size.Y <= 0 {
		return
	}
	p.root.RequiredSize(p.size)
	p.root.Layout(p.size)

	if !p.focused {
		p.focused = true
		if res, err := p.root.TakeFocus(view.DirectionNone); err == nil {
			res.Process(p)
		}
	}
}

func (p *Program) flush() tea.Cmd {
	cmds := p.cmds
	p.cmds = nil
	if p.quit {
		cmds = append(cmds, tea.Quit)
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

// Quit implements view.Runner.
func (p *Program) Quit() {
	p.quit = true
}

// CallOn implements view.Runner. Only the first match is visited.
func (p *Program) CallOn(sel view.Selector, fn func(view.View)) bool {
	found := false
	p.root.CallOnAny(sel, func(v view.View) {
		if found {
			return
		}
		found = true
		fn(v)
	})
	return found
}

// Focus implements view.Runner.
func (p *Program) Focus(sel view.Selector) error {
	res, err := p.root.FocusView(sel)
	if err != nil {
		return fmt.Errorf("focus %q: %w", sel.Name, err)
	}
	res.Process(p)
	return nil
}

// Cmd schedules a bubbletea command; it runs once the current event is done.
func (p *Program) Cmd(cmd tea.Cmd) {
	if cmd != nil {
		p.cmds = append(p.cmds, cmd)
	}
}

// Run starts an interactive program on the alternate screen with mouse
// support and blocks until it quits or ctx is cancelled.
func (p *Program) Run(ctx context.Context) error {
	prog := tea.NewProgram(p,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// Snapshot renders root once at size without a terminal.
func Snapshot(root view.View, size view.Vec2) *view.Screen {
	return New(root, WithSize(size)).Screen()
}

// Render is Snapshot rendered with styles.
func Render(root view.View, size view.Vec2) string {
	return Snapshot(root, size).Render()
}
