package view

import "errors"

var (
	// ErrCannotFocus is returned by TakeFocus when the view refuses focus.
	ErrCannotFocus = errors.New("view cannot take focus")
	// ErrViewNotFound is returned by FocusView when no descendant matches.
	ErrViewNotFound = errors.New("view not found")
)

// View is the contract every widget implements.
type View interface {
	// Draw renders the view through p, which is already offset and cropped.
	Draw(p *Printer)
	// Layout is called with the final size before Draw.
	Layout(size Vec2)
	// RequiredSize returns the size the view wants under constraint.
	RequiredSize(constraint Vec2) Vec2
	// OnEvent handles one input event.
	OnEvent(ev Event) EventResult
	// TakeFocus is called when focus arrives from source.
	TakeFocus(source Direction) (EventResult, error)
	// CallOnAny runs fn on every descendant matching sel.
	CallOnAny(sel Selector, fn func(View))
	// FocusView moves focus to the descendant matching sel.
	FocusView(sel Selector) (EventResult, error)
	// NeedsRelayout reports whether the cached layout is stale.
	NeedsRelayout() bool
	// ImportantArea returns the region a scrolling parent should keep visible.
	ImportantArea(size Vec2) Rect
}

// Base implements View with conventional defaults. Embed it in widgets that
// only need a subset of the contract.
type Base struct{}

func (Base) Draw(*Printer) {}

func (Base) Layout(Vec2) {}

func (Base) RequiredSize(Vec2) Vec2 {
	return Vec2{X: 1, Y: 1}
}

func (Base) OnEvent(Event) EventResult {
	return Ignored()
}

func (Base) TakeFocus(Direction) (EventResult, error) {
	return Ignored(), ErrCannotFocus
}

func (Base) CallOnAny(Selector, func(View)) {}

func (Base) FocusView(Selector) (EventResult, error) {
	return Ignored(), ErrViewNotFound
}

func (Base) NeedsRelayout() bool {
	return true
}

func (Base) ImportantArea(size Vec2) Rect {
	return RectFromSize(size)
}

// Selector identifies a view in a tree.
type Selector struct {
	Name string
}

// ByName selects the view wrapped by Named with the given name.
func ByName(name string) Selector {
	return Selector{Name: name}
}

// NamedView gives its inner view a name that selectors can find.
type NamedView struct {
	View
	name string
}

// Named wraps v under name.
func Named(name string, v View) *NamedView {
	return &NamedView{View: v, name: name}
}

// Name returns the name the view was registered under.
func (n *NamedView) Name() string {
	return n.name
}

// Inner returns the wrapped view.
func (n *NamedView) Inner() View {
	return n.View
}

// CallOnAny calls fn on the inner view when sel names it, and otherwise keeps
// searching inside it.
func (n *NamedView) CallOnAny(sel Selector, fn func(View)) {
	if sel.Name == n.name {
		fn(n.View)
		return
	}
	n.View.CallOnAny(sel, fn)
}

// FocusView succeeds when sel names this view. The parent is responsible for
// moving focus onto it.
func (n *NamedView) FocusView(sel Selector) (EventResult, error) {
	if sel.Name == n.name {
		return Consumed(), nil
	}
	return n.View.FocusView(sel)
}
