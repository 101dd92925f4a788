package tabs

import (
	"fmt"
	"slices"

	"github.com/alexisbeaulieu97/tabs/pkg/logger"
	"github.com/alexisbeaulieu97/tabs/pkg/ui/components"
	"github.com/alexisbeaulieu97/tabs/pkg/view"
)

const noIndex = -1

type barButton[K comparable] struct {
	key    K
	button *components.Button
	pos    view.Vec2
	size   view.Vec2
}

// TabBar is a row or column of buttons, one per tab key, separated by lines
// and drawn against a border on the side facing the content.
//
// The bar tracks two indices. The cursor is the button keyboard input goes
// to; active is the button of the tab currently shown, as last announced on
// the receiver. Arrow keys move only the cursor; an announcement moves both.
type TabBar[K comparable] struct {
	children []*barButton[K]
	cursor   int
	active   int

	rx        *Receiver[K]
	placement Placement
	align     Align
	theme     components.Theme

	size        view.Vec2
	invalidated bool
	log         *logger.Logger
}

// NewTabBar returns an empty bar that takes active-key announcements from rx.
// rx may be nil.
func NewTabBar[K comparable](rx *Receiver[K]) *TabBar[K] {
	return &TabBar[K]{
		cursor:      noIndex,
		active:      noIndex,
		rx:          rx,
		theme:       components.DefaultTheme(),
		invalidated: true,
	}
}

// WithPlacement sets the edge the bar is drawn against.
func (b *TabBar[K]) WithPlacement(p Placement) *TabBar[K] {
	b.SetPlacement(p)
	return b
}

// SetPlacement sets the edge the bar is drawn against.
func (b *TabBar[K]) SetPlacement(p Placement) {
	b.placement = p
	b.invalidated = true
}

// WithAlignment sets how buttons are positioned along the bar.
func (b *TabBar[K]) WithAlignment(a Align) *TabBar[K] {
	b.SetAlignment(a)
	return b
}

// SetAlignment sets how buttons are positioned along the bar.
func (b *TabBar[K]) SetAlignment(a Align) {
	b.align = a
	b.invalidated = true
}

// WithTheme sets the theme for the bar and its buttons.
func (b *TabBar[K]) WithTheme(theme components.Theme) *TabBar[K] {
	b.theme = theme
	for _, child := range b.children {
		child.button.SetTheme(theme)
	}
	return b
}

// WithLogger sets the logger used for failed sends.
func (b *TabBar[K]) WithLogger(log *logger.Logger) *TabBar[K] {
	b.log = log.Component("tab_bar")
	return b
}

// Placement returns the edge the bar is drawn against.
func (b *TabBar[K]) Placement() Placement {
	return b.placement
}

// Alignment returns how buttons are positioned along the bar.
func (b *TabBar[K]) Alignment() Align {
	return b.align
}

// Keys returns the keys of the buttons in order.
func (b *TabBar[K]) Keys() []K {
	keys := make([]K, len(b.children))
	for i, child := range b.children {
		keys[i] = child.key
	}
	return keys
}

// Len returns the number of buttons.
func (b *TabBar[K]) Len() int {
	return len(b.children)
}

// Active returns the key of the highlighted button.
func (b *TabBar[K]) Active() (K, bool) {
	return b.keyAt(b.active)
}

// Cursor returns the key of the button receiving keyboard input.
func (b *TabBar[K]) Cursor() (K, bool) {
	return b.keyAt(b.cursor)
}

func (b *TabBar[K]) keyAt(i int) (K, bool) {
	if i < 0 || i >= len(b.children) {
		var zero K
		return zero, false
	}
	return b.children[i].key, true
}

// ButtonRect returns where the button for key was placed by the last layout.
func (b *TabBar[K]) ButtonRect(key K) (view.Rect, bool) {
	i := b.index(key)
	if i < 0 {
		return view.Rect{}, false
	}
	child := b.children[i]
	return view.NewRect(child.pos, child.size), true
}

func (b *TabBar[K]) index(key K) int {
	return slices.IndexFunc(b.children, func(c *barButton[K]) bool { return c.key == key })
}

func (b *TabBar[K]) newButton(tx *Sender[K], key K) *barButton[K] {
	log := b.log
	button := components.NewButton(fmt.Sprint(key), func(view.Runner) {
		if err := tx.Send(key); err != nil {
			log.Debug("button could not send key", "key", key, "error", err.Error())
		}
	}).WithTheme(b.theme)
	return &barButton[K]{key: key, button: button}
}

// AddButton appends a button that sends key on tx when pressed. The new
// button becomes both the cursor and the active one.
func (b *TabBar[K]) AddButton(tx *Sender[K], key K) {
	b.AddButtonAt(tx, key, len(b.children))
}

// AddButtonAt inserts a button at pos. Positions past the end append. A key
// that already has a button keeps its place and only becomes cursor and
// active.
func (b *TabBar[K]) AddButtonAt(tx *Sender[K], key K, pos int) {
	if i := b.index(key); i >= 0 {
		b.cursor = i
		b.setActive(i)
		return
	}
	pos = max(min(pos, len(b.children)), 0)
	b.children = slices.Insert(b.children, pos, b.newButton(tx, key))
	b.cursor = pos
	b.setActive(pos)
	b.invalidated = true
}

// RemoveButton removes the button for key, if there is one.
func (b *TabBar[K]) RemoveButton(key K) {
	i := b.index(key)
	if i < 0 {
		return
	}
	b.children = slices.Delete(b.children, i, i+1)
	b.cursor = shiftAfterRemove(b.cursor, i)
	b.active = shiftAfterRemove(b.active, i)
	b.invalidated = true
}

func shiftAfterRemove(idx, removed int) int {
	switch {
	case idx == removed:
		return noIndex
	case idx > removed:
		return idx - 1
	default:
		return idx
	}
}

// SwapButtons exchanges the buttons for a and b. Cursor and active follow the
// buttons they were on.
func (b *TabBar[K]) SwapButtons(a, c K) {
	i, j := b.index(a), b.index(c)
	if i < 0 || j < 0 {
		return
	}
	b.children[i], b.children[j] = b.children[j], b.children[i]
	b.cursor = swapIndex(b.cursor, i, j)
	b.active = swapIndex(b.active, i, j)
	b.invalidated = true
}

func swapIndex(idx, i, j int) int {
	switch idx {
	case i:
		return j
	case j:
		return i
	default:
		return idx
	}
}

func (b *TabBar[K]) setActive(i int) {
	for j, child := range b.children {
		child.button.SetActive(j == i)
	}
	b.active = i
}

// sync applies the newest announcement on the receiver and drops the rest.
// The cursor follows so keyboard input continues from the shown tab.
func (b *TabBar[K]) sync() {
	key, ok := b.rx.Latest()
	if !ok {
		return
	}
	i := b.index(key)
	if i < 0 {
		b.log.Debug("announced tab has no button", "key", key)
		return
	}
	b.setActive(i)
	b.cursor = i
	b.invalidated = true
}

func (b *TabBar[K]) RequiredSize(constraint view.Vec2) view.Vec2 {
	b.sync()
	if len(b.children) == 0 {
		return view.Vec2{X: 1, Y: 1}
	}

	axis := b.placement.Orientation()
	cross := 0
	for _, child := range b.children {
		child.size = child.button.RequiredSize(constraint)
		cross = max(cross, child.size.Get(axis.Swap()))
	}
	return view.Vec2{}.With(axis, b.extent()).With(axis.Swap(), cross+1)
}

// extent is the length of all buttons plus a separator before each and one
// after the last.
func (b *TabBar[K]) extent() int {
	axis := b.placement.Orientation()
	total := len(b.children) + 1
	for _, child := range b.children {
		total += child.size.Get(axis)
	}
	return total
}

// buttonCross is where buttons start on the cross axis; they sit on the far
// side of the border line.
func (b *TabBar[K]) buttonCross() int {
	if b.placement == HorizontalBottom || b.placement == VerticalRight {
		return 1
	}
	return 0
}

// lineCross is the cross-axis coordinate of the border line.
func (b *TabBar[K]) lineCross() int {
	if b.placement == HorizontalBottom || b.placement == VerticalRight {
		return 0
	}
	return b.size.Get(b.placement.Orientation().Swap()) - 1
}

func (b *TabBar[K]) Layout(size view.Vec2) {
	b.size = size
	axis := b.placement.Orientation()

	pos := b.align.Offset(b.extent(), size.Get(axis)) + 1
	for _, child := range b.children {
		child.pos = view.Vec2{}.With(axis, pos).With(axis.Swap(), b.buttonCross())
		child.button.Layout(child.size)
		pos += child.size.Get(axis) + 1
	}
	b.invalidated = false
}

// StartOffset returns where the first separator was placed by the last layout.
func (b *TabBar[K]) StartOffset() int {
	if len(b.children) == 0 {
		return 0
	}
	return b.children[0].pos.Get(b.placement.Orientation()) - 1
}

type barGlyphs struct {
	line, separator, joint, openStart, openEnd string
}

func (b *TabBar[K]) glyphs() barGlyphs {
	border := b.theme.Frame.Border
	switch b.placement {
	case HorizontalBottom:
		return barGlyphs{border.Top, border.Left, border.MiddleTop, border.TopRight, border.TopLeft}
	case VerticalLeft:
		return barGlyphs{border.Left, border.Top, border.MiddleRight, border.BottomRight, border.TopRight}
	case VerticalRight:
		return barGlyphs{border.Left, border.Top, border.MiddleLeft, border.BottomLeft, border.TopLeft}
	default:
		return barGlyphs{border.Top, border.Left, border.MiddleBottom, border.BottomRight, border.BottomLeft}
	}
}

// at maps an (along, across) pair to bar coordinates.
func (b *TabBar[K]) at(along, across int) view.Vec2 {
	axis := b.placement.Orientation()
	return view.Vec2{}.With(axis, along).With(axis.Swap(), across)
}

func (b *TabBar[K]) Draw(p *view.Printer) {
	if len(b.children) == 0 {
		return
	}
	axis := b.placement.Orientation()
	g := b.glyphs()
	frame := p.WithStyle(b.theme.Frame.Style)
	line := b.lineCross()
	depth := b.size.Get(axis.Swap()) - 1

	length := b.size.Get(axis)
	if axis == view.Horizontal {
		frame.PrintHLine(b.at(0, line), length, g.line)
	} else {
		frame.PrintVLine(b.at(0, line), length, g.line)
	}

	separator := func(along int) {
		for i := 0; i < depth; i++ {
			frame.Print(b.at(along, b.buttonCross()+i), g.separator)
		}
		frame.Print(b.at(along, line), g.joint)
	}
	for _, child := range b.children {
		start := child.pos.Get(axis)
		separator(start - 1)
		separator(start + child.size.Get(axis))
	}

	if b.active >= 0 {
		child := b.children[b.active]
		start, n := child.pos.Get(axis), child.size.Get(axis)
		for i := 0; i < n; i++ {
			frame.Print(b.at(start+i, line), " ")
		}
		frame.Print(b.at(start-1, line), g.openStart)
		frame.Print(b.at(start+n, line), g.openEnd)
	}

	for i, child := range b.children {
		child.button.Draw(p.Sub(child.pos, child.size).WithFocus(i == b.cursor))
	}
}

func (b *TabBar[K]) OnEvent(ev view.Event) view.EventResult {
	if len(b.children) == 0 {
		return view.Ignored()
	}

	if ev.IsMouse() && ev.Mouse.Action == view.MouseRelease && ev.Mouse.Button == view.MouseLeft {
		if pos, ok := ev.RelativePosition(); ok {
			for i, child := range b.children {
				if view.NewRect(child.pos, child.size).Contains(pos) {
					b.cursor = i
					return child.button.OnEvent(view.NewKey(view.KeyEnter))
				}
			}
		}
	}

	if b.cursor < 0 {
		return view.Ignored()
	}

	child := b.children[b.cursor]
	if res := child.button.OnEvent(ev.Relativized(child.pos)); res.IsConsumed() {
		return res
	}

	prev, next := view.KeyLeft, view.KeyRight
	if b.placement.Orientation() == view.Vertical {
		prev, next = view.KeyUp, view.KeyDown
	}
	switch {
	case ev.IsKey(prev):
		b.cursor = max(b.cursor-1, 0)
		return view.Consumed()
	case ev.IsKey(next):
		b.cursor = min(b.cursor+1, len(b.children)-1)
		return view.Consumed()
	default:
		return view.Ignored()
	}
}

// TakeFocus accepts focus whenever there is a button, placing the cursor on
// the active one if it was unset.
func (b *TabBar[K]) TakeFocus(view.Direction) (view.EventResult, error) {
	if len(b.children) == 0 {
		return view.Ignored(), view.ErrCannotFocus
	}
	if b.cursor < 0 {
		b.cursor = max(b.active, 0)
	}
	return view.Consumed(), nil
}

func (b *TabBar[K]) CallOnAny(sel view.Selector, fn func(view.View)) {
	for _, child := range b.children {
		child.button.CallOnAny(sel, fn)
	}
}

func (b *TabBar[K]) FocusView(view.Selector) (view.EventResult, error) {
	return view.Ignored(), view.ErrViewNotFound
}

func (b *TabBar[K]) NeedsRelayout() bool {
	return b.invalidated
}

// ImportantArea is the button under the cursor.
func (b *TabBar[K]) ImportantArea(size view.Vec2) view.Rect {
	if b.cursor < 0 {
		return view.RectFromSize(size)
	}
	child := b.children[b.cursor]
	return view.NewRect(child.pos, child.size)
}
