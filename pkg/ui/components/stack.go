package components

import "github.com/alexisbeaulieu97/tabs/pkg/view"

type stackChild struct {
	view   view.View
	grow   bool
	offset int
	req    view.Vec2
	size   view.Vec2
}

// Stack is a layout component that arranges children in a single direction and
// moves focus between them.
type Stack struct {
	view.Base
	children    []*stackChild
	orientation view.Orientation
	gap         int
	focus       int
}

// NewStack creates a new stack along the given axis.
func NewStack(orientation view.Orientation, children ...view.View) *Stack {
	s := &Stack{orientation: orientation}
	for _, child := range children {
		s.Add(child)
	}
	return s
}

// VStack creates a vertical stack (convenience constructor).
func VStack(children ...view.View) *Stack {
	return NewStack(view.Vertical, children...)
}

// HStack creates a horizontal stack (convenience constructor).
func HStack(children ...view.View) *Stack {
	return NewStack(view.Horizontal, children...)
}

// Add appends a child that keeps its required size.
func (s *Stack) Add(child view.View) *Stack {
	s.children = append(s.children, &stackChild{view: child})
	return s
}

// AddGrow appends a child that shares whatever space is left over.
func (s *Stack) AddGrow(child view.View) *Stack {
	s.children = append(s.children, &stackChild{view: child, grow: true})
	return s
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = max(gap, 0)
	return s
}

// Len returns the number of children.
func (s *Stack) Len() int {
	return len(s.children)
}

// Child returns the child at i, or nil when out of range.
func (s *Stack) Child(i int) view.View {
	if i < 0 || i >= len(s.children) {
		return nil
	}
	return s.children[i].view
}

// FocusIndex returns the index of the child holding focus.
func (s *Stack) FocusIndex() int {
	return s.focus
}

func (s *Stack) totalGap() int {
	if len(s.children) < 2 {
		return 0
	}
	return s.gap * (len(s.children) - 1)
}

func (s *Stack) RequiredSize(constraint view.Vec2) view.Vec2 {
	var total view.Vec2
	for _, child := range s.children {
		size := child.view.RequiredSize(constraint)
		child.req = size
		if s.orientation == view.Vertical {
			total = total.StackVertical(size)
		} else {
			total = total.StackHorizontal(size)
		}
	}
	return total.With(s.orientation, total.Get(s.orientation)+s.totalGap())
}

func (s *Stack) Layout(size view.Vec2) {
	axis := s.orientation
	available := size.Get(axis) - s.totalGap()

	used, growers := 0, 0
	for _, child := range s.children {
		used += child.req.Get(axis)
		if child.grow {
			growers++
		}
	}
	extra := max(available-used, 0)

	pos := 0
	for _, child := range s.children {
		length := child.req.Get(axis)
		if child.grow && growers > 0 {
			share := extra / growers
			extra -= share
			growers--
			length += share
		}
		length = min(length, max(size.Get(axis)-pos, 0))

		child.offset = pos
		child.size = size.With(axis, length)
		child.view.Layout(child.size)
		pos += length + s.gap
	}
}

func (s *Stack) origin(child *stackChild) view.Vec2 {
	return view.Vec2{}.With(s.orientation, child.offset)
}

func (s *Stack) Draw(p *view.Printer) {
	for i, child := range s.children {
		sub := p.Sub(s.origin(child), child.size).WithFocus(i == s.focus)
		child.view.Draw(sub)
	}
}

func (s *Stack) OnEvent(ev view.Event) view.EventResult {
	if len(s.children) == 0 {
		return view.Ignored()
	}

	if ev.IsMouse() {
		pos, ok := ev.RelativePosition()
		if !ok {
			return view.Ignored()
		}
		for i, child := range s.children {
			origin := s.origin(child)
			if !view.NewRect(origin, child.size).Contains(pos) {
				continue
			}
			res := view.Ignored()
			if ev.GrabsFocus() && i != s.focus {
				if focusRes, err := child.view.TakeFocus(view.DirectionNone); err == nil {
					s.focus = i
					res = focusRes
				}
			}
			return res.And(child.view.OnEvent(ev.Relativized(origin)))
		}
		return view.Ignored()
	}

	if ev.Kind == view.EventRefresh {
		res := view.Ignored()
		for _, child := range s.children {
			res = res.And(child.view.OnEvent(ev))
		}
		return res
	}

	focused := s.children[s.focus]
	res := focused.view.OnEvent(ev.Relativized(s.origin(focused)))
	if res.IsConsumed() {
		return res
	}
	return s.moveFocus(ev)
}

func (s *Stack) moveFocus(ev view.Event) view.EventResult {
	if ev.Kind != view.EventKey {
		return view.Ignored()
	}

	forward, backward := view.KeyRight, view.KeyLeft
	if s.orientation == view.Vertical {
		forward, backward = view.KeyDown, view.KeyUp
	}

	switch ev.Key {
	case forward:
		return s.focusFrom(s.focus+1, 1, s.enterEdge(true))
	case backward:
		return s.focusFrom(s.focus-1, -1, s.enterEdge(false))
	case view.KeyTab:
		return s.focusFrom(s.focus+1, 1, view.DirectionFront)
	case view.KeyBackTab:
		return s.focusFrom(s.focus-1, -1, view.DirectionBack)
	default:
		return view.Ignored()
	}
}

// enterEdge is the side focus enters a sibling from when moving forward or
// backward along the stack.
func (s *Stack) enterEdge(forward bool) view.Direction {
	if s.orientation == view.Vertical {
		if forward {
			return view.DirectionUp
		}
		return view.DirectionDown
	}
	if forward {
		return view.DirectionLeft
	}
	return view.DirectionRight
}

func (s *Stack) focusFrom(start, step int, source view.Direction) view.EventResult {
	for i := start; i >= 0 && i < len(s.children); i += step {
		if res, err := s.children[i].view.TakeFocus(source); err == nil {
			s.focus = i
			return res.And(view.Consumed())
		}
	}
	return view.Ignored()
}

func (s *Stack) TakeFocus(source view.Direction) (view.EventResult, error) {
	if len(s.children) == 0 {
		return view.Ignored(), view.ErrCannotFocus
	}

	var order []int
	switch {
	case source == view.DirectionFront || source == s.enterEdge(true):
		order = s.indices(0, 1)
	case source == view.DirectionBack || source == s.enterEdge(false):
		order = s.indices(len(s.children)-1, -1)
	default:
		order = append([]int{s.focus}, s.indices(0, 1)...)
	}

	for _, i := range order {
		if res, err := s.children[i].view.TakeFocus(source); err == nil {
			s.focus = i
			return res, nil
		}
	}
	return view.Ignored(), view.ErrCannotFocus
}

func (s *Stack) indices(start, step int) []int {
	out := make([]int, 0, len(s.children))
	for i := start; i >= 0 && i < len(s.children); i += step {
		out = append(out, i)
	}
	return out
}

func (s *Stack) CallOnAny(sel view.Selector, fn func(view.View)) {
	for _, child := range s.children {
		child.view.CallOnAny(sel, fn)
	}
}

func (s *Stack) FocusView(sel view.Selector) (view.EventResult, error) {
	for i, child := range s.children {
		if res, err := child.view.FocusView(sel); err == nil {
			s.focus = i
			return res, nil
		}
	}
	return view.Ignored(), view.ErrViewNotFound
}

func (s *Stack) NeedsRelayout() bool {
	for _, child := range s.children {
		if child.view.NeedsRelayout() {
			return true
		}
	}
	return false
}

func (s *Stack) ImportantArea(size view.Vec2) view.Rect {
	if len(s.children) == 0 {
		return view.RectFromSize(size)
	}
	child := s.children[s.focus]
	return child.view.ImportantArea(child.size).Offset(s.origin(child))
}
