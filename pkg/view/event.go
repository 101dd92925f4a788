package view

import "fmt"

// EventKind discriminates the payload carried by an Event.
type EventKind int

const (
	EventKey EventKind = iota
	EventChar
	EventMouse
	EventRefresh
	EventResize
)

// Key names a non-printable key.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyTab
	KeyBackTab
	KeyEsc
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackTab:   "shift+tab",
	KeyEsc:       "esc",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// MouseAction is what happened to a mouse button.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseHold
)

// MouseButton identifies the button or wheel direction of a mouse event.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// IsWheel reports whether b is a scroll wheel direction.
func (b MouseButton) IsWheel() bool {
	return b == MouseWheelUp || b == MouseWheelDown
}

// MouseEvent is the pointer part of an Event.
type MouseEvent struct {
	Action MouseAction
	Button MouseButton
}

// Event is a single input delivered to a view.
//
// Position is absolute; Offset is the absolute origin of the view currently
// receiving the event. Containers call Relativized before forwarding to a child
// so that RelativePosition is always expressed in the receiver's coordinates.
type Event struct {
	Kind  EventKind
	Key   Key
	Rune  rune
	Alt   bool
	Mouse MouseEvent

	Position Vec2
	Offset   Vec2

	// Msg is the host message the event was translated from, if any.
	Msg any
}

// NewKey returns a key event.
func NewKey(k Key) Event {
	return Event{Kind: EventKey, Key: k}
}

// NewChar returns a printable character event.
func NewChar(r rune) Event {
	return Event{Kind: EventChar, Rune: r}
}

// NewMouse returns a pointer event at the absolute position pos.
func NewMouse(action MouseAction, button MouseButton, pos Vec2) Event {
	return Event{
		Kind:     EventMouse,
		Mouse:    MouseEvent{Action: action, Button: button},
		Position: pos,
	}
}

// NewRefresh returns the event hosts send on every tick.
func NewRefresh() Event {
	return Event{Kind: EventRefresh}
}

// NewResize returns a resize notification.
func NewResize(size Vec2) Event {
	return Event{Kind: EventResize, Position: size}
}

// WithMsg attaches the originating host message.
func (e Event) WithMsg(msg any) Event {
	e.Msg = msg
	return e
}

// Relativized returns e as seen by a child placed at off inside the current
// receiver.
func (e Event) Relativized(off Vec2) Event {
	e.Offset = e.Offset.Add(off)
	return e
}

// RelativePosition returns the pointer position relative to the receiver's
// origin. The second result is false for non-pointer events and for positions
// above or left of the receiver.
func (e Event) RelativePosition() (Vec2, bool) {
	if e.Kind != EventMouse {
		return Vec2{}, false
	}
	p := e.Position.Sub(e.Offset)
	if p.X < 0 || p.Y < 0 {
		return p, false
	}
	return p, true
}

// IsKey reports whether e is the given key.
func (e Event) IsKey(k Key) bool {
	return e.Kind == EventKey && e.Key == k
}

// IsMouse reports whether e is a pointer event.
func (e Event) IsMouse() bool {
	return e.Kind == EventMouse
}

// GrabsFocus reports whether a pointer event should move focus to the view
// under it. Presses and releases do; wheel scrolling and drags do not.
func (e Event) GrabsFocus() bool {
	if e.Kind != EventMouse || e.Mouse.Button.IsWheel() {
		return false
	}
	return e.Mouse.Action == MousePress || e.Mouse.Action == MouseRelease
}

func (e Event) String() string {
	switch e.Kind {
	case EventKey:
		return "key:" + e.Key.String()
	case EventChar:
		return fmt.Sprintf("char:%q", e.Rune)
	case EventMouse:
		return fmt.Sprintf("mouse:%d/%d@%s", e.Mouse.Action, e.Mouse.Button, e.Position)
	case EventRefresh:
		return "refresh"
	case EventResize:
		return "resize:" + e.Position.String()
	default:
		return "unknown"
	}
}
