package view

// Direction tells a view which side focus is arriving from.
//
// The absolute directions name an edge of the view: DirectionUp means focus
// enters through the top edge, as happens when the user presses Down in the
// view above. DirectionFront and DirectionBack are the relative directions used
// by Tab and Shift-Tab traversal. DirectionNone is used for pointer focus and
// programmatic requests.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
	DirectionFront
	DirectionBack
)

var directionNames = map[Direction]string{
	DirectionNone:  "none",
	DirectionUp:    "up",
	DirectionDown:  "down",
	DirectionLeft:  "left",
	DirectionRight: "right",
	DirectionFront: "front",
	DirectionBack:  "back",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "unknown"
}

// IsAbsolute reports whether d names a screen edge.
func (d Direction) IsAbsolute() bool {
	switch d {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight:
		return true
	default:
		return false
	}
}

// Opposite returns the direction on the other side. None stays None.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	case DirectionFront:
		return DirectionBack
	case DirectionBack:
		return DirectionFront
	default:
		return DirectionNone
	}
}
