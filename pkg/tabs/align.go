package tabs

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/tabs/pkg/view"
)

// Align positions the buttons of a bar along the edge it occupies.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Offset returns where content of the given extent starts inside container.
// Content larger than its container starts at 0 and overflows.
func (a Align) Offset(content, container int) int {
	if container < content {
		return 0
	}
	switch a {
	case AlignCenter:
		return (container - content) / 2
	case AlignEnd:
		return container - content
	default:
		return 0
	}
}

var alignNames = []string{"start", "center", "end"}

func (a Align) String() string {
	if a < 0 || int(a) >= len(alignNames) {
		return fmt.Sprintf("align(%d)", int(a))
	}
	return alignNames[a]
}

// ParseAlign parses start, center or end.
func ParseAlign(s string) (Align, error) {
	switch normalize(s) {
	case "start":
		return AlignStart, nil
	case "center", "centre":
		return AlignCenter, nil
	case "end":
		return AlignEnd, nil
	default:
		return AlignStart, fmt.Errorf("unknown alignment %q (want start, center or end)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Align) MarshalText() ([]byte, error) {
	if a < 0 || int(a) >= len(alignNames) {
		return nil, fmt.Errorf("unknown alignment %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Align) UnmarshalText(text []byte) error {
	parsed, err := ParseAlign(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Placement is the edge of a panel its bar is attached to.
type Placement int

const (
	HorizontalTop Placement = iota
	HorizontalBottom
	VerticalLeft
	VerticalRight
)

var placementNames = []string{"top", "bottom", "left", "right"}

func (p Placement) String() string {
	if p < 0 || int(p) >= len(placementNames) {
		return fmt.Sprintf("placement(%d)", int(p))
	}
	return placementNames[p]
}

// Orientation is the axis the bar runs along.
func (p Placement) Orientation() view.Orientation {
	if p == VerticalLeft || p == VerticalRight {
		return view.Vertical
	}
	return view.Horizontal
}

// IsHorizontal reports whether the bar runs along the top or bottom edge.
func (p Placement) IsHorizontal() bool {
	return p.Orientation() == view.Horizontal
}

// ParsePlacement accepts top, bottom, left and right, optionally spelled out
// as horizontal-top, horizontal-bottom, vertical-left and vertical-right.
func ParsePlacement(s string) (Placement, error) {
	switch normalize(s) {
	case "top", "horizontal-top", "horizontaltop":
		return HorizontalTop, nil
	case "bottom", "horizontal-bottom", "horizontalbottom":
		return HorizontalBottom, nil
	case "left", "vertical-left", "verticalleft":
		return VerticalLeft, nil
	case "right", "vertical-right", "verticalright":
		return VerticalRight, nil
	default:
		return HorizontalTop, fmt.Errorf("unknown placement %q (want top, bottom, left or right)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Placement) MarshalText() ([]byte, error) {
	if p < 0 || int(p) >= len(placementNames) {
		return nil, fmt.Errorf("unknown placement %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Placement) UnmarshalText(text []byte) error {
	parsed, err := ParsePlacement(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
}
