package view

import "fmt"

// Orientation names one of the two screen axes.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Swap returns the other axis.
func (o Orientation) Swap() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Vec2 is a size or a position measured in terminal cells.
type Vec2 struct {
	X int
	Y int
}

// NewVec2 is shorthand for Vec2{X: x, Y: y}.
func NewVec2(x, y int) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

// Add returns the component-wise sum.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference. Components may become negative.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// SaturatingSub subtracts o and clamps each component at zero.
func (v Vec2) SaturatingSub(o Vec2) Vec2 {
	return Vec2{X: max(v.X-o.X, 0), Y: max(v.Y-o.Y, 0)}
}

// Max returns the component-wise maximum.
func (v Vec2) Max(o Vec2) Vec2 {
	return Vec2{X: max(v.X, o.X), Y: max(v.Y, o.Y)}
}

// Min returns the component-wise minimum.
func (v Vec2) Min(o Vec2) Vec2 {
	return Vec2{X: min(v.X, o.X), Y: min(v.Y, o.Y)}
}

// KeepX zeroes the vertical component.
func (v Vec2) KeepX() Vec2 {
	return Vec2{X: v.X}
}

// KeepY zeroes the horizontal component.
func (v Vec2) KeepY() Vec2 {
	return Vec2{Y: v.Y}
}

// StackHorizontal returns the size of v placed left of o.
func (v Vec2) StackHorizontal(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: max(v.Y, o.Y)}
}

// StackVertical returns the size of v placed above o.
func (v Vec2) StackVertical(o Vec2) Vec2 {
	return Vec2{X: max(v.X, o.X), Y: v.Y + o.Y}
}

// Fits reports whether v fits inside o on both axes.
func (v Vec2) Fits(o Vec2) bool {
	return v.X <= o.X && v.Y <= o.Y
}

// Get returns the component along the given axis.
func (v Vec2) Get(o Orientation) int {
	if o == Horizontal {
		return v.X
	}
	return v.Y
}

// With returns a copy of v with the component along o replaced.
func (v Vec2) With(o Orientation, value int) Vec2 {
	if o == Horizontal {
		v.X = value
	} else {
		v.Y = value
	}
	return v
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rect is an axis-aligned rectangle: the cells in [Origin, Origin+Size).
type Rect struct {
	Origin Vec2
	Size   Vec2
}

// NewRect builds a rectangle from its top-left corner and size.
func NewRect(origin, size Vec2) Rect {
	return Rect{Origin: origin, Size: size}
}

// RectFromSize returns the rectangle of the given size anchored at the origin.
func RectFromSize(size Vec2) Rect {
	return Rect{Size: size}
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Origin.X && p.Y >= r.Origin.Y &&
		p.X < r.Origin.X+r.Size.X && p.Y < r.Origin.Y+r.Size.Y
}

// Offset returns r moved by off.
func (r Rect) Offset(off Vec2) Rect {
	r.Origin = r.Origin.Add(off)
	return r
}

// BottomRight returns the first cell past the rectangle on both axes.
func (r Rect) BottomRight() Vec2 {
	return r.Origin.Add(r.Size)
}

// Empty reports whether r covers no cell.
func (r Rect) Empty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}
